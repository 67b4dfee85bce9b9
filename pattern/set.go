// Package pattern collects the patterns of a run and joins them into the one
// alternation expression that gets compiled.
package pattern

import (
	"bufio"
	"fmt"
	"io"
	"os"
	stdregexp "regexp"
	"strings"

	"github.com/linegrep/linegrep"
)

// Separator joins patterns in the combined expression.
const Separator = "|"

// maxPatternLine bounds a single line of a pattern file.
const maxPatternLine = 1 << 20

// Set is an ordered, append-only list of raw patterns. Duplicates are kept
// and no pattern is validated before Combine.
type Set struct {
	patterns []string
}

// New returns a set holding patterns, in order.
func New(patterns ...string) *Set {
	s := &Set{}
	for _, p := range patterns {
		s.Push(p)
	}
	return s
}

// Push appends a pattern.
func (s *Set) Push(pattern string) {
	s.patterns = append(s.patterns, pattern)
}

// Load pushes every line read from r. Trailing "\r" and "\n" characters are
// stripped, so "\n", "\r\n" and a missing terminator on the last line all
// produce the same patterns. Empty lines are valid patterns.
func (s *Set) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxPatternLine)
	for scanner.Scan() {
		s.Push(strings.TrimRight(scanner.Text(), "\r\n"))
	}
	return scanner.Err()
}

// LoadFile pushes every line of the file at path. Errors wrap
// linegrep.ErrPatternFile.
func (s *Set) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", linegrep.ErrPatternFile, err)
	}
	defer f.Close()

	if err := s.Load(f); err != nil {
		return fmt.Errorf("%w: %s: %w", linegrep.ErrPatternFile, path, err)
	}
	return nil
}

// Len returns the number of patterns.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Patterns returns a copy of the patterns in insertion order.
func (s *Set) Patterns() []string {
	out := make([]string, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Combine joins the patterns with Separator. It fails with
// linegrep.ErrNoPatterns if nothing was pushed.
func (s *Set) Combine() (string, error) {
	if len(s.patterns) == 0 {
		return "", linegrep.ErrNoPatterns
	}
	return strings.Join(s.patterns, Separator), nil
}

// Literals returns the patterns if every one of them is a non-empty string
// without regex metacharacters. A line then matches the combined expression
// exactly when it contains one of the literals.
func (s *Set) Literals() ([]string, bool) {
	if len(s.patterns) == 0 {
		return nil, false
	}
	for _, p := range s.patterns {
		if p == "" || stdregexp.QuoteMeta(p) != p {
			return nil, false
		}
	}
	return s.Patterns(), true
}
