package scan

import (
	ahocorasick "github.com/BobuSumisu/aho-corasick"

	"github.com/linegrep/linegrep"
)

// Matcher finds the leftmost match starting at or after offset.
// *regexp.Regexp satisfies it.
type Matcher interface {
	FindFrom(text string, offset int) (linegrep.Span, bool)
}

// Evaluator decides whether a line is selected and which report units it
// produces. It holds no per-line state and never fails: a failed match
// attempt and a clean non-match are the same outcome.
type Evaluator struct {
	matcher      Matcher
	invert       bool
	onlyMatching bool

	// prefilter is an ahocorasick trie over the literal patterns. A line
	// containing none of them cannot match, so the regex is skipped.
	prefilter *ahocorasick.Trie
}

// NewEvaluator returns an evaluator over m. literals, when non-empty, must
// be the complete list of patterns m was compiled from, each free of regex
// metacharacters; they enable the prefilter for case-sensitive searches.
func NewEvaluator(m Matcher, opts linegrep.Options, literals []string) *Evaluator {
	e := &Evaluator{
		matcher:      m,
		invert:       opts.InvertMatch,
		onlyMatching: opts.OnlyMatching,
	}
	if len(literals) > 0 && !opts.IgnoreCase {
		e.prefilter = ahocorasick.NewTrieBuilder().AddStrings(literals).Build()
	}
	return e
}

// Matches reports whether the combined expression matches content,
// ignoring inversion.
func (e *Evaluator) Matches(content string) bool {
	if e.prefilter != nil && len(e.prefilter.MatchString(content)) == 0 {
		return false
	}
	_, ok := e.matcher.FindFrom(content, 0)
	return ok
}

// Selected reports whether content is reported and counted.
func (e *Evaluator) Selected(content string) bool {
	return e.Matches(content) != e.invert
}

// Units returns the report units of a selected line: every matched span in
// match-only mode, otherwise the whole line. An inverted search always
// reports the whole line since it has no matching span.
func (e *Evaluator) Units(content string) []linegrep.Span {
	if e.onlyMatching && !e.invert {
		return e.Spans(content)
	}
	return []linegrep.Span{linegrep.WholeLine(content)}
}

// Spans returns the non-overlapping matches of content from left to right.
// After an empty match the cursor moves one byte past it, so an expression
// matching the empty string yields one empty span per position and the
// loop always terminates.
func (e *Evaluator) Spans(content string) []linegrep.Span {
	var spans []linegrep.Span
	cursor := 0
	for cursor <= len(content) {
		span, ok := e.matcher.FindFrom(content, cursor)
		if !ok {
			break
		}
		spans = append(spans, span)
		if span.End > span.Start {
			cursor = span.End
		} else {
			cursor = span.End + 1
		}
	}
	return spans
}
