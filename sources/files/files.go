// Package files opens the sources named on the command line, one at a time
// and in order.
package files

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/linegrep/linegrep"
	"github.com/linegrep/linegrep/logging"
	"github.com/linegrep/linegrep/sources/file"
)

// SourcesFunc is called once per path. Exactly one of src and err is set:
// err wraps linegrep.ErrSourceOpen when the path could not be opened.
type SourcesFunc func(src *file.File, err error) error

// Files is the ordered list of sources of a run.
type Files struct {
	// Paths are the source paths in command-line order. No paths means
	// standard input. The path "-" also denotes standard input.
	Paths []string

	// Stdin is read for "-" and when Paths is empty. Defaults to os.Stdin.
	Stdin io.Reader
}

// Count returns the number of sources the run will visit.
func (s *Files) Count() int {
	if len(s.Paths) == 0 {
		return 1
	}
	return len(s.Paths)
}

// Sources opens every source in order and yields it. A source is closed as
// soon as yield returns. Open failures are yielded and do not stop the
// iteration; an error returned by yield does.
func (s *Files) Sources(ctx context.Context, yield SourcesFunc) error {
	paths := s.Paths
	if len(paths) == 0 {
		paths = []string{linegrep.StdinPath}
	}

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.visit(path, yield); err != nil {
			return err
		}
	}
	return nil
}

func (s *Files) visit(path string, yield SourcesFunc) error {
	if path == linegrep.StdinPath {
		logging.Trace().Msg("scanning standard input")
		return yield(file.Stdin(s.stdin()), nil)
	}

	logger := logging.With().Str("path", path).Logger()
	logger.Trace().Msg("opening source")

	src, err := file.Open(path)
	if err != nil {
		return yield(nil, fmt.Errorf("%w: %w", linegrep.ErrSourceOpen, err))
	}

	err = yield(src, nil)
	if cerr := src.Close(); cerr != nil {
		logger.Debug().Err(cerr).Msg("could not close source")
	}
	return err
}

func (s *Files) stdin() io.Reader {
	if s.Stdin == nil {
		return os.Stdin
	}
	return s.Stdin
}
