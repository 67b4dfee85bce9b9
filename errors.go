package linegrep

import "errors"

var (
	// ErrUsage is returned for malformed command lines and when no pattern
	// was supplied at all.
	ErrUsage = errors.New("usage error")

	// ErrNoPatterns is returned when an empty pattern set is combined.
	ErrNoPatterns = errors.New("no pattern supplied")

	// ErrConfig is returned for invalid configuration.
	ErrConfig = errors.New("invalid configuration")

	// ErrPatternFile wraps the error of a pattern file that could not be
	// read.
	ErrPatternFile = errors.New("cannot read pattern file")

	// ErrSourceOpen wraps the error of a source that could not be opened.
	ErrSourceOpen = errors.New("cannot open source")
)

// CompileError is returned when the regex engine rejects the combined
// expression. Its message is the engine's message unchanged.
type CompileError struct {
	Expr string
	Err  error
}

func (e *CompileError) Error() string {
	return e.Err.Error()
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
