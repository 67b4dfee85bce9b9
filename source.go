package linegrep

import (
	"context"
	"errors"
)

// LinesFunc is the type of the function called by Source.Lines for every
// line read from the source. Returning SkipSource stops reading the source
// without error; any other non-nil error aborts the read and is returned.
type LinesFunc func(line Line) error

// SkipSource is used as a return value from LinesFunc to indicate that the
// remaining lines of the current source must not be read.
var SkipSource = errors.New("skip remaining lines of source")

// Source yields lines one at a time, in order. The sequence is lazy, finite
// and cannot be restarted.
type Source interface {
	Lines(ctx context.Context, yield LinesFunc) error
}
