// Package file turns one byte stream into a sequence of lines.
package file

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/linegrep/linegrep"
	"github.com/linegrep/linegrep/logging"
)

const readBufferSize = 64 * 1024

// File is a source that yields the lines of Content.
type File struct {
	// Content is the stream the lines are read from. It is read once.
	Content io.Reader

	// Resource identifies the stream and carries its display label.
	Resource *linegrep.Resource

	// closer is set when the File opened Content itself.
	closer io.Closer
}

var _ linegrep.Source = (*File)(nil)

// Lines yields every line of Content in order. The trailing "\n" and one
// "\r" before it are stripped; every other byte is passed through. A read
// error ends the sequence the same way EOF does.
func (f *File) Lines(ctx context.Context, yield linegrep.LinesFunc) error {
	reader := bufio.NewReaderSize(f.Content, readBufferSize)
	number := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		text, err := reader.ReadString('\n')
		if len(text) > 0 {
			number++
			line := linegrep.Line{
				Content:  trimTerminator(text),
				Number:   number,
				Resource: f.Resource,
			}
			if yerr := yield(line); yerr != nil {
				if errors.Is(yerr, linegrep.SkipSource) {
					return nil
				}
				return yerr
			}
		}
		if err != nil {
			if err != io.EOF {
				logging.Debug().Err(err).Str("source", f.label()).Msg("read error, treating as end of input")
			}
			return nil
		}
	}
}

// Close closes the underlying stream if the File opened it.
func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

func (f *File) label() string {
	if f.Resource == nil {
		return ""
	}
	return f.Resource.Label
}

func trimTerminator(text string) string {
	text, ok := strings.CutSuffix(text, "\n")
	if !ok {
		return text
	}
	text, _ = strings.CutSuffix(text, "\r")
	return text
}
