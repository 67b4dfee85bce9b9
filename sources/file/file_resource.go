package file

import (
	"io"
	"os"

	"github.com/linegrep/linegrep"
)

// Open opens the named file as a source. The caller must Close it.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{
		Content:  f,
		Resource: linegrep.NewFileResource(path),
		closer:   f,
	}, nil
}

// Stdin returns a source reading from r under the standard input label.
// Closing it does not close r.
func Stdin(r io.Reader) *File {
	return &File{
		Content:  r,
		Resource: linegrep.NewStdinResource(),
	}
}
