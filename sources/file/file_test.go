package file

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/linegrep/linegrep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect reads every line of src.
func collect(t *testing.T, src linegrep.Source) []linegrep.Line {
	t.Helper()
	var lines []linegrep.Line
	err := src.Lines(context.Background(), func(line linegrep.Line) error {
		lines = append(lines, line)
		return nil
	})
	require.NoError(t, err)
	return lines
}

func contents(lines []linegrep.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Content
	}
	return out
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "single newline", input: "\n", want: []string{""}},
		{name: "lf", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "no trailing terminator", input: "a\nb", want: []string{"a", "b"}},
		{name: "blank lines", input: "a\n\n\nb\n", want: []string{"a", "", "", "b"}},
		{name: "only one cr stripped", input: "a\r\r\n", want: []string{"a\r"}},
		{name: "lone cr kept", input: "a\rb\n", want: []string{"a\rb"}},
		{name: "embedded nul", input: "a\x00b\n", want: []string{"a\x00b"}},
		{name: "invalid utf8", input: "\xff\xfe\n", want: []string{"\xff\xfe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Stdin(strings.NewReader(tt.input))
			assert.Equal(t, tt.want, contents(collect(t, src)))
		})
	}
}

func TestLinesNumbering(t *testing.T) {
	src := Stdin(strings.NewReader("x\n\ny\n"))
	lines := collect(t, src)
	require.Len(t, lines, 3)
	for i, l := range lines {
		assert.Equal(t, i+1, l.Number)
		assert.Equal(t, linegrep.StdinLabel, l.Label())
		assert.True(t, l.Resource.IsStdin())
	}
}

func TestLinesLongLine(t *testing.T) {
	long := strings.Repeat("z", 3*readBufferSize+17)
	src := Stdin(strings.NewReader(long + "\nshort\n"))
	assert.Equal(t, []string{long, "short"}, contents(collect(t, src)))
}

func TestLinesReadErrorIsEndOfInput(t *testing.T) {
	r := io.MultiReader(strings.NewReader("one\ntwo\npart"), iotest.ErrReader(errors.New("disk on fire")))
	src := Stdin(r)
	assert.Equal(t, []string{"one", "two", "part"}, contents(collect(t, src)))
}

func TestLinesSkipSource(t *testing.T) {
	src := Stdin(strings.NewReader("a\nb\nc\n"))
	var seen []string
	err := src.Lines(context.Background(), func(line linegrep.Line) error {
		seen = append(seen, line.Content)
		if line.Content == "b" {
			return linegrep.SkipSource
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestLinesYieldError(t *testing.T) {
	boom := errors.New("boom")
	src := Stdin(strings.NewReader("a\nb\n"))
	err := src.Lines(context.Background(), func(linegrep.Line) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestLinesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := Stdin(strings.NewReader("a\n"))
	err := src.Lines(ctx, func(linegrep.Line) error {
		t.Fatal("no line expected after cancel")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld"), 0o600))

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	lines := collect(t, src)
	assert.Equal(t, []string{"hello", "world"}, contents(lines))
	assert.Equal(t, path, lines[0].Label())
	assert.Equal(t, linegrep.ResourceKindFile, lines[0].Resource.Kind)

	_, err = Open(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, os.IsNotExist(err))
}
