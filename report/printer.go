// Package report renders search results in the plain text formats of the
// command line.
package report

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// FormatUnit renders one report unit as "[label:][lineNumber:]text\n".
// No escaping or truncation is applied.
func FormatUnit(label string, lineNumber int, text string, showLabel, showLineNumber bool) string {
	var b strings.Builder
	b.Grow(len(label) + len(text) + 24)
	appendPrefix(&b, label, lineNumber, showLabel, showLineNumber)
	b.WriteString(text)
	b.WriteByte('\n')
	return b.String()
}

// FormatCount renders a per-source count as "[label:]count\n".
func FormatCount(label string, count int, showLabel bool) string {
	var b strings.Builder
	if showLabel {
		b.WriteString(label)
		b.WriteByte(':')
	}
	b.WriteString(strconv.Itoa(count))
	b.WriteByte('\n')
	return b.String()
}

func appendPrefix(b *strings.Builder, label string, lineNumber int, showLabel, showLineNumber bool) {
	if showLabel {
		b.WriteString(label)
		b.WriteByte(':')
	}
	if showLineNumber {
		b.WriteString(strconv.Itoa(lineNumber))
		b.WriteByte(':')
	}
}

// Printer writes rendered records to an output stream in call order.
type Printer struct {
	w *bufio.Writer

	ShowLabel      bool
	ShowLineNumber bool

	// LineBuffered flushes after every record, for interactive output.
	LineBuffered bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: bufio.NewWriter(w)}
}

// Unit writes one report unit of the line numbered lineNumber.
func (p *Printer) Unit(label string, lineNumber int, text string) error {
	if _, err := p.w.WriteString(FormatUnit(label, lineNumber, text, p.ShowLabel, p.ShowLineNumber)); err != nil {
		return err
	}
	return p.maybeFlush()
}

// Count writes the number of selected lines of a source.
func (p *Printer) Count(label string, count int) error {
	if _, err := p.w.WriteString(FormatCount(label, count, p.ShowLabel)); err != nil {
		return err
	}
	return p.maybeFlush()
}

// Label writes the label of a source with a selected line.
func (p *Printer) Label(label string) error {
	if _, err := p.w.WriteString(label); err != nil {
		return err
	}
	return p.endRecord()
}

// Flush writes any buffered output.
func (p *Printer) Flush() error {
	return p.w.Flush()
}

func (p *Printer) endRecord() error {
	if err := p.w.WriteByte('\n'); err != nil {
		return err
	}
	return p.maybeFlush()
}

func (p *Printer) maybeFlush() error {
	if !p.LineBuffered {
		return nil
	}
	return p.w.Flush()
}
