package linegrep

// Span is a half-open byte range [Start, End) within a line's content.
// A zero-length span (Start == End) is a valid match of an expression that
// can match the empty string.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.End == s.Start
}

// Text returns the part of content covered by the span.
func (s Span) Text(content string) string {
	return content[s.Start:s.End]
}

// WholeLine returns the span that covers all of content. It is the report
// unit used whenever a line is reported in full.
func WholeLine(content string) Span {
	return Span{Start: 0, End: len(content)}
}
