package linegrep

// Line is one line of a source with its terminator stripped. It only lives
// for the duration of processing that line.
type Line struct {
	// Content is the line without its trailing "\n" (or "\r\n").
	Content string

	// Number is the 1-based line number within the resource.
	Number int

	Resource *Resource
}

// Label returns the display label of the resource the line was read from.
func (l Line) Label() string {
	if l.Resource == nil {
		return ""
	}
	return l.Resource.Label
}
