package linegrep

// StdinLabel is the display label of the standard input source.
const StdinLabel = "(standard input)"

// StdinPath is the source path that denotes standard input.
const StdinPath = "-"

// ResourceKind represents the kind of input a resource is read from.
type ResourceKind string

const (
	ResourceKindFile  ResourceKind = "file"
	ResourceKindStdin ResourceKind = "stdin"
)

// Resource identifies one input source. Lines borrow a pointer to the
// resource they were read from so reporters can render its label.
type Resource struct {
	// Path is the path the resource was opened from. Empty for stdin.
	Path string

	// Label is the name printed in front of reported lines, counts and in
	// list mode.
	Label string

	Kind ResourceKind
}

// NewFileResource returns the resource for a named file.
func NewFileResource(path string) *Resource {
	return &Resource{
		Path:  path,
		Label: path,
		Kind:  ResourceKindFile,
	}
}

// NewStdinResource returns the resource for standard input.
func NewStdinResource() *Resource {
	return &Resource{
		Label: StdinLabel,
		Kind:  ResourceKindStdin,
	}
}

// IsStdin reports whether the resource reads from standard input.
func (r *Resource) IsStdin() bool {
	return r != nil && r.Kind == ResourceKindStdin
}
