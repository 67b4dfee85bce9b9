package linegrep

// Options configures a search run. It is built once from the command line
// before any pattern is compiled and is passed by value afterwards.
type Options struct {
	// IgnoreCase compiles the combined expression case-insensitively.
	IgnoreCase bool

	// InvertMatch selects lines that do not match.
	InvertMatch bool

	// CountOnly prints one count per source instead of the lines.
	CountOnly bool

	// ListFilesOnly prints the label of every source with a selected line
	// and stops reading a source at its first selected line.
	ListFilesOnly bool

	ShowLineNumber   bool
	SuppressFilename bool
	SuppressErrors   bool

	// OnlyMatching prints every matched span on its own line. It has no
	// effect together with InvertMatch.
	OnlyMatching bool
}

// Mode is the output mode derived from Options.
type Mode int

const (
	// ModeLines prints every selected line.
	ModeLines Mode = iota
	// ModeOnlyMatching prints every matched span of a selected line.
	ModeOnlyMatching
	// ModeCount prints the number of selected lines per source.
	ModeCount
	// ModeList prints the label of every source with a selected line.
	ModeList
)

func (m Mode) String() string {
	switch m {
	case ModeLines:
		return "lines"
	case ModeOnlyMatching:
		return "only-matching"
	case ModeCount:
		return "count"
	case ModeList:
		return "list"
	default:
		return "unknown"
	}
}

// Mode returns the output mode. List mode wins over count mode, and both
// win over match-only mode. Match-only mode is not used for inverted
// searches since an inverted line has no matching span.
func (o Options) Mode() Mode {
	switch {
	case o.ListFilesOnly:
		return ModeList
	case o.CountOnly:
		return ModeCount
	case o.OnlyMatching && !o.InvertMatch:
		return ModeOnlyMatching
	default:
		return ModeLines
	}
}

// ShowLabel reports whether source labels are printed for a run over
// sourceCount named sources. Labels are only shown for two or more sources.
func (o Options) ShowLabel(sourceCount int) bool {
	return sourceCount > 1 && !o.SuppressFilename
}
