package linegrep

// Result is the outcome of scanning one source.
type Result struct {
	Resource *Resource

	// Matched is set once the source yields a selected line.
	Matched bool

	// Count is the number of selected lines. In list mode scanning stops at
	// the first selected line, so Count is at most 1.
	Count int
}

// Status is the process exit status of a run.
type Status int

const (
	// StatusMatch means at least one qualifying match was found.
	StatusMatch Status = 0
	// StatusNoMatch means the run completed without a qualifying match.
	StatusNoMatch Status = 1
	// StatusTrouble means the run failed before or while scanning.
	StatusTrouble Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusMatch:
		return "match"
	case StatusNoMatch:
		return "no match"
	case StatusTrouble:
		return "trouble"
	default:
		return "unknown"
	}
}

// Code returns the status as a process exit code.
func (s Status) Code() int {
	return int(s)
}
