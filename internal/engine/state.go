package engine

// State is the lifecycle position of a Run.
type State int

const (
	StateReady State = iota
	StateRunning
	StateDone
	StateFailed
)

// String returns the lower-case name used in logs.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Finished reports whether the run can no longer be executed.
func (s State) Finished() bool {
	return s == StateDone || s == StateFailed
}
