package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrRunFinished is returned when Execute is called on a run that has
	// already completed or failed.
	ErrRunFinished = errors.New("run already finished")
	// ErrMissingTrigger is returned when the document has no trigger instance.
	ErrMissingTrigger = errors.New("trigger instance not found")
	// ErrReservedInstanceID is returned when an instance uses the id of the
	// global namespace.
	ErrReservedInstanceID = errors.New("instance id is reserved")
)

// StepsExceededError is returned when a run visits more instances than the
// configured limit, which usually means the next_id chain has a cycle.
type StepsExceededError struct {
	Limit int
	Last  string
}

// Error implements the error interface.
func (e *StepsExceededError) Error() string {
	return fmt.Sprintf("run exceeded %d steps (last instance %q)", e.Limit, e.Last)
}
