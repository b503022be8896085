package builtins

import (
	"errors"
	"fmt"
)

// ErrNoCurrentInstance is returned when a built-in runs outside of a step.
var ErrNoCurrentInstance = errors.New("no instance is currently executing")

// RaisedError is the failure produced by the raise_exception expression
// function.
type RaisedError struct {
	Message string
}

// Error implements the error interface.
func (e *RaisedError) Error() string {
	return e.Message
}

// InstanceError attributes a failure to the instance it originated from. It
// unwraps to the original error, so the original kind stays classifiable
// with errors.Is and errors.As.
type InstanceError struct {
	ID      string
	Display string
	Line    int
	Err     error
}

// Error implements the error interface.
func (e *InstanceError) Error() string {
	return fmt.Sprintf(`[exception from instance id "%s", display "%s", line %d] %s`, e.ID, e.Display, e.Line, e.Err)
}

// Unwrap returns the original error.
func (e *InstanceError) Unwrap() error {
	return e.Err
}

// sourceLiner is implemented by errors that know the expression line they
// originated at.
type sourceLiner interface {
	SourceLine() int
}

// originLine returns the line recorded by the first error in err's chain
// that has one, or 0.
func originLine(err error) int {
	var located sourceLiner
	if errors.As(err, &located) {
		return located.SourceLine()
	}
	return 0
}
