package graph

import "errors"

var (
	// ErrDuplicateInstanceID is returned by Resolve when two instances in the
	// same document share an id.
	ErrDuplicateInstanceID = errors.New("duplicate instance id")

	// ErrInstanceNotFound is returned when an id is not present in the table.
	ErrInstanceNotFound = errors.New("instance not found")

	// ErrStructuralReference is returned when a reference taken from the
	// document itself (a next_id, the first contained instance, or the pending
	// resume id) cannot be resolved. It always wraps ErrInstanceNotFound.
	ErrStructuralReference = errors.New("structural reference error")
)
