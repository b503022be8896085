package contextstore

import "errors"

var (
	// ErrNamespaceNotFound is returned when no namespace exists for a key.
	ErrNamespaceNotFound = errors.New("namespace not found")

	// ErrVariableNotFound is returned when a namespace has no such variable.
	ErrVariableNotFound = errors.New("variable not found")

	// ErrReservedKey is returned when an operation would replace the global
	// namespace wholesale. The global namespace carries the built-in
	// functions and exists exactly once per run.
	ErrReservedKey = errors.New("reserved namespace key")
)
