package builtins

import (
	"github.com/vk/seqdoc/internal/contextstore"
	"github.com/vk/seqdoc/internal/model"
)

// Cursor exposes the instance that is executing right now.
type Cursor interface {
	Current() *model.Instance
}

// Set binds the built-in operations to a store and a cursor.
type Set struct {
	store  *contextstore.Store
	cursor Cursor
}

// New creates a built-in set acting on store relative to cursor.
func New(store *contextstore.Store, cursor Cursor) *Set {
	return &Set{store: store, cursor: cursor}
}

// CopyThisContext deep-copies the current instance's namespace to dstKey.
func (s *Set) CopyThisContext(dstKey string) error {
	id, err := s.currentID()
	if err != nil {
		return err
	}
	return s.store.CopyNamespace(id, dstKey)
}

// CopyVariableFromContext deep-copies srcKey[name] into the current
// instance's namespace.
func (s *Set) CopyVariableFromContext(srcKey, name string) error {
	id, err := s.currentID()
	if err != nil {
		return err
	}
	return s.store.CopyVariable(srcKey, id, name)
}

// ReferThisContext makes dstKey an alias of the current instance's namespace.
func (s *Set) ReferThisContext(dstKey string) error {
	id, err := s.currentID()
	if err != nil {
		return err
	}
	return s.store.ReferenceNamespace(id, dstKey)
}

// ReferVariableFromContext makes the current instance's name share the
// binding of srcKey[name].
func (s *Set) ReferVariableFromContext(srcKey, name string) error {
	id, err := s.currentID()
	if err != nil {
		return err
	}
	return s.store.ReferenceVariable(srcKey, id, name)
}

// GlobalizeVariableFromThisContext publishes the current instance's name in
// the global namespace, sharing its binding.
func (s *Set) GlobalizeVariableFromThisContext(name string) error {
	id, err := s.currentID()
	if err != nil {
		return err
	}
	return s.store.GlobalizeVariable(id, name)
}

// RaiseException attributes err to the current instance. The returned error
// unwraps to err. A nil err yields nil.
func (s *Set) RaiseException(err error) error {
	if err == nil {
		return nil
	}
	inst := s.cursor.Current()
	if inst == nil {
		return err
	}
	return &InstanceError{
		ID:      inst.ID,
		Display: inst.Display,
		Line:    originLine(err),
		Err:     err,
	}
}

func (s *Set) currentID() (string, error) {
	inst := s.cursor.Current()
	if inst == nil {
		return "", ErrNoCurrentInstance
	}
	return inst.ID, nil
}
