package contextstore

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// GlobalKey is the reserved scope key of the global namespace. Instance ids
// must not use it.
const GlobalKey = "__gcontext__"

// Store maps scope keys to namespaces for the duration of one run.
type Store struct {
	mu         sync.RWMutex
	namespaces map[string]*Namespace
}

// New creates an empty store. Call InitGlobal before anything else.
func New() *Store {
	return &Store{
		namespaces: make(map[string]*Namespace),
	}
}

// InitGlobal creates the global namespace. Calling it again leaves the
// existing global namespace untouched.
func (s *Store) InitGlobal() {
	s.InitLocal(GlobalKey)
}

// InitLocal creates an empty namespace for key unless one already exists.
// It reports whether a namespace was created.
func (s *Store) InitLocal(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.namespaces[key]; ok {
		return false
	}
	s.namespaces[key] = NewNamespace()
	return true
}

// Has reports whether a namespace exists for key.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.namespaces[key]
	return ok
}

// Keys returns every scope key, sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.namespaces))
	for key := range s.namespaces {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Namespace returns the namespace stored under key.
func (s *Store) Namespace(key string) (*Namespace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ns, ok := s.namespaces[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNamespaceNotFound, key)
	}
	return ns, nil
}

// Global returns the global namespace.
func (s *Store) Global() (*Namespace, error) {
	return s.Namespace(GlobalKey)
}

// InstallBuiltins installs the named callables into the global namespace,
// and only there.
func (s *Store) InstallBuiltins(funcs map[string]function.Function) error {
	global, err := s.Global()
	if err != nil {
		return fmt.Errorf("installing built-ins: %w", err)
	}
	for name, fn := range funcs {
		global.SetFunction(name, fn)
	}
	return nil
}

// Get reads variable name from the namespace at key.
func (s *Store) Get(key, name string) (cty.Value, error) {
	ns, err := s.Namespace(key)
	if err != nil {
		return cty.NilVal, err
	}
	return ns.Get(name)
}

// Set writes variable name in the namespace at key.
func (s *Store) Set(key, name string, v cty.Value) error {
	ns, err := s.Namespace(key)
	if err != nil {
		return err
	}
	ns.Set(name, v)
	return nil
}

// CopyNamespace replaces the namespace at dstKey with a deep copy of the one
// at srcKey. The two evolve independently afterwards.
func (s *Store) CopyNamespace(srcKey, dstKey string) error {
	if dstKey == GlobalKey {
		return fmt.Errorf("%w: cannot replace %q", ErrReservedKey, dstKey)
	}
	src, err := s.Namespace(srcKey)
	if err != nil {
		return err
	}
	clone := src.clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.namespaces[dstKey] = clone
	return nil
}

// CopyVariable binds dstKey[name] to a fresh copy of srcKey[name].
func (s *Store) CopyVariable(srcKey, dstKey, name string) error {
	src, dst, err := s.pair(srcKey, dstKey)
	if err != nil {
		return err
	}
	v, err := src.Get(name)
	if err != nil {
		return fmt.Errorf("namespace %q: %w", srcKey, err)
	}
	dst.Bind(name, NewBinding(v))
	return nil
}

// ReferenceNamespace makes dstKey an alias of the namespace at srcKey.
func (s *Store) ReferenceNamespace(srcKey, dstKey string) error {
	if dstKey == GlobalKey {
		return fmt.Errorf("%w: cannot replace %q", ErrReservedKey, dstKey)
	}
	src, err := s.Namespace(srcKey)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.namespaces[dstKey] = src
	return nil
}

// ReferenceVariable makes dstKey[name] share the binding of srcKey[name].
func (s *Store) ReferenceVariable(srcKey, dstKey, name string) error {
	src, dst, err := s.pair(srcKey, dstKey)
	if err != nil {
		return err
	}
	b, ok := src.Binding(name)
	if !ok {
		return fmt.Errorf("namespace %q: %w: %q", srcKey, ErrVariableNotFound, name)
	}
	dst.Bind(name, b)
	return nil
}

// GlobalizeVariable makes global[name] share the binding of localKey[name].
func (s *Store) GlobalizeVariable(localKey, name string) error {
	return s.ReferenceVariable(localKey, GlobalKey, name)
}

func (s *Store) pair(srcKey, dstKey string) (*Namespace, *Namespace, error) {
	src, err := s.Namespace(srcKey)
	if err != nil {
		return nil, nil, err
	}
	dst, err := s.Namespace(dstKey)
	if err != nil {
		return nil, nil, err
	}
	return src, dst, nil
}
