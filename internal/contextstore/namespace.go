package contextstore

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Binding holds the value of one variable. Several namespaces may hold the
// same *Binding after a reference operation; it is never mutated, so an
// assignment in any of them rebinds only that namespace's name.
type Binding struct {
	value cty.Value
}

// NewBinding creates a binding holding v.
func NewBinding(v cty.Value) *Binding {
	return &Binding{value: v}
}

// Value returns the value held by the binding.
func (b *Binding) Value() cty.Value {
	return b.value
}

// Namespace maps variable names to bindings. The global namespace also holds
// the callable built-ins.
type Namespace struct {
	mu    sync.RWMutex
	vars  map[string]*Binding
	funcs map[string]function.Function
}

// NewNamespace creates an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{
		vars:  make(map[string]*Binding),
		funcs: make(map[string]function.Function),
	}
}

// Get returns the value of name.
func (n *Namespace) Get(name string) (cty.Value, error) {
	b, ok := n.Binding(name)
	if !ok {
		return cty.NilVal, fmt.Errorf("%w: %q", ErrVariableNotFound, name)
	}
	return b.Value(), nil
}

// Set binds name to a fresh binding holding v. Other namespaces that shared
// the previous binding keep the old value.
func (n *Namespace) Set(name string, v cty.Value) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.vars[name] = NewBinding(v)
}

// Has reports whether name is bound in the namespace.
func (n *Namespace) Has(name string) bool {
	_, ok := n.Binding(name)
	return ok
}

// Binding returns the binding behind name.
func (n *Namespace) Binding(name string) (*Binding, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	b, ok := n.vars[name]
	return b, ok
}

// Bind makes name refer to b, replacing any previous binding of name.
func (n *Namespace) Bind(name string, b *Binding) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.vars[name] = b
}

// Names returns the bound variable names, sorted.
func (n *Namespace) Names() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	names := make([]string, 0, len(n.vars))
	for name := range n.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound variables.
func (n *Namespace) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.vars)
}

// Variables returns a snapshot of every variable's current value.
func (n *Namespace) Variables() map[string]cty.Value {
	n.mu.RLock()
	defer n.mu.RUnlock()
	vars := make(map[string]cty.Value, len(n.vars))
	for name, b := range n.vars {
		vars[name] = b.Value()
	}
	return vars
}

// SetFunction installs a callable under name.
func (n *Namespace) SetFunction(name string, fn function.Function) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.funcs[name] = fn
}

// Functions returns a snapshot of the installed callables.
func (n *Namespace) Functions() map[string]function.Function {
	n.mu.RLock()
	defer n.mu.RUnlock()
	funcs := make(map[string]function.Function, len(n.funcs))
	for name, fn := range n.funcs {
		funcs[name] = fn
	}
	return funcs
}

// Object returns the namespace's variables as a single cty object value.
func (n *Namespace) Object() cty.Value {
	vars := n.Variables()
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}

// clone returns a deep copy: every variable gets its own fresh binding.
// cty values are immutable, so sharing the value itself is safe.
func (n *Namespace) clone() *Namespace {
	n.mu.RLock()
	defer n.mu.RUnlock()
	c := NewNamespace()
	for name, b := range n.vars {
		c.vars[name] = NewBinding(b.Value())
	}
	for name, fn := range n.funcs {
		c.funcs[name] = fn
	}
	return c
}
