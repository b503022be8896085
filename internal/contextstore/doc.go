// Package contextstore owns every variable scope of a run: one reserved global
// namespace and one namespace per instance id.
//
// # Values and Bindings
//
// Namespace values are cty.Value, which are immutable. A namespace maps each
// variable name to a *Binding holding its value, and assigning to a name
// always installs a new binding.
//
// This gives the two duplication modes their meaning:
//
//   - copy operations create fresh bindings.
//   - referencing a variable shares its binding, which for immutable values
//     behaves like a copy: a later assignment on either side rebinds only
//     that side.
//   - referencing a whole namespace shares the namespace object itself, so
//     later writes through any key are visible through every other key,
//     immediately and in program order.
//
// # Ownership
//
// The store is the only component that creates, replaces or aliases
// namespaces. The evaluator receives *Namespace values and reads or writes
// variables through their methods; it never manipulates the key table.
//
// # Concurrency
//
// A run is single-threaded, but every method is guarded so the store may be
// inspected from another goroutine (tests, diagnostics) while a run is active.
package contextstore
