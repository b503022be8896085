// Package builtins provides the six scope-manipulation functions that
// expressions can call.
//
// Every function acts relative to the instance that is executing when it is
// called, which the engine exposes through the Cursor interface. The set is
// installed once per run, into the global namespace only, so it is reachable
// from any expression whichever scope that expression writes to.
//
//	copy_this_context(dst)                       deep-copy this namespace to dst
//	copy_variable_from_context(src, name)        deep-copy src[name] here
//	refer_this_context(dst)                      alias dst to this namespace
//	refer_variable_from_context(src, name)       alias src[name] here
//	globalize_variable_from_this_context(name)   alias this[name] into global
//	raise_exception(message)                     fail the current instance
//
// The Go methods behind them are exported so the engine can reuse
// RaiseException to decorate evaluation failures.
package builtins
