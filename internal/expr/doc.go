// Package expr evaluates instance expressions against a pair of namespaces.
//
// The engine only depends on the Evaluator interface. The implementation
// shipped here reads an expression as an HCL attribute body:
//
//	total = a + b
//	_     = globalize_variable_from_this_context("total")
//
// Attributes run in source order and each one sees the effects of those
// before it. Names are resolved in the global namespace first and then in the
// local one; results are written to the local namespace, which is the global
// namespace itself for instances flagged `is_global_context`. The attribute
// name `_` discards its value, which is how built-ins are called purely for
// their side effects.
//
// Any failure is reported as an *EvaluationError carrying the line and column
// of the offending source position, relative to the start of the expression.
package expr
