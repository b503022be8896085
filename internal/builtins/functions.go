package builtins

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Names under which the built-ins are installed in the global namespace.
const (
	CopyThisContextName                  = "copy_this_context"
	CopyVariableFromContextName          = "copy_variable_from_context"
	ReferThisContextName                 = "refer_this_context"
	ReferVariableFromContextName         = "refer_variable_from_context"
	GlobalizeVariableFromThisContextName = "globalize_variable_from_this_context"
	RaiseExceptionName                   = "raise_exception"
)

// Functions returns the built-ins as callables for the evaluator, keyed by
// the name expressions use.
func (s *Set) Functions() map[string]function.Function {
	return map[string]function.Function{
		CopyThisContextName: action([]string{"destination_key"}, func(args []string) error {
			return s.CopyThisContext(args[0])
		}),
		CopyVariableFromContextName: action([]string{"source_key", "variable"}, func(args []string) error {
			return s.CopyVariableFromContext(args[0], args[1])
		}),
		ReferThisContextName: action([]string{"destination_key"}, func(args []string) error {
			return s.ReferThisContext(args[0])
		}),
		ReferVariableFromContextName: action([]string{"source_key", "variable"}, func(args []string) error {
			return s.ReferVariableFromContext(args[0], args[1])
		}),
		GlobalizeVariableFromThisContextName: action([]string{"variable"}, func(args []string) error {
			return s.GlobalizeVariableFromThisContext(args[0])
		}),
		RaiseExceptionName: action([]string{"message"}, func(args []string) error {
			return &RaisedError{Message: args[0]}
		}),
	}
}

// action wraps fn as a cty function taking string parameters and returning
// true on success.
func action(params []string, fn func(args []string) error) function.Function {
	specParams := make([]function.Parameter, len(params))
	for i, name := range params {
		specParams[i] = function.Parameter{Name: name, Type: cty.String}
	}
	return function.New(&function.Spec{
		Params: specParams,
		Type:   function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			strs := make([]string, len(args))
			for i, arg := range args {
				strs[i] = arg.AsString()
			}
			if err := fn(strs); err != nil {
				return cty.NilVal, err
			}
			return cty.True, nil
		},
	})
}
