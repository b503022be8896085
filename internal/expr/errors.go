package expr

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// EvaluationError is returned when an expression fails to parse or evaluate.
type EvaluationError struct {
	Filename string
	Line     int
	Column   int
	Message  string
	// Cause is the error returned by a failing function call, or the full
	// HCL diagnostics for any other failure.
	Cause error
}

// Error implements the error interface.
func (e *EvaluationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *EvaluationError) Unwrap() error {
	return e.Cause
}

// SourceLine returns the expression-relative line the failure originated at.
func (e *EvaluationError) SourceLine() int {
	return e.Line
}

// newEvaluationError builds an EvaluationError from the first error
// diagnostic in diags.
func newEvaluationError(filename string, diags hcl.Diagnostics) *EvaluationError {
	evalErr := &EvaluationError{
		Filename: filename,
		Message:  diags.Error(),
		Cause:    diags,
	}

	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		if diag.Subject != nil {
			evalErr.Filename = diag.Subject.Filename
			evalErr.Line = diag.Subject.Start.Line
			evalErr.Column = diag.Subject.Start.Column
		}
		if extra, ok := diag.Extra.(hclsyntax.FunctionCallDiagExtra); ok && extra.FunctionCallError() != nil {
			evalErr.Message = extra.FunctionCallError().Error()
			evalErr.Cause = extra.FunctionCallError()
			break
		}
		if diag.Detail != "" {
			evalErr.Message = fmt.Sprintf("%s: %s", diag.Summary, diag.Detail)
		} else {
			evalErr.Message = diag.Summary
		}
		break
	}
	return evalErr
}
