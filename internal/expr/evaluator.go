package expr

import (
	"context"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/seqdoc/internal/contextstore"
	"github.com/vk/seqdoc/internal/ctxlog"
)

// DiscardName is the attribute name whose value is evaluated and dropped.
const DiscardName = "_"

// DefaultFilename is the pseudo filename reported in evaluation errors.
const DefaultFilename = "expression.hcl"

// Evaluator runs one expression. Names are resolved in global first, then in
// local. Results are written to local. When an instance runs in the global
// context, global and local are the same namespace.
type Evaluator interface {
	Evaluate(ctx context.Context, expression string, global, local *contextstore.Namespace) error
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, expression string, global, local *contextstore.Namespace) error

// Evaluate calls f.
func (f EvaluatorFunc) Evaluate(ctx context.Context, expression string, global, local *contextstore.Namespace) error {
	return f(ctx, expression, global, local)
}

// HCLEvaluator evaluates expressions written as HCL attribute bodies.
type HCLEvaluator struct {
	filename string
}

// NewHCLEvaluator creates an HCL evaluator.
func NewHCLEvaluator() *HCLEvaluator {
	return &HCLEvaluator{filename: DefaultFilename}
}

// Evaluate implements Evaluator.
func (e *HCLEvaluator) Evaluate(ctx context.Context, expression string, global, local *contextstore.Namespace) error {
	logger := ctxlog.FromContext(ctx)

	file, diags := hclsyntax.ParseConfig([]byte(expression), e.filename, hcl.InitialPos)
	if diags.HasErrors() {
		return newEvaluationError(e.filename, diags)
	}
	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return newEvaluationError(e.filename, diags)
	}

	for _, attr := range inSourceOrder(attrs) {
		if err := ctx.Err(); err != nil {
			return err
		}
		value, diags := attr.Expr.Value(evalContext(global, local))
		if diags.HasErrors() {
			return newEvaluationError(e.filename, diags)
		}
		if attr.Name == DiscardName {
			continue
		}
		local.Set(attr.Name, value)
		logger.Debug("Assigned variable.", "name", attr.Name, "type", value.Type().FriendlyName())
	}
	return nil
}

// evalContext layers global over local so that the global tier is consulted
// first. Built-ins live in the global namespace and are always reachable;
// the standard functions sit at the root and can be shadowed by them.
func evalContext(global, local *contextstore.Namespace) *hcl.EvalContext {
	root := &hcl.EvalContext{Functions: standardFunctions}
	if global == local {
		ctx := root.NewChild()
		ctx.Variables = global.Variables()
		ctx.Functions = global.Functions()
		return ctx
	}
	localCtx := root.NewChild()
	localCtx.Variables = local.Variables()
	globalCtx := localCtx.NewChild()
	globalCtx.Variables = global.Variables()
	globalCtx.Functions = global.Functions()
	return globalCtx
}

func inSourceOrder(attrs hcl.Attributes) []*hcl.Attribute {
	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})
	return ordered
}
