package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vk/seqdoc/internal/builtins"
	"github.com/vk/seqdoc/internal/contextstore"
	"github.com/vk/seqdoc/internal/ctxlog"
	"github.com/vk/seqdoc/internal/expr"
	"github.com/vk/seqdoc/internal/graph"
	"github.com/vk/seqdoc/internal/model"
)

// Run is a single execution of a document. It is not safe for concurrent
// use; it is driven by one goroutine from Ready to its final state.
type Run struct {
	id        string
	root      *model.Instance
	evaluator expr.Evaluator
	maxSteps  int

	graph    *graph.Graph
	store    *contextstore.Store
	builtins *builtins.Set

	state   State
	current *model.Instance
	visited []string
}

func newRun(id string, root *model.Instance, evaluator expr.Evaluator, maxSteps int) *Run {
	r := &Run{
		id:        id,
		root:      root,
		evaluator: evaluator,
		maxSteps:  maxSteps,
		graph:     graph.New(),
		store:     contextstore.New(),
		state:     StateReady,
	}
	r.builtins = builtins.New(r.store, r)
	return r
}

// ID returns the run id used in log records.
func (r *Run) ID() string { return r.id }

// State returns the lifecycle state.
func (r *Run) State() State { return r.state }

// Current returns the instance being executed, or the one that failed. It
// is nil before the run starts and after it completes.
func (r *Run) Current() *model.Instance { return r.current }

// Visited returns the ids of the executed instances in visit order.
func (r *Run) Visited() []string {
	out := make([]string, len(r.visited))
	copy(out, r.visited)
	return out
}

// Store returns the run's context store.
func (r *Run) Store() *contextstore.Store { return r.store }

// Graph returns the run's instance graph.
func (r *Run) Graph() *graph.Graph { return r.graph }

// Execute drives the run to completion. It returns the first error, after
// which the run is in StateFailed.
func (r *Run) Execute(ctx context.Context) error {
	if r.state != StateReady {
		return fmt.Errorf("%w: run %s is %s", ErrRunFinished, r.id, r.state)
	}
	ctx = ctxlog.With(ctx, "run_id", r.id)
	logger := ctxlog.FromContext(ctx)

	r.state = StateRunning
	logger.Debug("Run started.")
	if err := r.start(ctx); err != nil {
		return r.fail(logger, err)
	}

	for r.current != nil {
		if err := ctx.Err(); err != nil {
			return r.fail(logger, fmt.Errorf("run cancelled before %q: %w", r.current.ID, err))
		}
		if r.maxSteps > 0 && len(r.visited) >= r.maxSteps {
			return r.fail(logger, &StepsExceededError{Limit: r.maxSteps, Last: r.visited[len(r.visited)-1]})
		}

		next, err := r.step(ctx)
		if err != nil {
			return r.fail(logger, err)
		}
		r.current = next
	}

	r.state = StateDone
	logger.Info("Run completed.", "steps", len(r.visited))
	return nil
}

// start resolves the graph, prepares the global namespace and positions
// the cursor on the trigger.
func (r *Run) start(ctx context.Context) error {
	if err := r.graph.Resolve(ctx, r.root); err != nil {
		return err
	}
	if _, err := r.graph.Lookup(contextstore.GlobalKey); err == nil {
		return fmt.Errorf("%w: %q names the global namespace", ErrReservedInstanceID, contextstore.GlobalKey)
	}

	r.store.InitGlobal()
	if err := r.store.InstallBuiltins(r.builtins.Functions()); err != nil {
		return fmt.Errorf("failed to install built-ins: %w", err)
	}

	trigger, err := r.graph.Lookup(model.TriggerID)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrMissingTrigger, graph.ErrStructuralReference, err)
	}
	r.current = trigger
	ctxlog.FromContext(ctx).Debug("Run positioned on trigger.", "instance_count", r.graph.Len())
	return nil
}

// step executes the current instance and returns its successor.
func (r *Run) step(ctx context.Context) (*model.Instance, error) {
	inst := r.current
	logger := ctxlog.FromContext(ctx).With("instance_id", inst.ID)
	r.visited = append(r.visited, inst.ID)

	if r.store.InitLocal(inst.ID) {
		logger.Debug("Local namespace created.")
	}

	if inst.HasExpression() {
		logger.Debug("Evaluating expression.", "display", inst.Display, "global_context", inst.IsGlobalContext)
		global, err := r.store.Global()
		if err != nil {
			return nil, err
		}
		local := global
		if !inst.IsGlobalContext {
			if local, err = r.store.Namespace(inst.ID); err != nil {
				return nil, err
			}
		}
		if err := r.evaluator.Evaluate(ctx, inst.Expression, global, local); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return nil, fmt.Errorf("run cancelled during %q: %w", inst.ID, err)
			}
			return nil, r.builtins.RaiseException(err)
		}
	}

	return r.advance(inst)
}

// advance picks the successor of inst.
func (r *Run) advance(inst *model.Instance) (*model.Instance, error) {
	switch {
	case inst.HasContains():
		return r.graph.NavigateEnterContains(inst)
	case inst.HasNext():
		return r.graph.NavigateGeneral(inst)
	default:
		if _, ok := r.graph.PendingResume(); ok {
			return r.graph.NavigateBreakContains()
		}
		return nil, nil
	}
}

func (r *Run) fail(logger *slog.Logger, err error) error {
	r.state = StateFailed
	attrs := []any{"error", err, "steps", len(r.visited)}
	if r.current != nil {
		attrs = append(attrs, "instance_id", r.current.ID)
	}
	logger.Error("Run failed.", attrs...)
	return err
}
