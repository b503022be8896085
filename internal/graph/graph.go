package graph

import (
	"context"
	"fmt"

	"github.com/vk/seqdoc/internal/ctxlog"
	"github.com/vk/seqdoc/internal/model"
)

// Graph is the flattened id → instance table of one document, plus the
// single pending resume id used to return from a child subtree.
type Graph struct {
	instances map[string]*model.Instance
	order     []string

	pendingResume string
}

// New creates an empty graph. Call Resolve to populate it.
func New() *Graph {
	return &Graph{
		instances: make(map[string]*model.Instance),
	}
}

// Resolve registers the root instance and every transitively contained
// instance in the table. It fails with ErrDuplicateInstanceID if an id is
// seen twice; in that case the graph is left unusable and should be
// discarded.
func (g *Graph) Resolve(ctx context.Context, root *model.Instance) error {
	logger := ctxlog.FromContext(ctx)
	if root == nil {
		return fmt.Errorf("cannot resolve a nil document")
	}

	err := root.Walk(func(inst *model.Instance) error {
		if _, exists := g.instances[inst.ID]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateInstanceID, inst.ID)
		}
		g.instances[inst.ID] = inst
		g.order = append(g.order, inst.ID)
		return nil
	})
	if err != nil {
		return err
	}

	logger.Debug("Document resolved into instance graph.", "instance_count", len(g.instances))
	return nil
}

// Lookup returns the instance registered under id.
func (g *Graph) Lookup(id string) (*model.Instance, error) {
	inst, ok := g.instances[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInstanceNotFound, id)
	}
	return inst, nil
}

// Len returns the number of registered instances.
func (g *Graph) Len() int {
	return len(g.instances)
}

// IDs returns every registered id in document order.
func (g *Graph) IDs() []string {
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	return ids
}

// PendingResume returns the pending resume id and whether one is set.
func (g *Graph) PendingResume() (string, bool) {
	return g.pendingResume, g.pendingResume != ""
}

// NavigateGeneral returns the instance named by inst.NextID.
func (g *Graph) NavigateGeneral(inst *model.Instance) (*model.Instance, error) {
	if !inst.HasNext() {
		return nil, fmt.Errorf("instance %q has no next_id to follow", inst.ID)
	}
	return g.structural(inst.NextID, "next_id of "+inst.ID)
}

// NavigateEnterContains returns the first child of inst. If inst has a
// successor, it becomes the pending resume id, replacing any earlier one.
func (g *Graph) NavigateEnterContains(inst *model.Instance) (*model.Instance, error) {
	if !inst.HasContains() || inst.Contains[0] == nil {
		return nil, fmt.Errorf("instance %q has no contained instances to enter", inst.ID)
	}
	if inst.HasNext() {
		// The successor is validated now rather than when the subtree ends, so
		// a dangling next_id surfaces at the instance that declared it.
		if _, err := g.structural(inst.NextID, "next_id of "+inst.ID); err != nil {
			return nil, err
		}
		g.pendingResume = inst.NextID
	}
	return g.structural(inst.Contains[0].ID, "first contained instance of "+inst.ID)
}

// NavigateBreakContains consumes the pending resume id. It returns nil, nil
// when nothing is pending, which tells the caller the traversal is over.
func (g *Graph) NavigateBreakContains() (*model.Instance, error) {
	if g.pendingResume == "" {
		return nil, nil
	}
	id := g.pendingResume
	g.pendingResume = ""
	return g.structural(id, "pending resume")
}

func (g *Graph) structural(id, what string) (*model.Instance, error) {
	inst, err := g.Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStructuralReference, what, err)
	}
	return inst, nil
}
