package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vk/seqdoc/internal/document"
	"github.com/vk/seqdoc/internal/expr"
	"github.com/vk/seqdoc/internal/model"
)

// Translator executes documents with a fixed evaluator.
type Translator struct {
	evaluator expr.Evaluator
	maxSteps  int
	newRunID  func() string
}

// Option configures a Translator.
type Option func(*Translator)

// WithMaxSteps limits the number of instances a single run may visit.
// Zero or a negative value means no limit.
func WithMaxSteps(n int) Option {
	return func(t *Translator) {
		t.maxSteps = n
	}
}

// WithRunIDGenerator replaces the default UUIDv7 run id source.
func WithRunIDGenerator(fn func() string) Option {
	return func(t *Translator) {
		t.newRunID = fn
	}
}

// New creates a Translator that evaluates expressions with evaluator.
func New(evaluator expr.Evaluator, opts ...Option) *Translator {
	t := &Translator{
		evaluator: evaluator,
		newRunID:  func() string { return uuid.Must(uuid.NewV7()).String() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate decodes a JSON document and executes it. The returned run is
// non-nil whenever decoding succeeded, including when execution failed, so
// callers can inspect how far it got.
func (t *Translator) Translate(ctx context.Context, serialized []byte) (*Run, error) {
	root, err := document.Decode(ctx, serialized, document.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return t.TranslateDocument(ctx, root)
}

// TranslateDocument executes an already decoded instance tree.
func (t *Translator) TranslateDocument(ctx context.Context, root *model.Instance) (*Run, error) {
	run := t.NewRun(root)
	return run, run.Execute(ctx)
}

// NewRun prepares a run over root without starting it.
func (t *Translator) NewRun(root *model.Instance) *Run {
	return newRun(t.newRunID(), root, t.evaluator, t.maxSteps)
}
