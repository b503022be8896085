// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Instance structure, the atomic unit of execution in a
// sequential document.
//
// Why is Instance recursive?
//
// A document is authored as a tree: an instance may contain child instances
// that run before control continues at the parent's successor. The tree shape
// is kept as-is in the model. Flattening it into an addressable table is the
// job of the graph package, which keeps this type free of any navigation
// state.
package model

// TriggerID is the reserved id of the root instance. Every run starts here.
const TriggerID = "__trigger__"

// Instance is the format-agnostic representation of one document node.
// It is treated as immutable once a run has resolved it.
type Instance struct {
	// ID is unique across the whole document, including nested instances.
	ID string `json:"id" yaml:"id"`
	// Display is a human readable label used in logs and error messages.
	Display string `json:"display" yaml:"display"`
	// Expression is the program text handed to the evaluator. May be empty.
	Expression string `json:"expression" yaml:"expression"`
	// IsGlobalContext selects the global namespace as the write target.
	IsGlobalContext bool `json:"is_global_context" yaml:"is_global_context"`
	// NextID points at the successor instance. May be empty.
	NextID string `json:"next_id" yaml:"next_id"`
	// Contains lists the child instances, in execution order.
	Contains []*Instance `json:"contains" yaml:"contains"`
}

// HasExpression reports whether the instance carries anything to evaluate.
func (i *Instance) HasExpression() bool {
	return i.Expression != ""
}

// HasNext reports whether the instance names a successor.
func (i *Instance) HasNext() bool {
	return i.NextID != ""
}

// HasContains reports whether the instance has child instances.
func (i *Instance) HasContains() bool {
	return len(i.Contains) > 0
}

// Walk visits the instance and all of its descendants depth-first, in
// document order. It stops at the first error returned by fn.
func (i *Instance) Walk(fn func(*Instance) error) error {
	if err := fn(i); err != nil {
		return err
	}
	for _, child := range i.Contains {
		if child == nil {
			continue
		}
		if err := child.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of instances in the subtree rooted at i.
func (i *Instance) Count() int {
	n := 0
	_ = i.Walk(func(*Instance) error {
		n++
		return nil
	})
	return n
}
