// Package graph provides the Instance Graph: the flat, addressable view of a
// sequential document and the navigation rules used to move through it.
//
// # Why Graph Package Exists
//
// A document is authored as a tree, but execution needs to jump by id: a
// `next_id` may point anywhere in the document, and a parent resumes at its
// successor only after its child subtree is exhausted. The graph flattens the
// tree once, up front, into an id → instance table and answers every
// navigation question from that table.
//
// # Navigation
//
// Three resolvers decide where execution goes after an instance:
//
//   - NavigateEnterContains: descend into the first child, remembering the
//     parent's successor as the pending resume id.
//   - NavigateGeneral: follow `next_id`.
//   - NavigateBreakContains: the current subtree is exhausted; consume the
//     pending resume id, if any.
//
// # Pending Resume
//
// The pending resume id is a single slot, not a stack. Entering a second
// `contains` before the first one has been consumed overwrites the slot, so
// the outer successor is lost. This mirrors the documented behaviour of the
// format and is covered by tests; callers needing stack semantics must not
// nest a parent that has a successor inside another such parent.
//
// # Lifecycle
//
//  1. **Created** once per run (ephemeral, never shared across runs)
//  2. **Resolved** from the document root before any instance executes
//  3. **Navigated** by the engine, one step at a time
//  4. **Discarded** when the run ends
//
// A Graph is not safe for concurrent use. The engine owns it exclusively.
package graph
