// Package engine drives a translation run.
//
// A Translator is the long-lived, reusable entry point. Each call to
// Translate or TranslateDocument builds a fresh Run with its own instance
// graph and context store, so nothing survives between independent runs.
//
// A Run moves through Ready, Running and then Done or Failed. Starting a run
// resolves the document, creates the global namespace, installs the built-in
// functions into it and positions the cursor on the trigger instance. Every
// step then
//
//  1. records the instance in the visit log,
//  2. makes sure the instance has a local namespace,
//  3. evaluates its expression against the global namespace and either the
//     global namespace again (is_global_context) or its own local one,
//  4. picks the successor: first child, then next_id, then the pending
//     resume target, otherwise nothing.
//
// The run ends when there is no successor. Any error ends it as well; a
// failed or finished run cannot be driven again.
package engine
