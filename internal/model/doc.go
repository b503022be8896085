// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go struct representation of a sequential
// document. Its core purpose is to hold a strongly-typed, in-memory tree of
// the user's instances, independent of the format they were authored in.
//
// # Core Concepts
//
//   - Instance: one node of the document. It optionally carries an expression
//     to evaluate, a flag selecting the namespace it writes to, a pointer to
//     its successor and a list of child instances.
//
//   - Trigger: the reserved id of the root instance. A run always starts at
//     the trigger.
//
// Why a separate model package?
//
// Loaders (JSON, YAML, HCL) produce this model, and the graph and engine
// packages consume it. Keeping it free of behaviour lets each loader be tested
// on its own and lets the engine be driven from a tree built in Go code.
package model
