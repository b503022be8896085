// Package document turns serialized documents into a model.Instance tree.
//
// Three formats are understood:
//
//   - JSON, the canonical format (`contains` arrays of nested instances)
//   - YAML, with the same field names as JSON
//   - HCL, where nesting is expressed with `instance "<id>" { ... }` blocks
//
// JSON and YAML input is checked against a CUE schema before it is decoded,
// so unknown fields, missing required fields and wrong types are reported
// with the path of the offending value. HCL input is checked by its own
// block schema while decoding.
//
// Structural rules that span the whole tree (unique ids, presence of the
// trigger instance, resolvable references) are not checked here; they belong
// to the graph and engine packages.
package document
