// Package initcheck implements the normalization and well-definition
// checker [I] of spec §4.1: zero-node enforcement, per-edge label repair
// (WD1+WD3), contingent-link pairing and registration, horizon computation,
// and the optional contingent normal-form rewrite.
//
// InitAndCheck never mutates its input graph in place: per spec §7's
// rollback requirement for MalformedInput/Overflow, it clones the graph
// first (graph.Graph.Clone, mirroring the teacher's
// core/methods_clone.go-style defensive copy) and only returns the mutated
// clone once every step has succeeded. On failure the caller's original
// graph is left untouched.
package initcheck
