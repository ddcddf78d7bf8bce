// Package graph implements the constraint-graph data model ([G] in the
// design): time-points (Node), typed edges (Edge) carrying ordinary,
// contingent (upper-/lower-case), and wait values, and the auxiliary
// indices (observer, activation, lower-case edge, upper-case edge) that
// spec §3 requires.
//
// Graph follows the teacher's (lvlath/core.Graph) locking discipline: one
// RWMutex guards node storage, a second guards edge storage and the
// auxiliary indices, and wherever both are held, the edge lock is acquired
// before the node lock. Unlike the teacher, which stores a single integer Weight
// per Edge, an Edge here carries a small set of independently-optional
// value slots — Ordinary (a lvmap.Map, so an ordinary edge is a CSTN
// labeled edge whose every CSTNU value happens to be labeled with the
// universal label in the pure-STNU case), UpperCase, LowerCase, and Wait —
// because spec §3 and the Design Notes call for a single edge to carry
// several roles at once (e.g. a back-propagated ordinary value competing
// with a wait on the same edge). This is a lighter-weight realization of
// the Design Notes' "tagged EdgeKind sum type in a vector" suggestion: each
// role gets its own optional field rather than a generic slice of variants,
// which keeps call sites (dispatch's per-role rewrite, stnu's wait
// materialization) a direct field access instead of a type switch. The
// Design Notes' integer-arena storage suggestion is likewise traded for the
// teacher's own map-keyed storage (core.Graph is map-based, not an arena),
// since Go's map delete already gives the O(1) "tombstone" removal the
// notes were after — see DESIGN.md.
package graph
