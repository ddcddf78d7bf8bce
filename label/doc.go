// Package label implements the propositional q-label algebra that labels
// vertices, edges, and observed propositions throughout dynacon (the [L]
// component of the design).
//
// A Label is a conjunction of literals drawn from a finite set of observed
// propositions. Each literal is one of three states for its proposition:
// Positive (p), Negative (¬p), or Unknown (¿p, read "maybe p" — the scenario
// has not yet decided p). The empty Label (no literals) is the universal
// label, satisfied by every scenario; every label subsumes it, and it
// subsumes only itself.
//
// Two conjunction operators are provided:
//
//   - Conjunction merges two labels and fails (ok=false) if the result would
//     require a proposition to be simultaneously Positive and Negative.
//   - ConjunctionExtended never fails: a Positive/Negative clash is instead
//     resolved to Unknown (¿p), per spec §4.2's extended conjunction used by
//     the qLP rule (§4.5).
//
// Subsumes implements label specialization ordering: Subsumes(a, b) holds
// when every literal of b also appears in a, i.e. every scenario consistent
// with a is also consistent with b. RemoveChildrenOfUnknown strips literals
// on propositions whose observer node's own label is unknown for a
// proposition the literal's proposition causally depends on — callers supply
// that dependency via an ObserverUnknownFunc, since only the graph knows
// observer placement (label algebra itself stays graph-agnostic).
package label
