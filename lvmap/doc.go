// Package lvmap implements the labeled-value map ([V] in the design): a
// mapping from label.Label to int64 maintaining the compaction invariant of
// spec §4.2 — no stored pair is dominated by another under label
// subsumption.
//
// Put(ℓ, v) inserts the pair (ℓ, v) only if no existing pair (ℓ', v')
// already dominates it (ℓ' subsumes ℓ and v' ≤ v); conversely, if the new
// pair dominates existing pairs (ℓ subsumes ℓ' and v ≤ v'), those are
// removed. Merge folds another Map's entries in via repeated Put.
//
// Iteration is exposed only in label-ordered (sorted-key) form, per spec
// §5's determinism guarantee ("labeled values within an edge in
// label-ordered order").
package lvmap
