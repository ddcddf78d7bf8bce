// Package satmath implements the saturating integer arithmetic spec §7
// requires: "all integer arithmetic uses saturating addition to a sentinel
// +∞, and subtraction is forbidden against it". Add and Mul saturate to Inf
// instead of wrapping; Sub and Negate return an error for an infinite
// operand. initcheck's horizon computation, cstn's rule sums and lazy
// weights, and dispatch's APSP closure use this package; potential's
// Bellman-Ford relaxation and stnu's back-propagation add plain int64
// values and do not go through it.
package satmath
