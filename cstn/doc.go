// Package cstn implements the CSTN DC checker [C] of spec §4.5: the
// labeled-propagation rules qR0, qR3, and qLP applied to a labeled
// constraint graph until fixpoint (controllable) or a definite negative
// q-loop (not DC). cstn/lazy.go additionally implements the CSTN-lazy
// piecewise-linear ∂-parametrized variant described in spec §4.5's "CSTN-
// lazy variant".
//
// Grounded on label/ and lvmap/ (this module) for the literal algebra and
// compacted value storage the rules consume, and on dfs/cycle.go's
// fixpoint/"progress measured by equality" idiom: the main loop here
// repeats qR0+qR3+qLP over every edge until a full pass changes no label
// set, exactly as cycle detection there repeats until no new cycle
// signature is produced.
package cstn
