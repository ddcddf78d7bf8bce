// Package stnu implements the STNU dynamic-controllability checkers [S] of
// spec §4.4: Morris2014, Morris2014Dispatchable, FD_STNU (+ improved),
// RUL2018, RUL2021, and SRNCycleFinder. Every entry point takes an
// initialized *graph.Graph (see initcheck) and mutates it in place,
// returning a *status.CheckStatus recording the controllability verdict,
// rule counters, elapsed time, and — on failure — a witness negative
// cycle.
//
// All six algorithms share one engine (engine.go): potential computation
// via package potential, a sparse cooperative deadline check grounded on
// tsp/bb.go's bbEngine.deadlineCheck, and the materialized-edge bookkeeping
// that lets the outer fixpoint loop notice when a pass produced nothing
// new. Morris2014 and the RUL family differ only in which back-propagation
// rule they apply per negative node / upper-case edge; see morris.go and
// rul.go.
package stnu
