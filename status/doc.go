// Package status defines CheckStatus, the aggregate result object returned
// by every checker in dynacon (stnu, cstn, dispatch): the controllability
// verdict, termination flags, rule-application counters, elapsed time, and
// an optional witness negative cycle, per spec §3 ("Check status").
//
// CheckStatus intentionally carries no reference to the graph package: it
// is a flat, serializable value (the io/graphml collaborator renders it as
// the out-of-band status side-channel described in spec §6), modeled on
// core.GraphStats's read-only summary shape.
package status
