// Package potential implements the potential engine [P] of spec §4.3: a
// Bellman-Ford pass over the lower-/ordinary-edge sub-graph (the "O-graph")
// that yields per-node potentials, and an incremental update that
// re-anchors those potentials after new edges appear incident to one node.
// Both are the Johnson's-algorithm reweighting step every later Dijkstra
// pass in stnu/ and dispatch/ relies on to treat a graph with negative
// edges as if it had none.
//
// Grounded on the teacher's dijkstra package: the container/heap
// lazy-decrease-key priority queue descends from dijkstra/dijkstra.go,
// retargeted
// from non-negative single-source shortest paths (which the teacher's own
// pre-scan explicitly refuses to run on negative weights) to potential
// computation over a graph that is expected to carry them. Negative-cycle
// detection borrows dfs/cycle.go's predecessor-chasing idiom for producing
// a witness once a relaxable edge survives the final round.
package potential
