// Package dispatch implements the dispatchability minimizer [D] of spec
// §4.6: given a network already certified DC by a dispatchability-
// preserving algorithm (stnu.Morris2014Dispatchable or stnu.FDSTNU), it
// collapses rigid components, adds stand-in constraints, runs a
// Johnson-reweighted all-pairs shortest path closure, extracts the
// undominated edges, and simplifies waits — producing the minimal
// equivalent dispatchable network usable at run time with O(|V|)
// lookahead.
//
// The APSP core is grounded on the teacher's matrix.FloydWarshall
// (matrix/impl_floydwarshall.go): the same fixed k->i->j loop order and
// dense, in-place relaxation, run here over Johnson-reweighted edge
// weights (via potentials Minimize recomputes from a fake source), with a
// dense O(|V|^3) closure standing in for a sparse Dijkstra-per-source
// Johnson's algorithm; the closure does not need the reweighted stand-in
// edges to be non-negative. Rigid-
// component discovery is grounded on gridgraph/components.go's BFS-based
// connected-component collection, adapted from grid cells to nodes joined
// by mutually-tight (0-weight, bidirectional) edges.
package dispatch
