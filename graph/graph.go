package graph

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// ZeroName is the canonical name of the distinguished zero time-point Z
// (invariant I3).
const ZeroName = "Z"

// Graph is the constraint-graph data model: a directed multigraph of
// labeled time-points and typed edges, plus the derived indices spec §3
// requires. It follows the teacher's split-lock discipline: muNode guards
// node storage, muEdge guards edge storage and every auxiliary index, and
// wherever both are held, muEdge is acquired before muNode.
type Graph struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	nodes map[string]*Node
	edges map[string]*Edge

	nextEdgeSeq uint64 // atomic counter for auto-generated edge names

	// Auxiliary indices (spec §3 "Graph").
	observerOf   map[rune]string   // proposition -> observer node name
	activation   map[string]string // contingent node name -> activation node name
	contingentOf map[string]string // activation node name -> contingent node name
	lowerEdgeOf  map[string]string // contingent node name -> lower-case edge name (A->C)
	upperEdgeOf  map[string]string // contingent node name -> upper-case edge name (C->A)
}

// New returns an empty Graph with no nodes or edges.
func New() *Graph {
	return &Graph{
		nodes:        make(map[string]*Node),
		edges:        make(map[string]*Edge),
		observerOf:   make(map[rune]string),
		activation:   make(map[string]string),
		contingentOf: make(map[string]string),
		lowerEdgeOf:  make(map[string]string),
		upperEdgeOf:  make(map[string]string),
	}
}

// nextAutoEdgeName produces a unique internal edge name of the form "e<n>"
// when the caller does not supply one, mirroring the teacher's
// nextEdgeID/edgeIDPrefix convention.
func (g *Graph) nextAutoEdgeName() string {
	n := atomic.AddUint64(&g.nextEdgeSeq, 1)
	return "e" + strconv.FormatUint(n, 10)
}
