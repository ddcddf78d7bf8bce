package potential

import (
	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/status"
)

// SSSPBellmanFordOL computes a potential for every node of g: single-source
// shortest distances, from a virtual source reaching every node with weight
// 0, over the O-graph (every edge contributing an oGraphWeight). Per spec
// §4.3, at most |V|-1 relaxation rounds suffice for a negative-cycle-free
// graph; a final round that still finds a relaxable edge proves one
// exists, and its witness is reconstructed by chasing predecessor pointers
// |V| steps back from the still-relaxable edge (guaranteed to land inside
// the cycle).
func SSSPBellmanFordOL(g *graph.Graph) (map[string]int64, *status.Witness, error) {
	nodes := g.NodeNames()
	edges := collectOEdges(g)

	h := make(map[string]int64, len(nodes))
	pred := make(map[string]string, len(nodes))
	for _, n := range nodes {
		h[n] = 0 // virtual source reaches every node at distance 0
	}

	for i := 0; i < len(nodes)-1; i++ {
		changed := false
		for _, e := range edges {
			if cand := h[e.from] + e.weight; cand < h[e.to] {
				h[e.to] = cand
				pred[e.to] = e.from
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for _, e := range edges {
		if cand := h[e.from] + e.weight; cand < h[e.to] {
			w := reconstructCycle(g, pred, e.to, len(nodes))
			return nil, w, nil
		}
	}

	return h, nil, nil
}

type oEdge struct {
	name     string
	from, to string
	weight   int64
}

// collectOEdges extracts the O-graph's edges in deterministic (sorted
// edge-name) order.
func collectOEdges(g *graph.Graph) []oEdge {
	names := g.EdgeNames()
	out := make([]oEdge, 0, len(names))
	for _, name := range names {
		e, ok := g.Edge(name)
		if !ok {
			continue
		}
		w, ok := oGraphWeight(e)
		if !ok {
			continue
		}
		out = append(out, oEdge{name: name, from: e.From, to: e.To, weight: w})
	}
	return out
}

// reconstructCycle walks pred back from start for steps hops (guaranteed to
// enter the negative cycle within |V| steps), then follows the cycle back
// to its own start, returning it as a LoGraphPotFailure witness.
func reconstructCycle(g *graph.Graph, pred map[string]string, start string, steps int) *status.Witness {
	cur := start
	for i := 0; i < steps; i++ {
		p, ok := pred[cur]
		if !ok {
			break
		}
		cur = p
	}

	cycleStart := cur
	seq := []string{cycleStart}
	for {
		p, ok := pred[cur]
		if !ok {
			break
		}
		cur = p
		seq = append(seq, cur)
		if cur == cycleStart {
			break
		}
	}
	// seq is in reverse traversal order (tail -> head); reverse it.
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	edges := make([]status.CycleEdge, 0, len(seq))
	for i := 0; i+1 < len(seq); i++ {
		from, to := seq[i], seq[i+1]
		name, value := findOEdge(g, from, to)
		edges = append(edges, status.CycleEdge{Name: name, From: from, To: to, Value: value})
	}

	return &status.Witness{Kind: status.LoGraphPotFailure, Edges: edges}
}

// findOEdge returns the name and weight of some O-graph edge from->to,
// preferring the smallest weight if several exist (the one relaxation
// would actually have used).
func findOEdge(g *graph.Graph, from, to string) (string, int64) {
	var bestName string
	var bestVal int64
	found := false
	for _, e := range g.OutEdges(from) {
		if e.To != to {
			continue
		}
		w, ok := oGraphWeight(e)
		if !ok {
			continue
		}
		if !found || w < bestVal {
			bestName, bestVal, found = e.Name, w, true
		}
	}
	return bestName, bestVal
}
