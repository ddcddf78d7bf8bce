package dispatch

import (
	"sort"

	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/label"
)

// rigidGroups finds spec §4.6 step 2's rigid components: maximal sets of
// nodes mutually joined by 0-weight ordinary edges in both directions (a
// distance-0 cycle under the potentials already computed, since a tight
// 0-weight edge each way forces the two endpoints to occur at the same
// instant in every execution). Discovery mirrors gridgraph.
// ConnectedComponents' BFS-over-a-queue shape, adapted from grid
// neighbors to "joined by a mutually-tight 0 edge".
//
// Returns repOf, mapping every node to its component's representative
// (itself, for a singleton), and groups, mapping each representative to
// the sorted list of its other members (empty for a singleton).
func rigidGroups(g *graph.Graph) (repOf map[string]string, groups map[string][]string) {
	zero := zeroEdgeAdjacency(g)

	visited := make(map[string]bool)
	comps := make([][]string, 0)

	for _, start := range g.NodeNames() {
		if visited[start] {
			continue
		}
		queue := []string{start}
		visited[start] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			node := queue[qi]
			comp = append(comp, node)
			for _, nb := range zero[node] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		comps = append(comps, comp)
	}

	repOf = make(map[string]string, len(visited))
	groups = make(map[string][]string)

	for _, comp := range comps {
		rep := chooseRepresentative(g, comp)
		var members []string
		for _, n := range comp {
			repOf[n] = rep
			if n != rep {
				members = append(members, n)
			}
		}
		sort.Strings(members)
		groups[rep] = members
	}

	return repOf, groups
}

// zeroEdgeAdjacency returns, for every node, the set of nodes reachable by
// a 0-weight ordinary edge present in both directions (a->b and b->a, both
// carrying a 0 entry) — the "mutually tight" edges that define a rigid
// component.
func zeroEdgeAdjacency(g *graph.Graph) map[string][]string {
	fwd := make(map[[2]string]bool)
	for _, name := range g.EdgeNames() {
		e, ok := g.Edge(name)
		if !ok || e.Ordinary == nil {
			continue
		}
		if v, has := e.Ordinary.Get(label.Empty()); has && v == 0 {
			fwd[[2]string{e.From, e.To}] = true
		}
	}

	adj := make(map[string][]string)
	for pair := range fwd {
		a, b := pair[0], pair[1]
		if fwd[[2]string{b, a}] {
			adj[a] = append(adj[a], b)
			adj[b] = append(adj[b], a)
		}
	}
	return adj
}

// chooseRepresentative implements spec §4.6 step 2's preference order:
// Z first, then an activation node, then lexicographically smallest.
func chooseRepresentative(g *graph.Graph, comp []string) string {
	for _, n := range comp {
		if n == graph.ZeroName {
			return n
		}
	}

	var bestActivation string
	for _, n := range comp {
		if _, isActivation := g.ContingentOf(n); isActivation {
			if bestActivation == "" || n < bestActivation {
				bestActivation = n
			}
		}
	}
	if bestActivation != "" {
		return bestActivation
	}

	best := comp[0]
	for _, n := range comp {
		if n < best {
			best = n
		}
	}
	return best
}
