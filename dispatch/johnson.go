package dispatch

import (
	"sort"

	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/satmath"
)

// apsp is the all-pairs shortest distance table over the logical
// (rigid-component-collapsed) nodes, indexed by name. A missing pair means
// "no path" (satmath.Inf).
type apsp struct {
	dist map[string]map[string]int64
}

func (a *apsp) get(from, to string) (int64, bool) {
	if from == to {
		return 0, true
	}
	row, ok := a.dist[from]
	if !ok {
		return 0, false
	}
	v, ok := row[to]
	if !ok || v >= satmath.Inf {
		return 0, false
	}
	return v, true
}

// computeAPSP implements spec §4.6 step 5's "Johnson's APSP": edges are
// first reweighted by the potentials h (computed by Minimize before the
// stand-ins were added, so a stand-in edge can still reweight negative),
// then closed with a dense, in-place triple loop in the teacher's own
// fixed k->i->j order (matrix.FloydWarshall), trading Johnson's usual
// Dijkstra-per-source pass for the teacher's dense relaxation since the
// triple loop tolerates negative weights and the node count here (post
// rigid-component collapse) is small enough that O(|V|^3) is the simpler
// choice. Edges
// whose endpoints collapse to the same representative are tight-component
// internals and contribute nothing to inter-component distance.
func computeAPSP(g *graph.Graph, repOf map[string]string, h map[string]int64) *apsp {
	reps := make(map[string]bool)
	for _, r := range repOf {
		reps[r] = true
	}
	names := make([]string, 0, len(reps))
	for r := range reps {
		names = append(names, r)
	}
	sort.Strings(names)

	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}
	n := len(names)

	const inf = satmath.Inf
	mat := make([][]int64, n)
	for i := range mat {
		mat[i] = make([]int64, n)
		for j := range mat[i] {
			if i == j {
				mat[i][j] = 0
			} else {
				mat[i][j] = inf
			}
		}
	}

	for _, name := range g.EdgeNames() {
		e, ok := g.Edge(name)
		if !ok || e.Ordinary == nil || e.Ordinary.Len() == 0 {
			continue
		}
		ru, rv := repOf[e.From], repOf[e.To]
		if ru == "" || rv == "" || ru == rv {
			continue
		}
		best := int64(0)
		set := false
		for _, p := range e.Ordinary.Entries() {
			if !set || p.Value < best {
				best, set = p.Value, true
			}
		}
		if !set {
			continue
		}
		reweighted := satmath.Add(satmath.Add(best, h[e.From]), -h[e.To])
		i, j := idx[ru], idx[rv]
		if reweighted < mat[i][j] {
			mat[i][j] = reweighted
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := mat[i][k]
			if ik >= inf {
				continue
			}
			for j := 0; j < n; j++ {
				kj := mat[k][j]
				if kj >= inf {
					continue
				}
				if cand := satmath.Add(ik, kj); cand < mat[i][j] {
					mat[i][j] = cand
				}
			}
		}
	}

	dist := make(map[string]map[string]int64, n)
	for i, a := range names {
		row := make(map[string]int64, n)
		for j, b := range names {
			if mat[i][j] >= inf {
				continue
			}
			// Undo the reweighting: real(a,b) = raw(a,b) - h(a) + h(b).
			row[b] = satmath.Add(satmath.Add(mat[i][j], -h[a]), h[b])
		}
		dist[a] = row
	}

	return &apsp{dist: dist}
}
