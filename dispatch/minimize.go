package dispatch

import (
	"time"

	"github.com/jublebi/dynacon/dcerr"
	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/potential"
	"github.com/jublebi/dynacon/status"
)

// Minimize implements the dispatchability post-processor [D] of spec §4.6.
// g must already be certified DC by a dispatchability-preserving algorithm
// (stnu.Morris2014Dispatchable or stnu.FDSTNU); Minimize mutates it in
// place (matching the stnu engines' own in-place convention) into the
// minimal equivalent dispatchable network and returns the resulting
// status. Per spec, Minimize never reports NotDC: a negative cycle found
// while recomputing potentials means the precondition was violated, and is
// reported as dcerr.ErrContractViolation instead.
func Minimize(g *graph.Graph, opts ...Option) (*status.CheckStatus, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	start := time.Now()

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	st := status.New(status.DispatchMinimizer)

	// Step 1: potentials from a fake zero-weight source.
	h, witness, err := potential.SSSPBellmanFordOL(g)
	if err != nil {
		return nil, err
	}
	if witness != nil {
		return nil, dcerr.ErrContractViolation
	}

	// Step 2: rigid components over mutually-tight 0 edges.
	repOf, groups := rigidGroups(g)

	// Step 4: stand-in ordinary constraints for contingent bounds and wait
	// companions.
	standInNames := addStandIns(g)

	// Step 5: Johnson-reweighted APSP closure over the collapsed view.
	dist := computeAPSP(g, repOf, h)

	// Step 6: undominated-edge extraction (transitive reduction via a
	// concrete two-hop witness).
	removedOrdinary := removeDominatedOrdinary(g, dist, repOf)
	st.RuleCounters["dominated-edges-removed"] = int64(removedOrdinary)

	// Step 7, part 1: dominated/shadowed wait removal.
	removedWaits := removeRedundantWaits(g, dist, repOf)
	st.RuleCounters["redundant-waits-removed"] = int64(removedWaits)

	// Step 7, part 2: remove the stand-ins introduced in step 4.
	removeStandIns(g, standInNames)

	// Step 7, part 3: re-expand rigid components into ±0 edges (this
	// implementation collapses only for the APSP/domination computation and
	// never renames or removes original nodes, so "expansion" reduces to
	// guaranteeing the canonical pair edges exist — see DESIGN.md).
	reinsertRigidEdges(g, groups)

	g.RemoveEmptyEdges()

	st.Controllable = true
	st.Finished = true
	st.ElapsedTime = time.Since(start)
	return st, nil
}

// removeDominatedOrdinary implements spec §4.6 step 6's deletion half:
// a direct ordinary edge (u,v,w) is dominated, and removed, when some
// other representative k offers a strictly-as-good two-hop witness
// dist(ru,k) + dist(k,rv) <= w. Requirement/Derived edges only; Internal
// stand-ins and Contingent lower-/upper-case edges are untouched, and
// intra-rigid-component edges (ru==rv) are left for reinsertRigidEdges.
func removeDominatedOrdinary(g *graph.Graph, d *apsp, repOf map[string]string) int {
	removed := 0
	for _, name := range g.EdgeNames() {
		e, ok := g.Edge(name)
		if !ok || e.Ordinary == nil || e.Ordinary.Len() == 0 {
			continue
		}
		if e.Type == graph.Internal || e.Type == graph.Contingent {
			continue
		}
		ru, rv := repOf[e.From], repOf[e.To]
		if ru == "" || rv == "" || ru == rv {
			continue
		}
		w, ok := e.Ordinary.Get(e.Ordinary.Entries()[0].Label)
		if !ok {
			continue
		}
		if isDominated(d, ru, rv, w) {
			_ = g.RemoveEdge(name)
			removed++
		}
	}
	return removed
}

// isDominated reports whether some intermediate representative offers a
// two-hop path at least as good as the direct weight w.
func isDominated(d *apsp, from, to string, w int64) bool {
	row, ok := d.dist[from]
	if !ok {
		return false
	}
	for k, duk := range row {
		if k == from || k == to {
			continue
		}
		dkv, ok := d.get(k, to)
		if !ok {
			continue
		}
		if duk+dkv <= w {
			return true
		}
	}
	return false
}

// removeRedundantWaits implements spec §4.6 step 7's wait half: a wait of
// magnitude v on edge V->A is redundant when the ordinary shortest distance
// from V to A already enforces at least as tight a bound.
func removeRedundantWaits(g *graph.Graph, d *apsp, repOf map[string]string) int {
	removed := 0
	for _, name := range g.EdgeNames() {
		e, ok := g.Edge(name)
		if !ok || e.Wait == nil {
			continue
		}
		ru, rv := repOf[e.From], repOf[e.To]
		dist, ok := d.get(ru, rv)
		if ok && dist <= e.Wait.Value {
			e.Wait = nil
			removed++
		}
	}
	return removed
}

// reinsertRigidEdges ensures every rigid component's members each carry a
// canonical ±0 round-trip edge to their representative, synthesizing one
// where the original topology connected members only via a chain of other
// members (spec §4.6 step 7's "expand ... back into ±offset edges", offset
// always 0 under this package's mutual-zero-edge rigidity test).
func reinsertRigidEdges(g *graph.Graph, groups map[string][]string) {
	for rep, members := range groups {
		for _, m := range members {
			if !hasZeroEdge(g, rep, m) {
				_, _ = g.AddEdge(rep, m, graph.Derived, graph.WithOrdinaryValue(0))
			}
			if !hasZeroEdge(g, m, rep) {
				_, _ = g.AddEdge(m, rep, graph.Derived, graph.WithOrdinaryValue(0))
			}
		}
	}
}

func hasZeroEdge(g *graph.Graph, from, to string) bool {
	for _, e := range g.OutEdges(from) {
		if e.To != to || e.Ordinary == nil {
			continue
		}
		for _, p := range e.Ordinary.Entries() {
			if p.Value == 0 {
				return true
			}
		}
	}
	return false
}
