package stnu

import (
	"container/heap"

	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/status"
)

// linkState is the three-state lifecycle spec §4.4.2 step 3 assigns to an
// upper-case edge's back-propagation: unstarted (never entered),
// started (currently on the recursion stack), finished (fully
// back-propagated). A node popped while its own link is started signals a
// negative (interruption) cycle.
type linkState int

const (
	unstarted linkState = iota
	started
	finished
)

// rulConfig distinguishes the five named variants of spec §4.4.2/§4.4.3 that
// share one engine.
type rulConfig struct {
	// strictInterruption selects RUL2018's behavior: report NotDC the
	// moment back-propagation reaches an activation node of a
	// not-yet-finished link, instead of RUL2021's defer-and-recurse.
	strictInterruption bool
	// waits enables FD_STNU's wait-generation pass (morrisDispatchablePass,
	// which back-propagates into each contingent node over ordinary
	// in-edges) once the contingent-centric loop reaches fixpoint.
	waits bool
	// improved prunes waits whose magnitude strictly exceeds the
	// contingent's upper bound y (FD_STNU_IMPROVED).
	improved bool
	// expand enables SRNCycleFinder's origin-chain cycle expansion.
	expand bool
}

// RUL2018 implements spec §4.4.2's contingent-link-centric family in its
// original, more conservative form: back-propagation that reaches the
// activation node of a second, not-yet-finished upper-case edge reports
// NotDC immediately rather than deferring into it. See DESIGN.md for why
// this is the recorded behavioral delta against RUL2021.
func RUL2018(g *graph.Graph, opts ...Option) (*status.CheckStatus, error) {
	return runRUL(g, status.RUL2018, rulConfig{strictInterruption: true}, opts...)
}

// RUL2021 refines RUL2018: an interruption into a not-yet-started link
// defers by recursing into that link's own back-propagation first, then
// resumes (spec §4.4.2 step 3).
func RUL2021(g *graph.Graph, opts ...Option) (*status.CheckStatus, error) {
	return runRUL(g, status.RUL2021, rulConfig{}, opts...)
}

// FDSTNU is RUL2021's contingent-centric fixpoint followed by wait
// generation (spec §4.4.2 "FD_STNU"). Waits come from morrisDispatchablePass,
// a back-propagation into each contingent node C over ordinary in-edges; no
// forward propagation from C is performed.
func FDSTNU(g *graph.Graph, opts ...Option) (*status.CheckStatus, error) {
	return runRUL(g, status.FDSTNU, rulConfig{waits: true}, opts...)
}

// FDSTNUImproved is FD_STNU with the redundant-wait pruning of spec's
// "improved" variant.
func FDSTNUImproved(g *graph.Graph, opts ...Option) (*status.CheckStatus, error) {
	return runRUL(g, status.FDSTNUImproved, rulConfig{waits: true, improved: true}, opts...)
}

// SRNCycleFinder extends RUL2021 with edge-origin tracking so a detected
// negative cycle is expanded back into original graph edges (spec
// §4.4.3, T7).
func SRNCycleFinder(g *graph.Graph, opts ...Option) (*status.CheckStatus, error) {
	return runRUL(g, status.SRNCycleFinder, rulConfig{expand: true}, opts...)
}

// rulRunner holds the per-invocation lifecycle state shared across the
// (possibly recursive) per-link back-propagations of a single run.
type rulRunner struct {
	*engine
	cfg   rulConfig
	state map[string]linkState
}

func runRUL(g *graph.Graph, alg status.Algorithm, cfg rulConfig, opts ...Option) (*status.CheckStatus, error) {
	start := timeNow()
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e, witness, err := newEngine(g, alg, o)
	if err != nil {
		return nil, err
	}
	if witness != nil {
		st := status.New(alg)
		st.Finished = true
		st.Witness = witness
		st.ElapsedTime = timeNow().Sub(start)
		return st, nil
	}

	for {
		if e.deadlineCheck() {
			e.st.Timeout = true
			e.st.Finished = false
			return e.finish(start), nil
		}

		r := &rulRunner{engine: e, cfg: cfg, state: make(map[string]linkState)}

		materialized := 0
		var w *status.Witness
		for _, ctg := range e.g.ContingentNames() {
			n, ww, err := r.process(ctg)
			if err != nil {
				return nil, err
			}
			materialized += n
			if ww != nil {
				w = ww
				break
			}
		}
		if w != nil {
			if cfg.expand {
				w = expandWitness(e.g, e.st, w)
			}
			e.st.Controllable = false
			e.st.Finished = true
			e.st.Witness = w
			return e.finish(start), nil
		}
		if materialized == 0 {
			break
		}
	}

	if cfg.waits {
		if w, err := morrisDispatchablePass(e); err != nil {
			return nil, err
		} else if w != nil {
			e.st.Controllable = false
			e.st.Finished = true
			e.st.Witness = w
			return e.finish(start), nil
		}
		if cfg.improved {
			pruneRedundantWaits(e.g)
		}
	}

	e.st.Controllable = true
	e.st.Finished = true
	return e.finish(start), nil
}

// process runs the contingent-centric back-propagation of spec §4.4.2 for
// the upper-case edge of ctg, recursing into an interrupting, unstarted
// link first when cfg allows it. Returns the number of newly materialized
// edges, or a witness if a negative (CCLoop or interruption) cycle is
// found.
func (r *rulRunner) process(ctg string) (int, *status.Witness, error) {
	if r.state[ctg] == finished {
		return 0, nil, nil
	}
	if r.state[ctg] == started {
		// Re-entered while still on the stack: a genuine interruption
		// cycle, reported by the caller that detected the re-entry; this
		// guard only protects against accidental double-recursion.
		return 0, nil, nil
	}
	r.state[ctg] = started

	act, ok := r.g.ActivationOf(ctg)
	if !ok {
		r.state[ctg] = finished
		return 0, nil, nil
	}
	lowerName, ok := r.g.LowerEdgeOf(ctg)
	if !ok {
		r.state[ctg] = finished
		return 0, nil, nil
	}
	lowerEdge, ok := r.g.Edge(lowerName)
	if !ok || lowerEdge.LowerCase == nil {
		r.state[ctg] = finished
		return 0, nil, nil
	}
	upperName, ok := r.g.UpperEdgeOf(ctg)
	if !ok {
		r.state[ctg] = finished
		return 0, nil, nil
	}
	upperEdge, ok := r.g.Edge(upperName)
	if !ok || upperEdge.UpperCase == nil {
		r.state[ctg] = finished
		return 0, nil, nil
	}

	x := lowerEdge.LowerCase.Value
	y := -upperEdge.UpperCase.Value
	delta := y - x

	materialized := 0
	w, n, err := r.backPropagate(ctg, act, delta, y)
	materialized += n
	if err != nil {
		return materialized, nil, err
	}
	if w != nil {
		return materialized, w, nil
	}

	r.state[ctg] = finished
	return materialized, nil, nil
}

// backPropagate implements spec §4.4.2 steps 2-4: a reweighted Dijkstra
// back-propagation from ctg over ordinary in-edges (relaxing, per RELAX-,
// or substituting a contingent predecessor's activation, per LOWER-),
// materializing X->act for every node whose final reduced distance reaches
// or exceeds delta.
func (r *rulRunner) backPropagate(ctg, act string, delta, y int64) (*status.Witness, int, error) {
	h := r.h
	dist := map[string]int64{ctg: h[ctg]}
	pred := map[string]string{}
	finalized := map[string]bool{}
	entered := false // whether ctg itself has already been popped once

	pq := make(distPQ, 0)
	heap.Init(&pq)
	heap.Push(&pq, &distItem{node: ctg, dist: h[ctg]})

	materialized := 0

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		xNode, key := item.node, item.dist
		if finalized[xNode] {
			continue
		}
		if dist[xNode] != key {
			continue
		}
		finalized[xNode] = true

		deltaX := key - h[xNode]

		if xNode == ctg {
			if entered && deltaX < 0 {
				return cycleWitness(r.g, pred, xNode, status.CCLoop), materialized, nil
			}
			entered = true
		}

		if deltaX >= delta {
			if xNode != ctg {
				name, err := materializeOrdinary(r.g, xNode, act, deltaX-y, nil, "")
				if err != nil {
					return nil, materialized, err
				}
				r.st.Count("RELAX-")
				r.st.RecordOrigin(name, originChain(pred, xNode, ctg))
				materialized++
				if w, err := r.applyPotentialUpdate(xNode); err != nil {
					return nil, materialized, err
				} else if w != nil {
					return w, materialized, nil
				}
			}
			continue
		}

		if xNode != ctg {
			if otherCtg, isAct := r.g.ContingentOf(xNode); isAct && otherCtg != ctg {
				switch r.state[otherCtg] {
				case started:
					return r.interruptionWitness(pred, xNode, ctg, otherCtg), materialized, nil
				case unstarted:
					if r.cfg.strictInterruption {
						return r.interruptionWitness(pred, xNode, ctg, otherCtg), materialized, nil
					}
					n, w, err := r.process(otherCtg)
					materialized += n
					if err != nil {
						return nil, materialized, err
					}
					if w != nil {
						return w, materialized, nil
					}
				}
			}
		}

		for _, in := range r.g.InEdges(xNode) {
			if in.Ordinary != nil {
				for _, p := range in.Ordinary.Entries() {
					reduced := p.Value + h[in.From] - h[xNode]
					pushIfBetter(&pq, dist, pred, in.From, key+reduced, xNode)
				}
			}
		}

		// LOWER-: if xNode is itself a contingent node, its own minimum
		// duration always elapses, so any bound ending at xNode also
		// (weakly) holds at its activation.
		if lowerName, ok := r.g.LowerEdgeOf(xNode); ok {
			if lowerEdge, ok := r.g.Edge(lowerName); ok && lowerEdge.LowerCase != nil {
				if xAct, ok := r.g.ActivationOf(xNode); ok {
					reduced := lowerEdge.LowerCase.Value + h[xAct] - h[xNode]
					pushIfBetter(&pq, dist, pred, xAct, key+reduced, xNode)
					r.st.Count("LOWER-")
				}
			}
		}
	}

	return nil, materialized, nil
}

// interruptionWitness builds a Witness of kind InterruptionCycle when
// back-propagation from one contingent link reaches the activation node of
// another link that is itself mid-back-propagation (spec §4.4.2 step 3,
// §8 scenario 4).
func (r *rulRunner) interruptionWitness(pred map[string]string, at, ctg, otherCtg string) *status.Witness {
	chain := originChain(pred, at, ctg)
	edges := make([]status.CycleEdge, 0, len(chain))
	for i := 0; i+1 < len(chain); i++ {
		from, to := chain[i], chain[i+1]
		name, val := bestEdgeValue(r.g, from, to)
		edges = append(edges, status.CycleEdge{Name: name, From: from, To: to, Value: val})
	}
	if act, ok := r.g.ActivationOf(otherCtg); ok {
		edges = append(edges, status.CycleEdge{From: at, To: act, Value: -1})
	}
	return &status.Witness{Kind: status.InterruptionCycle, Edges: edges}
}

// pruneRedundantWaits removes any wait value whose magnitude strictly
// exceeds its contingent link's upper bound y (FD_STNU_IMPROVED, spec
// §4.4.2: "omits waits whose negated value strictly exceeds the
// contingent's upper bound, provably redundant").
func pruneRedundantWaits(g *graph.Graph) {
	for _, name := range g.EdgeNames() {
		e, ok := g.Edge(name)
		if !ok || e.Wait == nil {
			continue
		}
		upperName, ok := g.UpperEdgeOf(e.Wait.Ctg)
		if !ok {
			continue
		}
		upperEdge, ok := g.Edge(upperName)
		if !ok || upperEdge.UpperCase == nil {
			continue
		}
		y := -upperEdge.UpperCase.Value
		if -e.Wait.Value > y {
			e.Wait = nil
		}
	}
}

// expandWitness walks st.EdgeOrigins to rewrite w's edges into a sequence
// containing only original (requirement/contingent) edges, per spec
// §4.4.3's SRNCycleFinder contract and T7. Derived edges absent from
// EdgeOrigins (e.g. ones materialized by a pass this witness itself did
// not pass through) are left as-is.
func expandWitness(g *graph.Graph, st *status.CheckStatus, w *status.Witness) *status.Witness {
	if w == nil || st == nil {
		return w
	}
	out := &status.Witness{Kind: w.Kind}
	var walk func(name string) []status.CycleEdge
	walk = func(name string) []status.CycleEdge {
		e, ok := g.Edge(name)
		if ok && e.Type != graph.Derived {
			val, _ := bestEdgeValueName(g, name)
			return []status.CycleEdge{{Name: name, From: e.From, To: e.To, Value: val}}
		}
		chain, ok := st.EdgeOrigins[name]
		if !ok {
			if e != nil {
				val, _ := bestEdgeValueName(g, name)
				return []status.CycleEdge{{Name: name, From: e.From, To: e.To, Value: val}}
			}
			return nil
		}
		var acc []status.CycleEdge
		for _, n := range chain {
			acc = append(acc, walk(n)...)
		}
		return acc
	}
	for _, ce := range w.Edges {
		if ce.Name == "" {
			out.Edges = append(out.Edges, ce)
			continue
		}
		out.Edges = append(out.Edges, walk(ce.Name)...)
	}
	return out
}

func bestEdgeValueName(g *graph.Graph, name string) (int64, bool) {
	e, ok := g.Edge(name)
	if !ok || e.Ordinary == nil {
		return 0, false
	}
	var best int64
	found := false
	for _, p := range e.Ordinary.Entries() {
		if !found || p.Value < best {
			best, found = p.Value, true
		}
	}
	return best, found
}
