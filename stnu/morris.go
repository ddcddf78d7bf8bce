package stnu

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/status"
)

// Morris2014 implements spec §4.4.1's negative-node back-propagation: every
// node with an incoming ordinary edge of negative weight, or an incoming
// upper-case edge, is classified negative and back-propagated from. The
// outer loop repeats full passes over every negative node until a pass
// materializes no new edge (fixpoint) or a negative cycle is found.
//
// Recursive interruption between negative nodes (spec's "currently on the
// negative-node recursion stack") is not modeled as literal recursion;
// instead, repeated full passes compute the same least fixpoint via a
// worklist-style iteration, the same relationship Bellman-Ford bears to a
// single-pass topological relaxation.
func Morris2014(g *graph.Graph, opts ...Option) (*status.CheckStatus, error) {
	return runMorris(g, status.Morris2014, false, opts...)
}

// Morris2014Dispatchable additionally back-propagates along each
// contingent link's bypass once Morris2014's core fixpoint is reached,
// materializing a wait value wherever its magnitude w satisfies x < w <= y,
// per spec §4.4.1's Dispatchable variant. A wait with w <= x is skipped; it
// is not rewritten into an ordinary constraint.
func Morris2014Dispatchable(g *graph.Graph, opts ...Option) (*status.CheckStatus, error) {
	return runMorris(g, status.Morris2014Dispatchable, true, opts...)
}

func runMorris(g *graph.Graph, alg status.Algorithm, dispatchable bool, opts ...Option) (*status.CheckStatus, error) {
	start := timeNow()
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e, witness, err := newEngine(g, alg, cfg)
	if err != nil {
		return nil, err
	}
	if witness != nil {
		st := status.New(alg)
		st.Finished = true
		st.Controllable = false
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

		materialized, w, err := morrisPass(e)
		if err != nil {
			return nil, err
		}
		if w != nil {
			e.st.Controllable = false
			e.st.Finished = true
			e.st.Witness = w
			return e.finish(start), nil
		}
		if materialized == 0 {
			break
		}
	}

	if dispatchable {
		if w, err := morrisDispatchablePass(e); err != nil {
			return nil, err
		} else if w != nil {
			e.st.Controllable = false
			e.st.Finished = true
			e.st.Witness = w
			return e.finish(start), nil
		}
	}

	e.st.Controllable = true
	e.st.Finished = true
	return e.finish(start), nil
}

// negativeNodes returns, in sorted order, every node with an incoming
// ordinary edge of negative weight or an incoming upper-case edge.
func negativeNodes(g *graph.Graph) []string {
	seen := make(map[string]bool)
	for _, name := range g.EdgeNames() {
		e, ok := g.Edge(name)
		if !ok {
			continue
		}
		if e.Ordinary != nil {
			for _, p := range e.Ordinary.Entries() {
				if p.Value < 0 {
					seen[e.To] = true
				}
			}
		}
		if e.UpperCase != nil {
			seen[e.To] = true
		}
	}

	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// morrisPass runs one backward-Dijkstra back-propagation per negative
// node, returning how many edges were newly materialized, or a witness if
// a recursion-stack reentry (negative cycle) is found.
func morrisPass(e *engine) (int, *status.Witness, error) {
	materialized := 0
	for _, x := range negativeNodes(e.g) {
		n, w, err := backwardFrom(e, x)
		if err != nil {
			return 0, nil, err
		}
		if w != nil {
			return 0, w, nil
		}
		materialized += n
	}
	return materialized, nil, nil
}

// backwardFrom performs the bounded backward Dijkstra of spec §4.4.1 from
// negative node x: incoming negative-ordinary or upper-case edges seed the
// queue with their (negative) value; non-negative ordinary and lower-case
// edges relax normally. Any node popped with cumulative distance >= 0
// materializes a new ordinary edge from it to x and is not relaxed
// further. A node reentered while still on the active stack signals a
// negative cycle (ccLoop).
func backwardFrom(e *engine, x string) (int, *status.Witness, error) {
	dist := make(map[string]int64)
	pred := make(map[string]string)
	onStack := map[string]bool{x: true}
	finalized := make(map[string]bool)

	// viaCtg[n] names the contingent link whose upper-case edge most
	// recently gave n its current best distance. Every contingent link's
	// own upper- and lower-case values sum to x-y<0 by construction, so
	// relaxing straight back through that SAME link's lower-case edge is
	// vacuous, not a real cycle, and must be skipped (spec §4.1's
	// lower-case reduction excludes the edge's own upper-case label).
	viaCtg := make(map[string]string)

	pq := make(distPQ, 0)
	heap.Init(&pq)

	for _, in := range e.g.InEdges(x) {
		if in.Ordinary != nil {
			for _, p := range in.Ordinary.Entries() {
				if p.Value < 0 {
					if pushIfBetter(&pq, dist, pred, in.From, p.Value, x) {
						delete(viaCtg, in.From)
					}
				}
			}
		}
		if in.UpperCase != nil {
			if pushIfBetter(&pq, dist, pred, in.From, in.UpperCase.Value, x) {
				viaCtg[in.From] = in.UpperCase.Ctg
			}
		}
	}

	materialized := 0
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		y, d := item.node, item.dist
		if finalized[y] {
			continue
		}
		if dist[y] != d {
			continue
		}
		finalized[y] = true

		if d >= 0 {
			if y == x {
				// A 0-or-positive path back to the node we started from is
				// vacuous (x->x trivially holds); nothing to materialize.
				continue
			}
			name, err := materializeOrdinary(e.g, y, x, d, pred, y)
			if err != nil {
				return materialized, nil, err
			}
			e.st.Count("RELAX")
			e.st.RecordOrigin(name, originChain(pred, y, x))
			materialized++
			if w, err := e.applyPotentialUpdate(y); err != nil {
				return materialized, nil, err
			} else if w != nil {
				return materialized, w, nil
			}
			continue
		}

		if onStack[y] {
			return materialized, cycleWitness(e.g, pred, y, status.CCLoop), nil
		}
		onStack[y] = true

		for _, in := range e.g.InEdges(y) {
			if in.Ordinary != nil {
				for _, p := range in.Ordinary.Entries() {
					if p.Value >= 0 {
						if pushIfBetter(&pq, dist, pred, in.From, d+p.Value, y) {
							delete(viaCtg, in.From)
						}
					}
				}
			}
			if in.LowerCase != nil && in.LowerCase.Ctg != viaCtg[y] {
				if pushIfBetter(&pq, dist, pred, in.From, d+in.LowerCase.Value, y) {
					delete(viaCtg, in.From)
				}
			}
		}
	}

	return materialized, nil, nil
}

// pushIfBetter relaxes node to distance d from from, pushing it onto pq if
// this improves its current best distance. Reports whether it did.
func pushIfBetter(pq *distPQ, dist map[string]int64, pred map[string]string, node string, d int64, from string) bool {
	if cur, ok := dist[node]; !ok || d < cur {
		dist[node] = d
		pred[node] = from
		heap.Push(pq, &distItem{node: node, dist: d})
		return true
	}
	return false
}

// materializeOrdinary adds a new ordinary edge from->to with weight value,
// typed Derived, returning its name.
func materializeOrdinary(g *graph.Graph, from, to string, value int64, pred map[string]string, predOf string) (string, error) {
	name, err := g.AddEdge(from, to, graph.Derived, graph.WithOrdinaryValue(value))
	if err != nil {
		return "", fmt.Errorf("stnu: materializing %s->%s: %w", from, to, err)
	}
	return name, nil
}

// originChain walks pred from leaf back to root, returning the node names
// visited (used as a coarse edge-origin trace; SRNCycleFinder refines this
// with real edge names).
func originChain(pred map[string]string, leaf, root string) []string {
	var chain []string
	cur := leaf
	for cur != root {
		p, ok := pred[cur]
		if !ok {
			break
		}
		chain = append(chain, cur)
		cur = p
	}
	chain = append(chain, root)
	return chain
}

// cycleWitness reconstructs a negative cycle from pred, starting at the
// reentered node reentered, tagging it with kind.
func cycleWitness(g *graph.Graph, pred map[string]string, reentered string, kind status.Kind) *status.Witness {
	seq := []string{reentered}
	cur := reentered
	for {
		p, ok := pred[cur]
		if !ok {
			break
		}
		cur = p
		seq = append(seq, cur)
		if cur == reentered {
			break
		}
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	edges := make([]status.CycleEdge, 0, len(seq))
	for i := 0; i+1 < len(seq); i++ {
		from, to := seq[i], seq[i+1]
		name, val := bestEdgeValue(g, from, to)
		edges = append(edges, status.CycleEdge{Name: name, From: from, To: to, Value: val})
	}

	return &status.Witness{Kind: kind, Edges: edges}
}

// bestEdgeValue returns the name and value of the lightest ordinary edge
// from->to, for rendering a witness.
func bestEdgeValue(g *graph.Graph, from, to string) (string, int64) {
	var name string
	var val int64
	found := false
	for _, e := range g.OutEdges(from) {
		if e.To != to || e.Ordinary == nil {
			continue
		}
		for _, p := range e.Ordinary.Entries() {
			if !found || p.Value < val {
				name, val, found = e.Name, p.Value, true
			}
		}
	}
	return name, val
}

// morrisDispatchablePass implements spec §4.4.1's Dispatchable variant:
// for every contingent link (A, x, y, C), back-propagate from C through its
// incoming ordinary edges (the link's "bypass"), and for every node V this
// reaches at real distance q (i.e. C - V <= q), materialize a wait
// (V, C:-w, A) with w = y - q whenever x < w <= y — the wait lets V's edge
// into A be bypassed once w time units of C's duration have elapsed,
// instead of waiting for all of it. A node for which w falls outside
// (x, y] is left alone: either no wait is needed (w > y, the existing
// ordinary bound already suffices) or none is possible (w <= x).
func morrisDispatchablePass(e *engine) (*status.Witness, error) {
	for _, ctg := range e.g.ContingentNames() {
		act, ok := e.g.ActivationOf(ctg)
		if !ok {
			continue
		}
		lowerName, ok := e.g.LowerEdgeOf(ctg)
		if !ok {
			continue
		}
		lowerEdge, ok := e.g.Edge(lowerName)
		if !ok || lowerEdge.LowerCase == nil {
			continue
		}
		x := lowerEdge.LowerCase.Value

		upperName, ok := e.g.UpperEdgeOf(ctg)
		if !ok {
			continue
		}
		upperEdge, ok := e.g.Edge(upperName)
		if !ok || upperEdge.UpperCase == nil {
			continue
		}
		y := -upperEdge.UpperCase.Value

		q := backPropagateFromContingent(e, ctg)
		nodes := make([]string, 0, len(q))
		for v := range q {
			nodes = append(nodes, v)
		}
		sort.Strings(nodes)

		for _, v := range nodes {
			if v == act {
				continue
			}
			w := y - q[v]
			if w <= x || w > y {
				continue
			}
			if err := materializeWait(e.g, v, act, ctg, w); err != nil {
				return nil, err
			}
			e.st.Count("WAIT")
		}
	}
	return nil, nil
}

// backPropagateFromContingent runs a potential-reweighted Dijkstra back-
// propagation from ctg over ordinary in-edges only (mirrors
// rulRunner.backPropagate's RELAX- relaxation, minus the interruption/LOWER-
// handling that only applies to the contingent-centric RUL family), and
// returns every reached node's real distance to ctg (q, so ctg - v <= q).
// ctg itself is excluded from the result.
func backPropagateFromContingent(e *engine, ctg string) map[string]int64 {
	h := e.h
	dist := map[string]int64{ctg: h[ctg]}
	pred := make(map[string]string)
	finalized := make(map[string]bool)
	q := make(map[string]int64)

	pq := make(distPQ, 0)
	heap.Init(&pq)
	heap.Push(&pq, &distItem{node: ctg, dist: h[ctg]})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		u, key := item.node, item.dist
		if finalized[u] {
			continue
		}
		if dist[u] != key {
			continue
		}
		finalized[u] = true
		q[u] = key - h[u]

		for _, in := range e.g.InEdges(u) {
			if in.Ordinary == nil {
				continue
			}
			for _, p := range in.Ordinary.Entries() {
				reduced := p.Value + h[in.From] - h[u]
				pushIfBetter(&pq, dist, pred, in.From, key+reduced, u)
			}
		}
	}

	delete(q, ctg)
	return q
}

// materializeWait attaches wait (v, ctg:-w, act) to the v->act edge,
// creating a Derived edge if none already connects them. If an edge
// already carries a wait from a different contingent link, the tighter
// (smaller-magnitude) bound is kept — spec's Edge type has room for only
// one Wait per edge.
func materializeWait(g *graph.Graph, v, act, ctg string, w int64) error {
	for _, out := range g.OutEdges(v) {
		if out.To != act {
			continue
		}
		if out.Wait != nil && -out.Wait.Value <= w {
			return nil
		}
		out.Wait = &graph.WaitValue{Ctg: ctg, Value: -w}
		return nil
	}

	name, err := g.AddEdge(v, act, graph.Derived)
	if err != nil {
		return fmt.Errorf("stnu: materializing wait %s->%s: %w", v, act, err)
	}
	newEdge, _ := g.Edge(name)
	newEdge.Wait = &graph.WaitValue{Ctg: ctg, Value: -w}
	return nil
}
