package cstn

import (
	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/label"
	"github.com/jublebi/dynacon/lvmap"
	"github.com/jublebi/dynacon/satmath"
	"github.com/jublebi/dynacon/status"
)

// applyR0 implements spec §4.5's qR0: on an edge out of an observer node
// P? carrying a labeled value (w, αp) with w<=0, rewrite it to (w, α')
// where α' is α minus the literal p and minus children of unknown (and,
// when the destination is Z, minus children of unknown a second time —
// idempotent, since RemoveChildrenOfUnknown is already a fixpoint
// operation; kept as a literal reading of the spec's two clauses).
func applyR0(g *graph.Graph, st *status.CheckStatus) bool {
	changed := false
	for _, name := range g.EdgeNames() {
		e, ok := g.Edge(name)
		if !ok || e.Ordinary == nil {
			continue
		}
		obs, ok := g.Node(e.From)
		if !ok || obs.Observer == 0 {
			continue
		}
		prop := string(obs.Observer)

		out := lvmap.New()
		rewroteThis := false
		for _, p := range e.Ordinary.Entries() {
			l, v := p.Label, p.Value
			if v <= 0 {
				if _, has := l.Get(prop); has {
					l = l.Without(prop)
					l = label.RemoveChildrenOfUnknown(l, g.ChildOfUnknown)
					if e.To == graph.ZeroName {
						l = label.RemoveChildrenOfUnknown(l, g.ChildOfUnknown)
					}
					if l.Key() != p.Label.Key() {
						rewroteThis = true
					}
				}
			}
			out.Put(l, v)
		}
		if rewroteThis {
			e.Ordinary = out
			changed = true
			st.Count("qR0")
		}
	}
	return changed
}

// applyR3 implements spec §4.5's qR3: given an observer P? with an edge
// P?-(w,γ)->Z where w<=0, and for every other edge nS->Z carrying a
// labeled value (v,β) whose label contains a literal for P's observed
// proposition, merge (max{w,v}, (γ⋆β)†) onto nS->Z.
func applyR3(g *graph.Graph, st *status.CheckStatus) bool {
	changed := false
	for _, obsName := range observerNodes(g) {
		obs, _ := g.Node(obsName)
		prop := string(obs.Observer)

		for _, gammaEntry := range wEntriesIntoZero(g, obsName) {
			w, gamma := gammaEntry.Value, gammaEntry.Label
			if w > 0 {
				continue
			}
			for _, name := range g.EdgeNames() {
				e, ok := g.Edge(name)
				if !ok || e.Ordinary == nil || e.To != graph.ZeroName || e.From == obsName {
					continue
				}
				for _, p := range e.Ordinary.Entries() {
					if _, has := p.Label.Get(prop); !has {
						continue
					}
					merged := label.ConjunctionExtended(gamma, p.Label)
					merged = label.RemoveChildrenOfUnknown(merged, g.ChildOfUnknown)
					newVal := p.Value
					if w > newVal {
						newVal = w
					}
					if e.Ordinary.Put(merged, newVal) {
						changed = true
						st.Count("qR3")
					}
				}
			}
		}
	}
	return changed
}

// observerNodes returns every node registered as an observer, sorted.
func observerNodes(g *graph.Graph) []string {
	var names []string
	for _, n := range g.NodeNames() {
		node, ok := g.Node(n)
		if ok && node.Observer != 0 {
			names = append(names, n)
		}
	}
	return names
}

// wEntriesIntoZero returns the labeled entries of the edge from->Z, or nil
// if no such edge exists.
func wEntriesIntoZero(g *graph.Graph, from string) []lvmap.Pair {
	for _, e := range g.OutEdges(from) {
		if e.To == graph.ZeroName && e.Ordinary != nil {
			return e.Ordinary.Entries()
		}
	}
	return nil
}

// applyLP implements spec §4.5's qLP over every two adjacent edges A-B-C
// sharing node B: γ = (α⋆β)† and s = u+v. Propagates merge(A->C, γ, s)
// when s<0 and (u<0 or γ carries no ¿); detects a genuine (not DC) self-
// loop when A==C, s<0, and γ is unknown-free; when A==C and γ carries ¿ (a
// semi-reducible, harmless q-loop) it only counts the event: no -∞ value
// is stored anywhere. Returns a Witness only for the genuine not-DC case.
func applyLP(g *graph.Graph, st *status.CheckStatus) (bool, *status.Witness) {
	changed := false
	for _, bName := range g.NodeNames() {
		for _, ab := range g.InEdges(bName) {
			if ab.Ordinary == nil {
				continue
			}
			for _, bc := range g.OutEdges(bName) {
				if bc.Ordinary == nil {
					continue
				}
				aName, cName := ab.From, bc.To

				aNode, okA := g.Node(aName)
				cNode, okC := g.Node(cName)
				if !okA || !okC {
					continue
				}
				endpointConj, okConj := label.Conjunction(aNode.QLabel, cNode.QLabel)

				for _, abP := range ab.Ordinary.Entries() {
					for _, bcP := range bc.Ordinary.Entries() {
						u, alpha := abP.Value, abP.Label
						v, beta := bcP.Value, bcP.Label
						gamma := label.ConjunctionExtended(alpha, beta)
						gamma = label.RemoveChildrenOfUnknown(gamma, g.ChildOfUnknown)
						s := satmath.Add(u, v)

						if okConj && !label.Subsumes(gamma, endpointConj) {
							continue
						}

						hasUnknown := carriesUnknown(gamma)

						if aName == cName {
							if s >= 0 {
								continue
							}
							if !hasUnknown {
								return changed, selfLoopWitness(g, aName, ab, bc, u, v)
							}
							// Semi-reducible q-loop: the graph forbids
							// self-loop edges (E1), so there is nothing to
							// store the -infinity sentinel on; recording
							// the event is enough — it never blocks DC.
							st.Count("qLP-semi-reducible")
							continue
						}

						if s >= 0 {
							continue
						}
						if u >= 0 && hasUnknown {
							continue
						}

						acEdge, ok := findOrCreateEdge(g, aName, cName)
						if !ok {
							continue
						}
						if acEdge.Ordinary.Put(gamma, s) {
							changed = true
							st.Count("qLP")
						}
					}
				}
			}
		}
	}
	return changed, nil
}

func carriesUnknown(l label.Label) bool {
	for _, p := range l.Propositions() {
		if st, _ := l.Get(p); st == label.Unknown {
			return true
		}
	}
	return false
}

// findEdge returns some existing edge from->to, if any.
func findEdge(g *graph.Graph, from, to string) (*graph.Edge, bool) {
	for _, e := range g.OutEdges(from) {
		if e.To == to {
			return e, true
		}
	}
	return nil, false
}

// findOrCreateEdge returns an existing derived/requirement edge from->to
// carrying an Ordinary map, creating a new Derived one if none exists.
func findOrCreateEdge(g *graph.Graph, from, to string) (*graph.Edge, bool) {
	if e, ok := findEdge(g, from, to); ok {
		if e.Ordinary == nil {
			e.Ordinary = lvmap.New()
		}
		return e, true
	}
	name, err := g.AddEdge(from, to, graph.Derived)
	if err != nil {
		return nil, false
	}
	e, ok := g.Edge(name)
	if !ok {
		return nil, false
	}
	e.Ordinary = lvmap.New()
	return e, true
}

// selfLoopWitness renders the two-edge witness a->b->a for a genuine
// negative q-loop detected by qLP at node a, each edge carrying the value
// (u, v) that qLP combined (spec §8 scenario 6 contrasts this with the
// q-loop case, which is NOT a witness).
func selfLoopWitness(g *graph.Graph, a string, ab, bc *graph.Edge, u, v int64) *status.Witness {
	return &status.Witness{
		Kind: status.CCLoop,
		Edges: []status.CycleEdge{
			{Name: ab.Name, From: ab.From, To: ab.To, Value: u},
			{Name: bc.Name, From: bc.From, To: bc.To, Value: v},
		},
	}
}
