package graph

import "github.com/jublebi/dynacon/label"

// ChildOfUnknown reports whether prop is a "child of unknown": its observer
// node's own q-label carries at least one Unknown (¿q) literal. Propositions
// with no registered observer are never children of unknown. This is the
// graph-aware predicate label.RemoveChildrenOfUnknown needs (label algebra
// itself has no notion of observer nodes).
func (g *Graph) ChildOfUnknown(prop string) bool {
	r := []rune(prop)
	if len(r) == 0 {
		return false
	}
	obsName, ok := g.ObserverOf(r[0])
	if !ok {
		return false
	}
	n, ok := g.Node(obsName)
	if !ok {
		return false
	}
	for _, p := range n.QLabel.Propositions() {
		if st, _ := n.QLabel.Get(p); st == label.Unknown {
			return true
		}
	}

	return false
}

// ObserverLabelSubsumer returns a label subsuming every observer label
// mentioned by l's propositions — i.e. the conjunction of observer_p's
// label for each proposition p in l — used by initcheck's WD4-style repair
// (E4: "every label subsumes the labels of the observer nodes for each
// proposition it mentions"). Returns (Empty(), true) if l mentions no
// proposition with a registered observer.
func (g *Graph) ObserverLabelSubsumer(l label.Label) (label.Label, bool) {
	out := label.Empty()
	for _, p := range l.Propositions() {
		r := []rune(p)
		if len(r) == 0 {
			continue
		}
		obsName, ok := g.ObserverOf(r[0])
		if !ok {
			continue
		}
		n, ok := g.Node(obsName)
		if !ok {
			continue
		}
		merged, ok := label.Conjunction(out, n.QLabel)
		if !ok {
			return out, false
		}
		out = merged
	}

	return out, true
}
