package initcheck

import (
	"fmt"

	"github.com/jublebi/dynacon/dcctx"
	"github.com/jublebi/dynacon/dcerr"
	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/label"
	"github.com/jublebi/dynacon/lvmap"
	"github.com/jublebi/dynacon/satmath"
)

// InitAndCheck validates and normalizes g per spec §4.1, returning a new,
// independent Graph (g itself is never mutated — see doc.go). It fails with
// an error wrapping dcerr.ErrMalformedInput or dcerr.ErrOverflow when an
// invariant cannot be repaired.
func InitAndCheck(g *graph.Graph, opts ...Option) (*graph.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("initcheck: nil graph: %w", dcerr.ErrMalformedInput)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := g.Clone()

	enforceZero(out, cfg)

	if err := repairEdgeLabels(out); err != nil {
		return nil, err
	}
	out.RemoveEmptyEdges()
	removeSelfLoops(out)

	if err := pairContingentLinks(out, cfg); err != nil {
		return nil, err
	}

	h, err := computeHorizon(out)
	if err != nil {
		return nil, err
	}
	addHorizonEdges(out, h, cfg)

	if cfg.NormalForm {
		if err := rewriteNormalForm(out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// enforceZero creates Z if absent and clears a non-empty label on it with a
// diagnostic (spec §4.1 "Zero-node enforcement").
func enforceZero(g *graph.Graph, cfg Options) {
	z := g.EnsureZero()
	if !z.QLabel.IsEmpty() {
		cfg.Ctx.Logf(dcctx.Info, "initcheck: clearing non-empty label on zero node (was %s)", z.QLabel.String())
		z.QLabel = label.Empty()
	}
}

// repairEdgeLabels implements WD1+WD3: every labeled value's label is made
// consistent with, and made to subsume, the conjunction of its endpoints'
// labels and every observer label it mentions. An entry that cannot be
// repaired (the conjunction is inconsistent) is dropped rather than failing
// the whole check, per spec's "removing or conjoining when repairable".
func repairEdgeLabels(g *graph.Graph) error {
	for _, name := range g.EdgeNames() {
		e, ok := g.Edge(name)
		if !ok {
			continue
		}
		from, ok := g.Node(e.From)
		if !ok {
			return fmt.Errorf("initcheck: edge %s: missing source node: %w", name, dcerr.ErrMalformedInput)
		}
		to, ok := g.Node(e.To)
		if !ok {
			return fmt.Errorf("initcheck: edge %s: missing dest node: %w", name, dcerr.ErrMalformedInput)
		}

		endpointConj, ok := label.Conjunction(from.QLabel, to.QLabel)
		if !ok {
			// Endpoints themselves disagree: no labeled value on this edge
			// can ever be consistent. Drop every entry; RemoveEmptyEdges
			// will collect the now-empty edge.
			if e.Ordinary != nil {
				e.Ordinary = nil
			}
			continue
		}

		if e.Ordinary != nil {
			e.Ordinary = repairMap(g, e.Ordinary, endpointConj)
		}
		if e.UpperCase != nil {
			if l, ok := repairLabel(g, e.UpperCase.Label, endpointConj); ok {
				e.UpperCase.Label = l
			} else {
				e.UpperCase = nil
			}
		}
		if e.LowerCase != nil {
			if l, ok := repairLabel(g, e.LowerCase.Label, endpointConj); ok {
				e.LowerCase.Label = l
			} else {
				e.LowerCase = nil
			}
		}
		if e.Wait != nil {
			if l, ok := repairLabel(g, e.Wait.Label, endpointConj); ok {
				e.Wait.Label = l
			} else {
				e.Wait = nil
			}
		}
	}

	return nil
}

// repairLabel conjoins l with endpointConj and with the observer-label
// subsumer for every proposition l mentions (E3/E4), dropping children of
// unknown (spec's "removeChildrenOfUnknown" cleanup). Returns (Label{},
// false) if the result is inconsistent.
func repairLabel(g *graph.Graph, l, endpointConj label.Label) (label.Label, bool) {
	merged, ok := label.Conjunction(l, endpointConj)
	if !ok {
		return label.Label{}, false
	}
	obsSub, ok := g.ObserverLabelSubsumer(merged)
	if !ok {
		return label.Label{}, false
	}
	merged, ok = label.Conjunction(merged, obsSub)
	if !ok {
		return label.Label{}, false
	}
	merged = label.RemoveChildrenOfUnknown(merged, g.ChildOfUnknown)

	return merged, true
}

// repairMap rebuilds an Ordinary lvmap.Map, repairing every entry's label
// and dropping entries that cannot be repaired. Returns nil if no entry
// survives, so the caller can treat the edge as empty.
func repairMap(g *graph.Graph, m *lvmap.Map, endpointConj label.Label) *lvmap.Map {
	entries := m.Entries()
	if len(entries) == 0 {
		return nil
	}

	out := lvmap.New()
	for _, p := range entries {
		if l, ok := repairLabel(g, p.Label, endpointConj); ok {
			out.Put(l, p.Value)
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// removeSelfLoops defensively drops any edge whose endpoints coincide.
// AddEdge already refuses to create these; this guards against a
// hand-assembled Graph that bypassed it.
func removeSelfLoops(g *graph.Graph) {
	for _, name := range g.EdgeNames() {
		e, ok := g.Edge(name)
		if ok && e.From == e.To {
			_ = g.RemoveEdge(name)
		}
	}
}

// pairContingentLinks groups the two Contingent-typed edges of each link by
// shared endpoint pair, validates 0 <= x < y, and registers the link's
// indices via graph.RegisterContingentLink (spec §4.1 "Contingent pairing").
func pairContingentLinks(g *graph.Graph, cfg Options) error {
	type halves struct {
		lowerName, upperName   string
		activation, contingent string
		x, y                   int64
		haveLower, haveUpper   bool
	}
	links := make(map[[2]string]*halves)

	key := func(a, b string) [2]string {
		if a < b {
			return [2]string{a, b}
		}
		return [2]string{b, a}
	}

	for _, name := range g.EdgeNames() {
		e, ok := g.Edge(name)
		if !ok || e.Type != graph.Contingent {
			continue
		}
		k := key(e.From, e.To)
		h, ok := links[k]
		if !ok {
			h = &halves{}
			links[k] = h
		}
		if e.LowerCase != nil {
			h.lowerName = name
			h.activation = e.From
			h.contingent = e.To
			h.x = e.LowerCase.Value
			h.haveLower = true
		}
		if e.UpperCase != nil {
			h.upperName = name
			h.activation = e.To
			h.contingent = e.From
			h.y = -e.UpperCase.Value
			h.haveUpper = true
		}
	}

	for _, h := range links {
		if !h.haveLower || !h.haveUpper {
			return fmt.Errorf("initcheck: contingent link %s/%s has only one side: %w",
				h.activation, h.contingent, dcerr.ErrMalformedInput)
		}
		if h.x < 0 || h.x >= h.y {
			return fmt.Errorf("initcheck: contingent link %s->%s bounds [%d,%d): %w",
				h.activation, h.contingent, h.x, h.y, ErrBadContingentBounds)
		}
		if err := g.RegisterContingentLink(h.activation, h.contingent, h.lowerName, h.upperName); err != nil {
			return fmt.Errorf("initcheck: %s: %w", err.Error(), ErrSharedActivation)
		}
	}

	return nil
}

// computeHorizon returns H = maxAbsWeight * (|V|-1), saturating per
// satmath's arithmetic (spec §4.1 "Horizon").
func computeHorizon(g *graph.Graph) (int64, error) {
	var maxW int64
	consider := func(v int64) {
		if v < 0 {
			v = -v
		}
		if satmath.IsInf(v) {
			return
		}
		if v > maxW {
			maxW = v
		}
	}

	for _, name := range g.EdgeNames() {
		e, ok := g.Edge(name)
		if !ok {
			continue
		}
		if e.Ordinary != nil {
			for _, p := range e.Ordinary.Entries() {
				consider(p.Value)
			}
		}
		if e.UpperCase != nil {
			consider(e.UpperCase.Value)
		}
		if e.LowerCase != nil {
			consider(e.LowerCase.Value)
		}
	}

	n := int64(g.NodeCount())
	if n <= 1 {
		return 0, nil
	}
	h := satmath.Mul(maxW, n-1)
	if satmath.IsInf(h) {
		return 0, fmt.Errorf("initcheck: horizon overflowed at maxWeight=%d, |V|-1=%d: %w",
			maxW, n-1, ErrHorizonOverflow)
	}
	return h, nil
}

// addHorizonEdges adds the universal 0-weight X->Z bounding edges (every
// node occurs at or after the origin) and, for CSTN callers only, the
// H-weighted Z->X edges that additionally bound every node from above
// (spec §4.1 "Horizon").
func addHorizonEdges(g *graph.Graph, h int64, cfg Options) {
	zero := g.EnsureZero()
	for _, name := range g.NodeNames() {
		if name == zero.Name {
			continue
		}
		_, _ = g.AddEdge(name, zero.Name, graph.Internal, graph.WithOrdinaryValue(0))
		if cfg.CSTNHorizonEdges {
			_, _ = g.AddEdge(zero.Name, name, graph.Internal, graph.WithOrdinaryValue(h))
		}
	}
}

// rewriteNormalForm applies spec §4.1's "Normal-form option": every
// contingent link (A,x,y,C) with x>0 is rewritten into (A',0,y-x,C) by
// splitting A into A and a fresh rigid twin A', connected by the two ±x
// requirement edges A->A' and A'->A.
func rewriteNormalForm(g *graph.Graph) error {
	for _, ctg := range g.ContingentNames() {
		act, ok := g.ActivationOf(ctg)
		if !ok {
			continue
		}
		lowerName, ok := g.LowerEdgeOf(ctg)
		if !ok {
			continue
		}
		lowerEdge, ok := g.Edge(lowerName)
		if !ok || lowerEdge.LowerCase == nil {
			continue
		}
		x := lowerEdge.LowerCase.Value
		if x <= 0 {
			continue
		}
		upperName, ok := g.UpperEdgeOf(ctg)
		if !ok {
			continue
		}
		upperEdge, ok := g.Edge(upperName)
		if !ok || upperEdge.UpperCase == nil {
			continue
		}
		y := -upperEdge.UpperCase.Value

		twin := act + "'"
		if err := g.AddNode(twin); err != nil {
			return fmt.Errorf("initcheck: normal-form split of %s: %w", act, err)
		}
		if _, err := g.AddEdge(act, twin, graph.Requirement, graph.WithOrdinaryValue(x)); err != nil {
			return err
		}
		if _, err := g.AddEdge(twin, act, graph.Requirement, graph.WithOrdinaryValue(-x)); err != nil {
			return err
		}

		if err := g.RemoveEdge(lowerName); err != nil {
			return err
		}
		if err := g.RemoveEdge(upperName); err != nil {
			return err
		}
		newLower, newUpper, err := g.AddContingentLink(twin, ctg, 0, y-x)
		if err != nil {
			return err
		}
		if err := g.RegisterContingentLink(twin, ctg, newLower, newUpper); err != nil {
			return fmt.Errorf("initcheck: normal-form re-registration of %s: %w", ctg, err)
		}
	}

	return nil
}
