package potential

import (
	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/satmath"
)

// oGraphWeight returns the weight e contributes to the O-graph of spec
// §4.3 — "edges whose weight is min(ordinary, lower-case)" — and whether e
// contributes at all. Upper-case and wait values are excluded by
// definition. When an edge carries several labeled ordinary entries (the
// CSTN case), the minimum across all of them is used: a potential must
// satisfy the triangle inequality under every scenario, so the most
// conservative (smallest) value is the only one safe to reweight with
// unconditionally.
func oGraphWeight(e *graph.Edge) (int64, bool) {
	have := false
	var best int64

	consider := func(v int64) {
		if !have || v < best {
			best = v
			have = true
		}
	}

	if e.Ordinary != nil {
		for _, p := range e.Ordinary.Entries() {
			consider(p.Value)
		}
	}
	if e.LowerCase != nil {
		consider(e.LowerCase.Value)
	}

	if !have || satmath.IsInf(best) {
		return 0, false
	}

	return best, true
}
