package dispatch

import "github.com/jublebi/dynacon/graph"

// addStandIns implements spec §4.6 step 4: adds weak, Internal-typed
// ordinary constraints representing each contingent link's bounds and each
// wait's ordinary "companion", so that the APSP closure of johnson.go sees
// them as ordinary competitors. Returns the names of every stand-in edge
// added, for removeStandIns to strip afterward.
func addStandIns(g *graph.Graph) []string {
	var added []string

	for _, ctg := range g.ContingentNames() {
		act, ok := g.ActivationOf(ctg)
		if !ok {
			continue
		}
		lowerName, _ := g.LowerEdgeOf(ctg)
		upperName, _ := g.UpperEdgeOf(ctg)
		lower, lok := g.Edge(lowerName)
		upper, uok := g.Edge(upperName)
		if !lok || !uok || lower.LowerCase == nil || upper.UpperCase == nil {
			continue
		}
		x := lower.LowerCase.Value
		y := -upper.UpperCase.Value

		if name, err := g.AddEdge(act, ctg, graph.Internal, graph.WithOrdinaryValue(y)); err == nil {
			added = append(added, name)
		}
		if name, err := g.AddEdge(ctg, act, graph.Internal, graph.WithOrdinaryValue(-x)); err == nil {
			added = append(added, name)
		}
	}

	for _, name := range g.EdgeNames() {
		e, ok := g.Edge(name)
		if !ok || e.Wait == nil {
			continue
		}
		if sa, err := g.AddEdge(e.From, e.To, graph.Internal, graph.WithOrdinaryValue(e.Wait.Value)); err == nil {
			added = append(added, sa)
		}
	}

	return added
}

// removeStandIns deletes every stand-in edge added by addStandIns (spec
// §4.6 step 7's "remove stand-ins").
func removeStandIns(g *graph.Graph, names []string) {
	for _, name := range names {
		_ = g.RemoveEdge(name)
	}
}
