package graph

// AddContingentLink creates the lower-case edge (activation -> contingent,
// value x) and upper-case edge (contingent -> activation, value -y) of a
// contingent link in one call. Because both x and y are supplied together,
// this constructor never needs to "synthesize a missing companion" the way
// spec §4.1 describes for a partially-specified input file: that judgment
// call belongs to whichever collaborator assembles (x, y) from a file that
// may only mention one side explicitly (see io/graphml); once both bounds
// are known, both edges can always be derived directly, which is what this
// method does. It does not validate 0 <= x < y or register the link's
// indices — that is initcheck's job (spec's Initializer owns well-definition
// checks), so the same two edges can be created before InitAndCheck
// validates and registers them.
//
// Returns the lower- and upper-case edge names, or an error if either node
// is missing.
func (g *Graph) AddContingentLink(activation, contingent string, x, y int64) (string, string, error) {
	lower, err := g.AddEdge(activation, contingent, Contingent)
	if err != nil {
		return "", "", err
	}
	upper, err := g.AddEdge(contingent, activation, Contingent)
	if err != nil {
		return "", "", err
	}

	g.muEdge.Lock()
	g.edges[lower].LowerCase = &CCValue{Ctg: contingent, Value: x}
	g.edges[upper].UpperCase = &CCValue{Ctg: contingent, Value: -y}
	g.muEdge.Unlock()

	return lower, upper, nil
}
