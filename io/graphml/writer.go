package graphml

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/jublebi/dynacon/graph"
)

// Write serializes g into the GraphML-like schema of spec §6 and writes
// it to w. Nodes and edges are emitted in the graph's own sorted
// iteration order (graph.NodeNames/EdgeNames) for deterministic output.
func Write(w io.Writer, g *graph.Graph) error {
	var d doc

	for _, name := range g.NodeNames() {
		n, _ := g.Node(name)
		xn := xmlNode{ID: n.Name}
		if n.Observer != 0 {
			xn.Obs = string(n.Observer)
		}
		if !n.QLabel.IsEmpty() {
			xn.Label = n.QLabel.String()
		}
		if n.Potential != 0 {
			xn.Potential = strconv.FormatInt(n.Potential, 10)
		}
		d.Nodes = append(d.Nodes, xn)
	}

	for _, name := range g.EdgeNames() {
		e, _ := g.Edge(name)
		xe, err := renderEdge(e)
		if err != nil {
			return err
		}
		d.Edges = append(d.Edges, xe)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return malformed("encode: %v", err)
	}
	return nil
}

// renderEdge picks the xmlEdge form matching which value slot(s) e carries.
// A contingent edge's lower-/upper-case value renders via the singular
// LC(ctg):x / UC(ctg):y form (the upper-case slot stores -y, so its sign is
// flipped on output); any other edge carrying a single Empty()-labeled
// ordinary value renders via the plain Value attribute, and a genuinely
// labeled (CSTNU) ordinary edge renders via the LabeledValues set form.
func renderEdge(e *graph.Edge) (xmlEdge, error) {
	xe := xmlEdge{Source: e.From, Target: e.To, Type: e.Type.String()}

	switch {
	case e.LowerCase != nil:
		xe.LabeledValue = renderLabeledValue(e.LowerCase.Ctg, false, e.LowerCase.Value)
	case e.UpperCase != nil:
		xe.LabeledValue = renderLabeledValue(e.UpperCase.Ctg, true, -e.UpperCase.Value)
	}

	if e.Ordinary != nil && e.Ordinary.Len() > 0 {
		entries := e.Ordinary.Entries()
		if len(entries) == 1 && entries[0].Label.IsEmpty() {
			xe.Value = strconv.FormatInt(entries[0].Value, 10)
		} else {
			xe.LabeledValues = renderValueSet(entries)
		}
	}

	return xe, nil
}
