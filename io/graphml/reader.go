package graphml

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/jublebi/dynacon/graph"
)

// pendingContingent accumulates whatever a file told us about one
// contingent link across however many of its two edges were present, so
// Read can synthesize the missing companion per spec §4.1/§6 ("missing
// companion contingent edges are synthesized from a present one").
type pendingContingent struct {
	activation string
	x, y       *int64
}

// Read parses the GraphML-like document r into a fresh graph.Graph, per
// spec §6's schema. Returns an error wrapping dcerr.ErrMalformedInput
// for bad XML, an edge referencing an undeclared node,
// an unparsable value field, or a contingent link missing both a
// file-supplied bound and a node-level x/y fallback.
func Read(r io.Reader) (*graph.Graph, error) {
	var d doc
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, malformed("invalid XML (%v)", err)
	}

	g := graph.New()
	nodeXY := make(map[string]xmlNode, len(d.Nodes))

	for _, n := range d.Nodes {
		if n.ID == "" {
			return nil, malformed("node with empty id")
		}
		nodeXY[n.ID] = n

		var opts []graph.NodeOption
		if n.Obs != "" {
			opts = append(opts, graph.WithObserver([]rune(n.Obs)[0]))
		}
		if n.Label != "" {
			l, err := parseLabel(n.Label)
			if err != nil {
				return nil, err
			}
			opts = append(opts, graph.WithQLabel(l))
		}
		if err := g.AddNode(n.ID, opts...); err != nil {
			return nil, malformed("node %q: %v", n.ID, err)
		}
	}
	g.EnsureZero()

	pending := make(map[string]*pendingContingent)

	for _, e := range d.Edges {
		if !g.HasNode(e.Source) || !g.HasNode(e.Target) {
			return nil, malformed("edge %s->%s references an undeclared node", e.Source, e.Target)
		}

		switch e.Type {
		case "contingent":
			if err := recordContingentEdge(pending, e); err != nil {
				return nil, err
			}
		default:
			typ, err := parseEdgeType(e.Type)
			if err != nil {
				return nil, err
			}
			if err := addOrdinaryEdge(g, e, typ); err != nil {
				return nil, err
			}
		}
	}

	for ctg, p := range pending {
		x, y, err := resolveContingentBounds(p, nodeXY[ctg])
		if err != nil {
			return nil, malformed("contingent node %q: %v", ctg, err)
		}
		lower, upper, err := g.AddContingentLink(p.activation, ctg, x, y)
		if err != nil {
			return nil, malformed("contingent link %s->%s: %v", p.activation, ctg, err)
		}
		if err := g.RegisterContingentLink(p.activation, ctg, lower, upper); err != nil {
			return nil, malformed("contingent link %s->%s: %v", p.activation, ctg, err)
		}
	}

	return g, nil
}

func parseEdgeType(t string) (graph.EdgeType, error) {
	switch t {
	case "", "requirement":
		return graph.Requirement, nil
	case "derived":
		return graph.Derived, nil
	case "internal":
		return graph.Internal, nil
	default:
		return 0, malformed("unknown edge type %q", t)
	}
}

// recordContingentEdge folds one file-level contingent edge into the
// running pendingContingent state for its contingent node, extracted from
// the LabeledValue's "LC(ctg):x" / "UC(ctg):y" form (the Ctg naming in
// that form is taken as authoritative over which endpoint is the
// contingent node, matching graph.CCValue.Ctg).
func recordContingentEdge(pending map[string]*pendingContingent, e xmlEdge) error {
	if e.LabeledValue == "" {
		return malformed("contingent edge %s->%s missing labeledValue", e.Source, e.Target)
	}
	ctg, upper, value, err := parseLabeledValue(e.LabeledValue)
	if err != nil {
		return err
	}

	activation := e.Source
	if e.Source == ctg {
		activation = e.Target
	}

	p, ok := pending[ctg]
	if !ok {
		p = &pendingContingent{activation: activation}
		pending[ctg] = p
	}
	if upper {
		y := value
		p.y = &y
	} else {
		x := value
		p.x = &x
	}
	return nil
}

// resolveContingentBounds returns (x, y) for a contingent link, falling
// back to the contingent node's own x/y attributes when only one of the
// link's two edges was present in the file (spec §4.1's synthesis rule).
func resolveContingentBounds(p *pendingContingent, node xmlNode) (int64, int64, error) {
	x, y := p.x, p.y
	if x == nil {
		v, err := parseOptionalInt(node.X)
		if err != nil || v == nil {
			return 0, 0, malformed("no lower bound available (missing both the LC edge and node x)")
		}
		x = v
	}
	if y == nil {
		v, err := parseOptionalInt(node.Y)
		if err != nil || v == nil {
			return 0, 0, malformed("no upper bound available (missing both the UC edge and node y)")
		}
		y = v
	}
	return *x, *y, nil
}

func parseOptionalInt(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// addOrdinaryEdge adds a single requirement/derived/internal edge, reading
// whichever of Value/LabeledValue/LabeledValues grammar is present.
func addOrdinaryEdge(g *graph.Graph, e xmlEdge, typ graph.EdgeType) error {
	var opts []graph.EdgeOption

	switch {
	case e.Value != "":
		v, err := strconv.ParseInt(e.Value, 10, 64)
		if err != nil {
			return malformed("edge %s->%s: bad value %q", e.Source, e.Target, e.Value)
		}
		opts = append(opts, graph.WithOrdinaryValue(v))
	case e.LabeledValues != "":
		entries, err := parseValueSet(e.LabeledValues)
		if err != nil {
			return err
		}
		for _, p := range entries {
			opts = append(opts, graph.WithLabeledValue(p.Label, p.Value))
		}
	case e.LabeledValue != "":
		return malformed("edge %s->%s: labeledValue is only valid on contingent edges", e.Source, e.Target)
	}

	if _, err := g.AddEdge(e.Source, e.Target, typ, opts...); err != nil {
		return malformed("edge %s->%s: %v", e.Source, e.Target, err)
	}
	return nil
}
