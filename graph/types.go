package graph

import (
	"github.com/jublebi/dynacon/label"
	"github.com/jublebi/dynacon/lvmap"
)

// EdgeType is the constraint classification of spec §3's Edge table:
// requirement edges come from the input, contingent edges carry the
// upper-/lower-case pairing, derived edges are materialized by a checker,
// and internal edges are checker-private bookkeeping (e.g. dispatch's
// stand-ins, §4.6 step 4).
type EdgeType int8

const (
	// Requirement is an ordinary input edge.
	Requirement EdgeType = iota
	// Contingent is one side (the A→C or C→A pair) of a contingent link.
	Contingent
	// Derived marks an edge materialized by a checking algorithm.
	Derived
	// Internal marks checker-private bookkeeping edges (io/graphml writes
	// them like any other edge, with type "internal").
	Internal
)

// String renders the EdgeType using the GraphML schema's own names (§6).
func (t EdgeType) String() string {
	switch t {
	case Requirement:
		return "requirement"
	case Contingent:
		return "contingent"
	case Derived:
		return "derived"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// CCValue is an upper- or lower-case labeled value: a contingent link name
// (Ctg) plus the integer it contributes (Value). For an upper-case value,
// Value is -y (y being the contingent link's max duration); for a
// lower-case value, Value is x (the link's min duration). A q-label may
// additionally scope the value for CSTNU-style labeled contingent links;
// Label is Empty() for plain STNU.
type CCValue struct {
	Ctg   string
	Value int64
	Label label.Label
}

// WaitValue is a wait constraint "(V, C:−v, A)" (spec Glossary): magnitude v
// is positive (v = -Value), Ctg names the contingent link the wait defers
// to, and Label scopes it for CSTNU. The edge this value is attached to
// supplies V (edge.From) and A (edge.To).
type WaitValue struct {
	Ctg   string
	Value int64 // always negative; magnitude = -Value
	Label label.Label
}

// Node is a time-point (spec §3 "Time-point (node)").
type Node struct {
	// Name uniquely identifies this Node within its Graph.
	Name string

	// QLabel is the node's propositional q-label (Empty() for plain STNU
	// nodes and for Z, per invariant I3).
	QLabel label.Label

	// Observer is the proposition this node decides at execution, or 0 if
	// this node is not an observer.
	Observer rune

	// Contingent marks this node as the contingent endpoint of exactly one
	// contingent link (invariant I2); its activation partner and the
	// lower-/upper-case edge names are recoverable via the Graph's indices.
	Contingent bool

	// Potential and LabeledPotential are engine-owned scratch fields
	// written by the potential package's SSSPBellmanFordOL / UpdatePotential
	// and read back by stnu/cstn/dispatch for Dijkstra reweighting. They are
	// meaningless until a potential pass has run.
	Potential       int64
	LabeledPotential *lvmap.Map
}

// Edge is a directed connection between two time-points (spec §3 "Edge").
// Exactly one of its value slots being non-nil is typical, but spec
// explicitly allows an ordinary value and a wait to coexist on the same
// edge (e.g. a back-propagated bound competing with a materialized wait).
type Edge struct {
	// Name uniquely identifies this Edge within its Graph.
	Name string

	// From and To are the endpoint node names.
	From, To string

	// Type is this edge's constraint classification.
	Type EdgeType

	// Ordinary holds this edge's labeled ordinary values (dest - source <=
	// value, active when Label is satisfied). A plain STNU ordinary edge
	// has exactly one entry keyed by label.Empty(). Nil means "no ordinary
	// value on this edge".
	Ordinary *lvmap.Map

	// UpperCase is non-nil iff this edge is the designated upper-case edge
	// (C -> A) of a contingent link.
	UpperCase *CCValue

	// LowerCase is non-nil iff this edge is the designated lower-case edge
	// (A -> C) of a contingent link.
	LowerCase *CCValue

	// Wait is non-nil iff this edge additionally carries a wait value.
	Wait *WaitValue
}

// IsEmpty reports whether e carries no value in any slot, meaning it is a
// candidate for cleanup (spec §4.1 "empty edges after cleanup are
// removed").
func (e *Edge) IsEmpty() bool {
	return (e.Ordinary == nil || e.Ordinary.Len() == 0) &&
		e.UpperCase == nil && e.LowerCase == nil && e.Wait == nil
}

// NodeOption configures a Node at construction time.
type NodeOption func(*Node)

// WithQLabel sets a node's propositional label.
func WithQLabel(l label.Label) NodeOption {
	return func(n *Node) { n.QLabel = l }
}

// WithObserver marks a node as the observer of proposition prop.
func WithObserver(prop rune) NodeOption {
	return func(n *Node) { n.Observer = prop }
}
