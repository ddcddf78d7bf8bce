package graph

import (
	"sort"

	"github.com/jublebi/dynacon/label"
	"github.com/jublebi/dynacon/lvmap"
)

// EdgeOption configures an Edge at construction time.
type EdgeOption func(*Edge)

// WithName overrides the auto-generated edge name.
func WithName(name string) EdgeOption {
	return func(e *Edge) { e.Name = name }
}

// WithOrdinaryValue adds a single (Empty label, value) ordinary entry — the
// plain-STNU convenience for AddEdge.
func WithOrdinaryValue(v int64) EdgeOption {
	return func(e *Edge) {
		if e.Ordinary == nil {
			e.Ordinary = lvmap.New()
		}
		e.Ordinary.Put(label.Empty(), v)
	}
}

// WithLabeledValue adds a single (l, v) ordinary entry — the CSTN case.
func WithLabeledValue(l label.Label, v int64) EdgeOption {
	return func(e *Edge) {
		if e.Ordinary == nil {
			e.Ordinary = lvmap.New()
		}
		e.Ordinary.Put(l, v)
	}
}

// AddEdge creates a new edge from `from` to `to` of the given type, applying
// opts, and returns its name. If WithName is not supplied, a unique internal
// name is generated. Returns ErrNodeNotFound if either endpoint is missing,
// ErrSelfLoop if from == to (E1), ErrEdgeExists if the requested name is
// already in use.
func (g *Graph) AddEdge(from, to string, typ EdgeType, opts ...EdgeOption) (string, error) {
	if !g.HasNode(from) {
		return "", ErrNodeNotFound
	}
	if !g.HasNode(to) {
		return "", ErrNodeNotFound
	}
	if from == to {
		return "", ErrSelfLoop
	}

	e := &Edge{From: from, To: to, Type: typ}
	for _, opt := range opts {
		opt(e)
	}
	if e.Name == "" {
		e.Name = g.nextAutoEdgeName()
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, exists := g.edges[e.Name]; exists {
		return "", ErrEdgeExists
	}
	g.edges[e.Name] = e

	return e.Name, nil
}

// HasEdge reports whether an edge named name exists.
func (g *Graph) HasEdge(name string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.edges[name]

	return ok
}

// Edge returns the edge named name, or (nil, false) if absent.
func (g *Graph) Edge(name string) (*Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edges[name]

	return e, ok
}

// RemoveEdge deletes the edge named name. Returns ErrEdgeNotFound if absent.
func (g *Graph) RemoveEdge(name string) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, ok := g.edges[name]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, name)

	return nil
}

// EdgeNames returns every edge name in insertion-independent, sorted order
// (spec §5's "iterate edges in insertion order" is satisfied here by a
// stable deterministic total order — sorted name — since Go maps give no
// insertion order to preserve in the first place; see DESIGN.md).
func (g *Graph) EdgeNames() []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	names := make([]string, 0, len(g.edges))
	for n := range g.edges {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Edges returns every edge in EdgeNames order.
func (g *Graph) Edges() []*Edge {
	names := g.EdgeNames()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]*Edge, 0, len(names))
	for _, n := range names {
		out = append(out, g.edges[n])
	}

	return out
}

// EdgeCount returns the number of edges currently in the graph.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// OutEdges returns every edge whose From is id, in sorted-name order.
func (g *Graph) OutEdges(id string) []*Edge {
	all := g.Edges()
	out := make([]*Edge, 0, len(all))
	for _, e := range all {
		if e.From == id {
			out = append(out, e)
		}
	}

	return out
}

// InEdges returns every edge whose To is id, in sorted-name order.
func (g *Graph) InEdges(id string) []*Edge {
	all := g.Edges()
	out := make([]*Edge, 0, len(all))
	for _, e := range all {
		if e.To == id {
			out = append(out, e)
		}
	}

	return out
}

// RemoveEmptyEdges deletes every edge with IsEmpty() true (spec §4.1 "Empty
// edges after cleanup are removed") and returns how many were removed.
func (g *Graph) RemoveEmptyEdges() int {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	removed := 0
	for name, e := range g.edges {
		if e.IsEmpty() {
			delete(g.edges, name)
			removed++
		}
	}

	return removed
}
