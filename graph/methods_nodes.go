package graph

import "sort"

// AddNode inserts a new Node named name, applying opts. Returns
// ErrEmptyName if name is empty, ErrNodeExists if name is already present.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string, opts ...NodeOption) error {
	if name == "" {
		return ErrEmptyName
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[name]; exists {
		return ErrNodeExists
	}

	n := &Node{Name: name}
	for _, opt := range opts {
		opt(n)
	}
	g.nodes[name] = n

	return nil
}

// EnsureZero creates the Z node with an empty label if absent (spec §4.1
// "Zero-node enforcement"), and is a no-op if Z already exists. Returns the
// node.
func (g *Graph) EnsureZero() *Node {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if z, ok := g.nodes[ZeroName]; ok {
		return z
	}
	z := &Node{Name: ZeroName}
	g.nodes[ZeroName] = z

	return z
}

// HasNode reports whether a node named name exists.
func (g *Graph) HasNode(name string) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[name]

	return ok
}

// Node returns the node named name, or (nil, false) if absent. The returned
// pointer aliases internal storage; callers in this module's own packages
// may mutate Potential/LabeledPotential/QLabel through it, but external
// callers should treat it as read-only.
func (g *Graph) Node(name string) (*Node, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[name]

	return n, ok
}

// NodeNames returns every node name in sorted order, for deterministic
// iteration (spec §5).
func (g *Graph) NodeNames() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	names := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}
