package graph

import "sort"

// RegisterObserver binds prop to the observer node id. Returns
// ErrNodeNotFound if id is absent, ErrDuplicateObserver if prop is already
// bound to a different node.
func (g *Graph) RegisterObserver(prop rune, id string) error {
	if !g.HasNode(id) {
		return ErrNodeNotFound
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if existing, ok := g.observerOf[prop]; ok && existing != id {
		return ErrDuplicateObserver
	}
	g.observerOf[prop] = id

	g.muNode.Lock()
	g.nodes[id].Observer = prop
	g.muNode.Unlock()

	return nil
}

// ObserverOf returns the node name observing prop, or ("", false).
func (g *Graph) ObserverOf(prop rune) (string, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	id, ok := g.observerOf[prop]

	return id, ok
}

// RegisterContingentLink binds the contingent link (activation, contingent)
// and its lower-/upper-case edge names, enforcing invariant I2 (one
// activation partner, one upper-case in-edge, one lower-case out-edge per
// contingent node). Returns ErrNodeNotFound if either endpoint is missing,
// ErrEdgeNotFound if either edge name is missing, ErrDuplicateActivation if
// activation is already bound to a different contingent node.
func (g *Graph) RegisterContingentLink(activation, contingent, lowerEdge, upperEdge string) error {
	if !g.HasNode(activation) || !g.HasNode(contingent) {
		return ErrNodeNotFound
	}
	if !g.HasEdge(lowerEdge) || !g.HasEdge(upperEdge) {
		return ErrEdgeNotFound
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if existingContingent, ok := g.contingentOf[activation]; ok && existingContingent != contingent {
		return ErrDuplicateActivation
	}

	g.activation[contingent] = activation
	g.contingentOf[activation] = contingent
	g.lowerEdgeOf[contingent] = lowerEdge
	g.upperEdgeOf[contingent] = upperEdge

	g.muNode.Lock()
	g.nodes[contingent].Contingent = true
	g.muNode.Unlock()

	return nil
}

// ActivationOf returns the activation node name for contingent node ctg, or
// ("", false) if ctg is not registered as contingent.
func (g *Graph) ActivationOf(ctg string) (string, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	a, ok := g.activation[ctg]

	return a, ok
}

// ContingentOf returns the contingent node name whose activation partner is
// act, or ("", false) if act is not an activation node.
func (g *Graph) ContingentOf(act string) (string, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	c, ok := g.contingentOf[act]

	return c, ok
}

// LowerEdgeOf returns the name of ctg's lower-case edge (A -> C).
func (g *Graph) LowerEdgeOf(ctg string) (string, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.lowerEdgeOf[ctg]

	return e, ok
}

// UpperEdgeOf returns the name of ctg's upper-case edge (C -> A).
func (g *Graph) UpperEdgeOf(ctg string) (string, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.upperEdgeOf[ctg]

	return e, ok
}

// ContingentNames returns every registered contingent node name, sorted.
func (g *Graph) ContingentNames() []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	names := make([]string, 0, len(g.activation))
	for c := range g.activation {
		names = append(names, c)
	}
	sort.Strings(names)

	return names
}
