package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jublebi/dynacon/dispatch"
	"github.com/jublebi/dynacon/graph"
)

func findOrdinary(t *testing.T, g *graph.Graph, from, to string) (*graph.Edge, bool) {
	t.Helper()
	for _, e := range g.OutEdges(from) {
		if e.To == to && e.Ordinary != nil && e.Ordinary.Len() > 0 {
			return e, true
		}
	}
	return nil, false
}

// TestMinimize_RemovesDominatedOrdinaryEdge exercises spec §4.6 step 6: a
// direct A->B edge no tighter than the A->K->B path through it is deleted.
func TestMinimize_RemovesDominatedOrdinaryEdge(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("K"))
	require.NoError(t, g.AddNode("B"))

	direct, err := g.AddEdge("A", "B", graph.Requirement, graph.WithOrdinaryValue(5))
	require.NoError(t, err)
	_, err = g.AddEdge("A", "K", graph.Requirement, graph.WithOrdinaryValue(2))
	require.NoError(t, err)
	_, err = g.AddEdge("K", "B", graph.Requirement, graph.WithOrdinaryValue(2))
	require.NoError(t, err)

	st, err := dispatch.Minimize(g)
	require.NoError(t, err)
	assert.True(t, st.Controllable)
	assert.False(t, g.HasEdge(direct), "A->B should be dominated by A->K->B (2+2<=5)")

	_, stillDirect := findOrdinary(t, g, "A", "B")
	assert.False(t, stillDirect)
}

// TestMinimize_KeepsUndominatedOrdinaryEdge confirms a tighter direct edge
// survives minimization.
func TestMinimize_KeepsUndominatedOrdinaryEdge(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("K"))
	require.NoError(t, g.AddNode("B"))

	_, err := g.AddEdge("A", "B", graph.Requirement, graph.WithOrdinaryValue(3))
	require.NoError(t, err)
	_, err = g.AddEdge("A", "K", graph.Requirement, graph.WithOrdinaryValue(2))
	require.NoError(t, err)
	_, err = g.AddEdge("K", "B", graph.Requirement, graph.WithOrdinaryValue(2))
	require.NoError(t, err)

	st, err := dispatch.Minimize(g)
	require.NoError(t, err)
	assert.True(t, st.Controllable)

	_, ok := findOrdinary(t, g, "A", "B")
	assert.True(t, ok, "A->B (3) is tighter than A->K->B (4) and must survive")
}

// TestMinimize_RemovesRedundantWait exercises spec §4.6 step 7's wait half:
// a wait already implied by a tighter ordinary distance is dropped.
func TestMinimize_RemovesRedundantWait(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("Act"))
	require.NoError(t, g.AddNode("Ctg"))
	require.NoError(t, g.AddNode("V"))

	lower, upper, err := g.AddContingentLink("Act", "Ctg", 1, 10)
	require.NoError(t, err)
	require.NoError(t, g.RegisterContingentLink("Act", "Ctg", lower, upper))

	waitEdge, err := g.AddEdge("V", "Act", graph.Derived)
	require.NoError(t, err)
	e, ok := g.Edge(waitEdge)
	require.True(t, ok)
	e.Wait = &graph.WaitValue{Ctg: "Ctg", Value: -2}

	// A separate, tighter ordinary edge already enforces the wait's bound
	// and then some, making the wait redundant.
	_, err = g.AddEdge("V", "Act", graph.Requirement, graph.WithOrdinaryValue(-9))
	require.NoError(t, err)

	st, err := dispatch.Minimize(g)
	require.NoError(t, err)
	assert.True(t, st.Controllable)

	e, ok = g.Edge(waitEdge)
	if ok {
		assert.Nil(t, e.Wait, "a wait dominated by a tighter ordinary distance must be cleared")
	}
}

