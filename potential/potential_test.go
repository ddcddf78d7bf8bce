package potential_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/potential"
)

func chainGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	require.NoError(t, g.AddNode("C"))
	_, err := g.AddEdge("A", "B", graph.Requirement, graph.WithOrdinaryValue(3))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", graph.Requirement, graph.WithOrdinaryValue(-1))
	require.NoError(t, err)

	return g
}

func TestSSSPBellmanFordOL_ComputesPotentials(t *testing.T) {
	g := chainGraph(t)

	h, witness, err := potential.SSSPBellmanFordOL(g)
	require.NoError(t, err)
	require.Nil(t, witness)

	assert.Equal(t, int64(0), h["A"])
	assert.Equal(t, int64(0), h["B"], "virtual source keeps every node's upper bound at 0")
	assert.Equal(t, int64(-1), h["C"], "B->C(-1) pulls C below the virtual source")
}

func TestSSSPBellmanFordOL_DetectsNegativeCycle(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	_, err := g.AddEdge("A", "B", graph.Requirement, graph.WithOrdinaryValue(-5))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", graph.Requirement, graph.WithOrdinaryValue(-5))
	require.NoError(t, err)

	h, witness, err := potential.SSSPBellmanFordOL(g)
	require.NoError(t, err)
	require.Nil(t, h)
	require.NotNil(t, witness)
	assert.Less(t, witness.Sum(), int64(0))
}

func TestSSSPBellmanFordOL_UsesMinOfOrdinaryAndLowerCase(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("C"))
	name, _, err := g.AddContingentLink("A", "C", 2, 9)
	require.NoError(t, err)

	// Add a competing, more negative ordinary value on a parallel A->C edge
	// to confirm relaxation keeps the smaller of the ordinary and lower-case
	// weights rather than preferring one kind unconditionally.
	e, ok := g.Edge(name)
	require.True(t, ok)
	e.Ordinary = nil
	_, err = g.AddEdge("A", "C", graph.Derived, graph.WithName(name+"#ord"), graph.WithOrdinaryValue(-5))
	require.NoError(t, err)

	h, witness, err := potential.SSSPBellmanFordOL(g)
	require.NoError(t, err)
	require.Nil(t, witness)
	assert.Equal(t, int64(0), h["A"])
	assert.Equal(t, int64(-5), h["C"], "the -5 ordinary edge must win over the lower-case value 2 on the other edge")
}

func TestUpdatePotential_UnknownStart(t *testing.T) {
	g := chainGraph(t)
	h, _, err := potential.SSSPBellmanFordOL(g)
	require.NoError(t, err)

	_, _, err = potential.UpdatePotential(g, h, "Z")
	assert.ErrorIs(t, err, potential.ErrUnknownNode)
}

func TestUpdatePotential_PropagatesDecrease(t *testing.T) {
	g := chainGraph(t)
	h, witness, err := potential.SSSPBellmanFordOL(g)
	require.NoError(t, err)
	require.Nil(t, witness)

	_, err = g.AddEdge("A", "C", graph.Derived, graph.WithOrdinaryValue(-10))
	require.NoError(t, err)

	hPrime, witness2, err := potential.UpdatePotential(g, h, "A")
	require.NoError(t, err)
	require.Nil(t, witness2)
	assert.Equal(t, int64(-10), hPrime["C"])
}

func TestUpdatePotential_DetectsNegativeCycle(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	_, err := g.AddEdge("A", "B", graph.Requirement, graph.WithOrdinaryValue(1))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", graph.Requirement, graph.WithOrdinaryValue(1))
	require.NoError(t, err)

	h, witness, err := potential.SSSPBellmanFordOL(g)
	require.NoError(t, err)
	require.Nil(t, witness)

	_, err = g.AddEdge("A", "B", graph.Derived, graph.WithOrdinaryValue(-5))
	require.NoError(t, err)

	_, witness2, err := potential.UpdatePotential(g, h, "A")
	require.NoError(t, err)
	require.NotNil(t, witness2)
}
