package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jublebi/dynacon/graph"
)

func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	require.NoError(t, g.AddNode("C"))
	_, err := g.AddEdge("A", "B", graph.Requirement, graph.WithOrdinaryValue(1))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", graph.Requirement, graph.WithOrdinaryValue(1))
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", graph.Requirement, graph.WithOrdinaryValue(-3))
	require.NoError(t, err)

	return g
}

func TestGraph_AddNodeAndEdge(t *testing.T) {
	g := buildTriangle(t)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_SelfLoopRejected(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	_, err := g.AddEdge("A", "A", graph.Requirement)
	assert.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestGraph_MissingEndpoint(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	_, err := g.AddEdge("A", "B", graph.Requirement)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestGraph_ContingentRegistration(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("C"))

	lower, err := g.AddEdge("A", "C", graph.Contingent)
	require.NoError(t, err)
	upper, err := g.AddEdge("C", "A", graph.Contingent)
	require.NoError(t, err)

	require.NoError(t, g.RegisterContingentLink("A", "C", lower, upper))

	act, ok := g.ActivationOf("C")
	require.True(t, ok)
	assert.Equal(t, "A", act)

	ctg, ok := g.ContingentOf("A")
	require.True(t, ok)
	assert.Equal(t, "C", ctg)

	n, ok := g.Node("C")
	require.True(t, ok)
	assert.True(t, n.Contingent)
}

func TestGraph_DuplicateActivationRejected(t *testing.T) {
	g := graph.New()
	for _, name := range []string{"A", "C1", "C2"} {
		require.NoError(t, g.AddNode(name))
	}
	l1, _ := g.AddEdge("A", "C1", graph.Contingent)
	u1, _ := g.AddEdge("C1", "A", graph.Contingent)
	require.NoError(t, g.RegisterContingentLink("A", "C1", l1, u1))

	l2, _ := g.AddEdge("A", "C2", graph.Contingent)
	u2, _ := g.AddEdge("C2", "A", graph.Contingent)
	err := g.RegisterContingentLink("A", "C2", l2, u2)
	assert.ErrorIs(t, err, graph.ErrDuplicateActivation)
}

func TestGraph_Clone(t *testing.T) {
	g := buildTriangle(t)
	clone := g.Clone()

	_, err := clone.AddEdge("A", "C", graph.Derived, graph.WithOrdinaryValue(9))
	require.NoError(t, err)

	assert.Equal(t, 3, g.EdgeCount(), "original graph must be unaffected by clone mutation")
	assert.Equal(t, 4, clone.EdgeCount())
}

func TestGraph_RemoveEmptyEdges(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	_, err := g.AddEdge("A", "B", graph.Requirement)
	require.NoError(t, err)

	removed := g.RemoveEmptyEdges()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, g.EdgeCount())
}
