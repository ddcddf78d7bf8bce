package initcheck_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/initcheck"
)

func twoNodeSTNU(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	_, err := g.AddEdge("A", graph.ZeroName, graph.Requirement, graph.WithOrdinaryValue(5))
	require.NoError(t, err)

	return g
}

func TestInitAndCheck_EnsuresZero(t *testing.T) {
	out, err := initcheck.InitAndCheck(twoNodeSTNU(t))
	require.NoError(t, err)
	assert.True(t, out.HasNode(graph.ZeroName))
}

func TestInitAndCheck_AddsUniversalHorizonEdges(t *testing.T) {
	g := twoNodeSTNU(t)
	out, err := initcheck.InitAndCheck(g)
	require.NoError(t, err)

	found := false
	for _, e := range out.OutEdges("A") {
		if e.To == graph.ZeroName && e.Type == graph.Internal {
			found = true
		}
	}
	assert.True(t, found, "expected a 0-weight A->Z internal edge")
}

func TestInitAndCheck_CSTNHorizonEdgesOnlyWhenRequested(t *testing.T) {
	g := twoNodeSTNU(t)
	plain, err := initcheck.InitAndCheck(g)
	require.NoError(t, err)
	for _, e := range plain.OutEdges(graph.ZeroName) {
		assert.NotEqual(t, "A", e.To, "Z->A edge must not appear without WithCSTNHorizonEdges")
	}

	withHorizon, err := initcheck.InitAndCheck(g, initcheck.WithCSTNHorizonEdges())
	require.NoError(t, err)
	found := false
	for _, e := range withHorizon.OutEdges(graph.ZeroName) {
		if e.To == "A" {
			found = true
		}
	}
	assert.True(t, found, "expected a Z->A horizon edge under WithCSTNHorizonEdges")
}

func TestInitAndCheck_DoesNotMutateInput(t *testing.T) {
	g := twoNodeSTNU(t)
	before := g.EdgeCount()

	_, err := initcheck.InitAndCheck(g)
	require.NoError(t, err)

	assert.Equal(t, before, g.EdgeCount(), "InitAndCheck must clone, never mutate, its input")
}

func TestInitAndCheck_ContingentBoundsRejected(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("C"))
	_, _, err := g.AddContingentLink("A", "C", 5, 3) // x >= y: malformed
	require.NoError(t, err)

	_, err = initcheck.InitAndCheck(g)
	assert.ErrorIs(t, err, initcheck.ErrBadContingentBounds)
}

func TestInitAndCheck_ContingentLinkRegistered(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("C"))
	_, _, err := g.AddContingentLink("A", "C", 1, 5)
	require.NoError(t, err)

	out, err := initcheck.InitAndCheck(g)
	require.NoError(t, err)

	act, ok := out.ActivationOf("C")
	require.True(t, ok)
	assert.Equal(t, "A", act)
}

func TestInitAndCheck_SharedActivationRejected(t *testing.T) {
	g := graph.New()
	for _, name := range []string{"A", "C1", "C2"} {
		require.NoError(t, g.AddNode(name))
	}
	_, _, err := g.AddContingentLink("A", "C1", 1, 5)
	require.NoError(t, err)
	_, _, err = g.AddContingentLink("A", "C2", 1, 5)
	require.NoError(t, err)

	_, err = initcheck.InitAndCheck(g)
	assert.ErrorIs(t, err, initcheck.ErrSharedActivation)
}

func TestInitAndCheck_NormalFormSplitsActivation(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("C"))
	_, _, err := g.AddContingentLink("A", "C", 2, 5)
	require.NoError(t, err)

	out, err := initcheck.InitAndCheck(g, initcheck.WithNormalForm())
	require.NoError(t, err)

	assert.True(t, out.HasNode("A'"), "expected a split activation twin A'")
	act, ok := out.ActivationOf("C")
	require.True(t, ok)
	assert.Equal(t, "A'", act)
}

func TestInitAndCheck_HorizonOverflowRejected(t *testing.T) {
	g := graph.New()
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddNode(name))
	}
	_, err := g.AddEdge("A", "B", graph.Requirement, graph.WithOrdinaryValue(math.MaxInt64/2))
	require.NoError(t, err)

	_, err = initcheck.InitAndCheck(g)
	assert.ErrorIs(t, err, initcheck.ErrHorizonOverflow)
}
