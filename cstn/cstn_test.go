package cstn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jublebi/dynacon/cstn"
	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/label"
)

// TestCheck_R0Application mirrors spec §8 scenario 5: an observer P? with
// P?-(-4,p)->X rewrites, after qR0, into P?-(-4,⊤)->X.
func TestCheck_R0Application(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("P", graph.WithObserver('p')))
	require.NoError(t, g.AddNode("X"))
	require.NoError(t, g.RegisterObserver('p', "P"))

	_, err := g.AddEdge("P", "X", graph.Requirement,
		graph.WithLabeledValue(label.Single("p", label.Positive), -4))
	require.NoError(t, err)

	st, err := cstn.Check(g)
	require.NoError(t, err)
	assert.True(t, st.Finished)
	assert.True(t, st.Controllable)

	e, ok := findEdge(g, "P", "X")
	require.True(t, ok)
	v, ok := e.Ordinary.Get(label.Empty())
	require.True(t, ok, "label should have been stripped to the empty label")
	assert.Equal(t, int64(-4), v)
}

// TestCheck_QLPUnknownLoopIsControllable mirrors spec §8 scenario 6: a
// triangle A->B->A whose extended conjunction resolves to ¿p is a
// semi-reducible q-loop, not a not-DC verdict.
func TestCheck_QLPUnknownLoopIsControllable(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))

	_, err := g.AddEdge("A", "B", graph.Requirement,
		graph.WithLabeledValue(label.Single("p", label.Positive), -3))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", graph.Requirement,
		graph.WithLabeledValue(label.Single("p", label.Negative), -1))
	require.NoError(t, err)

	st, err := cstn.Check(g)
	require.NoError(t, err)
	assert.True(t, st.Finished)
	assert.True(t, st.Controllable, "a q-loop (unknown label) must not fail the check")
}

// TestCheck_GenuineNegativeLoopIsNotDC exercises the non-labeled analogue
// of the triangle: a plain negative cycle with no unknown label must be
// reported not controllable.
func TestCheck_GenuineNegativeLoopIsNotDC(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))

	_, err := g.AddEdge("A", "B", graph.Requirement, graph.WithOrdinaryValue(-3))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", graph.Requirement, graph.WithOrdinaryValue(-1))
	require.NoError(t, err)

	st, err := cstn.Check(g)
	require.NoError(t, err)
	assert.True(t, st.Finished)
	assert.False(t, st.Controllable)
	require.NotNil(t, st.Witness)
}

func findEdge(g *graph.Graph, from, to string) (*graph.Edge, bool) {
	for _, e := range g.OutEdges(from) {
		if e.To == to {
			return e, true
		}
	}
	return nil, false
}
