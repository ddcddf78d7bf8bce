package stnu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/initcheck"
	"github.com/jublebi/dynacon/status"
	"github.com/jublebi/dynacon/stnu"
)

// twoNodeGraph builds spec §8 scenario 1: a single contingent link
// (A, x, y, C), nothing else.
func twoNodeGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("C"))
	_, _, err := g.AddContingentLink("A", "C", 1, 3)
	require.NoError(t, err)
	return g
}

// infeasibleTriangle builds spec §8 scenario 2: a plain requirement
// triangle A->B->C->A summing to -1, infeasible on its own.
func infeasibleTriangle(t *testing.T) *graph.Graph {
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

// waitBypassGraph builds spec §8 scenario 3: contingent(A,2,10,C) plus
// X->A:5, B->X:0, B->C:4 — B's path into C should generate a wait on
// B->A that bypasses waiting for all of C's duration.
func waitBypassGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	require.NoError(t, g.AddNode("C"))
	require.NoError(t, g.AddNode("X"))
	_, _, err := g.AddContingentLink("A", "C", 2, 10)
	require.NoError(t, err)
	_, err = g.AddEdge("X", "A", graph.Requirement, graph.WithOrdinaryValue(5))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "X", graph.Requirement, graph.WithOrdinaryValue(0))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", graph.Requirement, graph.WithOrdinaryValue(4))
	require.NoError(t, err)
	return g
}

// interruptionCycleGraph builds spec §8 scenario 4: two contingent links
// whose upper-case bypasses interrupt each other's activation node,
// forming a cycle neither back-propagation can resolve.
func interruptionCycleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode("A1"))
	require.NoError(t, g.AddNode("C1"))
	require.NoError(t, g.AddNode("A2"))
	require.NoError(t, g.AddNode("C2"))
	_, _, err := g.AddContingentLink("A1", "C1", 1, 5)
	require.NoError(t, err)
	_, _, err = g.AddContingentLink("A2", "C2", 1, 5)
	require.NoError(t, err)
	_, err = g.AddEdge("C1", "A2", graph.Requirement, graph.WithOrdinaryValue(-3))
	require.NoError(t, err)
	_, err = g.AddEdge("C2", "A1", graph.Requirement, graph.WithOrdinaryValue(-3))
	require.NoError(t, err)
	return g
}

// waitOn returns the Wait attached to the edge v->to, if any.
func waitOn(g *graph.Graph, v, to string) *graph.WaitValue {
	for _, e := range g.OutEdges(v) {
		if e.To == to && e.Wait != nil {
			return e.Wait
		}
	}
	return nil
}

func TestScenario1_TwoNodeContingentLink_IsControllable(t *testing.T) {
	raw := twoNodeGraph(t)

	gMorris, err := initcheck.InitAndCheck(raw, initcheck.WithNormalForm())
	require.NoError(t, err)
	st, err := stnu.Morris2014(gMorris)
	require.NoError(t, err)
	assert.True(t, st.Finished)
	assert.True(t, st.Controllable)
	assert.Nil(t, st.Witness)

	for _, alg := range []struct {
		name string
		run  func(*graph.Graph, ...stnu.Option) (*status.CheckStatus, error)
	}{
		{"Morris2014Dispatchable", stnu.Morris2014Dispatchable},
		{"RUL2018", stnu.RUL2018},
		{"RUL2021", stnu.RUL2021},
		{"FDSTNU", stnu.FDSTNU},
		{"FDSTNUImproved", stnu.FDSTNUImproved},
		{"SRNCycleFinder", stnu.SRNCycleFinder},
	} {
		g, err := initcheck.InitAndCheck(raw)
		require.NoError(t, err)
		st, err := alg.run(g)
		require.NoError(t, err, alg.name)
		assert.True(t, st.Controllable, alg.name)
		assert.Nil(t, st.Witness, alg.name)
	}
}

func TestScenario2_InfeasibleTriangle_IsNotControllable(t *testing.T) {
	raw := infeasibleTriangle(t)
	g, err := initcheck.InitAndCheck(raw)
	require.NoError(t, err)

	st, err := stnu.Morris2014(g)
	require.NoError(t, err)
	require.True(t, st.Finished)
	assert.False(t, st.Controllable)
	require.NotNil(t, st.Witness)
	assert.Equal(t, status.LoGraphPotFailure, st.Witness.Kind)
	assert.Len(t, st.Witness.Edges, 3)
	assert.Equal(t, int64(-1), st.Witness.Sum())
}

func TestScenario3_WaitBypass_GeneratesWaitOnBA(t *testing.T) {
	raw := waitBypassGraph(t)

	g, err := initcheck.InitAndCheck(raw)
	require.NoError(t, err)
	st, err := stnu.Morris2014Dispatchable(g)
	require.NoError(t, err)
	require.True(t, st.Finished)
	require.True(t, st.Controllable)

	w := waitOn(g, "B", "A")
	require.NotNil(t, w, "expected a wait on B->A")
	assert.Equal(t, "C", w.Ctg)
	assert.Equal(t, int64(-6), w.Value, "w = y - q = 10 - dist(B->C) = 10 - 4")

	for _, alg := range []struct {
		name string
		run  func(*graph.Graph, ...stnu.Option) (*status.CheckStatus, error)
	}{
		{"FDSTNU", stnu.FDSTNU},
		{"FDSTNUImproved", stnu.FDSTNUImproved},
	} {
		gAlg, err := initcheck.InitAndCheck(raw)
		require.NoError(t, err)
		st, err := alg.run(gAlg)
		require.NoError(t, err, alg.name)
		require.True(t, st.Controllable, alg.name)
		w := waitOn(gAlg, "B", "A")
		require.NotNil(t, w, "%s: expected a wait on B->A", alg.name)
	}

	for _, alg := range []struct {
		name string
		run  func(*graph.Graph, ...stnu.Option) (*status.CheckStatus, error)
	}{
		{"RUL2018", stnu.RUL2018},
		{"RUL2021", stnu.RUL2021},
		{"SRNCycleFinder", stnu.SRNCycleFinder},
	} {
		gAlg, err := initcheck.InitAndCheck(raw)
		require.NoError(t, err)
		st, err := alg.run(gAlg)
		require.NoError(t, err, alg.name)
		assert.True(t, st.Controllable, alg.name)
	}
}

func TestScenario4_InterruptionCycle_IsNotControllable(t *testing.T) {
	raw := interruptionCycleGraph(t)

	for _, alg := range []struct {
		name string
		run  func(*graph.Graph, ...stnu.Option) (*status.CheckStatus, error)
	}{
		{"RUL2018", stnu.RUL2018},
		{"RUL2021", stnu.RUL2021},
		{"SRNCycleFinder", stnu.SRNCycleFinder},
	} {
		g, err := initcheck.InitAndCheck(raw)
		require.NoError(t, err)
		st, err := alg.run(g)
		require.NoError(t, err, alg.name)
		require.True(t, st.Finished, alg.name)
		assert.False(t, st.Controllable, alg.name)
		require.NotNil(t, st.Witness, alg.name)
		assert.Equal(t, status.InterruptionCycle, st.Witness.Kind, alg.name)
	}
}

func TestMorris2014_NilGraph(t *testing.T) {
	_, err := stnu.Morris2014(nil)
	assert.ErrorIs(t, err, stnu.ErrNilGraph)
}
