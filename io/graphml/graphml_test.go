package graphml_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/io/graphml"
	"github.com/jublebi/dynacon/label"
	"github.com/jublebi/dynacon/status"
)

func TestWriteRead_STNURoundTrip(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("Z"))
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("C"))
	_, err := g.AddEdge("Z", "A", graph.Requirement, graph.WithOrdinaryValue(3))
	require.NoError(t, err)
	lower, upper, err := g.AddContingentLink("A", "C", 1, 10)
	require.NoError(t, err)
	require.NoError(t, g.RegisterContingentLink("A", "C", lower, upper))

	var buf bytes.Buffer
	require.NoError(t, graphml.Write(&buf, g))

	got, err := graphml.Read(&buf)
	require.NoError(t, err)

	require.ElementsMatch(t, g.NodeNames(), got.NodeNames())
	require.Equal(t, g.EdgeCount(), got.EdgeCount())

	act, ok := got.ActivationOf("C")
	require.True(t, ok)
	require.Equal(t, "A", act)

	loName, ok := got.LowerEdgeOf("C")
	require.True(t, ok)
	lo, ok := got.Edge(loName)
	require.True(t, ok)
	require.NotNil(t, lo.LowerCase)
	require.Equal(t, int64(1), lo.LowerCase.Value)

	upName, ok := got.UpperEdgeOf("C")
	require.True(t, ok)
	up, ok := got.Edge(upName)
	require.True(t, ok)
	require.NotNil(t, up.UpperCase)
	require.Equal(t, int64(-10), up.UpperCase.Value)
}

func TestWriteRead_CSTNLabeledValues(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("Z"))
	require.NoError(t, g.AddNode("P", graph.WithObserver('p')))
	require.NoError(t, g.RegisterObserver('p', "P"))
	require.NoError(t, g.AddNode("Q", graph.WithQLabel(label.Single("p", label.Positive))))

	_, err := g.AddEdge("Z", "Q", graph.Requirement,
		graph.WithLabeledValue(label.Single("p", label.Positive), 5),
		graph.WithLabeledValue(label.Single("p", label.Negative), 9),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphml.Write(&buf, g))

	got, err := graphml.Read(&buf)
	require.NoError(t, err)

	qNode, ok := got.Node("Q")
	require.True(t, ok)
	require.False(t, qNode.QLabel.IsEmpty())

	edges := got.OutEdges("Z")
	require.Len(t, edges, 1)
	require.NotNil(t, edges[0].Ordinary)
	require.Equal(t, 2, edges[0].Ordinary.Len())
}

func TestWriteStatus(t *testing.T) {
	st := status.New(status.Morris2014)
	st.Controllable = true
	st.Finished = true
	st.Count("RELAX")

	var buf bytes.Buffer
	require.NoError(t, graphml.WriteStatus(&buf, st))
	require.Contains(t, buf.String(), "algorithm: Morris2014")
	require.Contains(t, buf.String(), "RELAX")
}

func TestRead_MalformedXML(t *testing.T) {
	_, err := graphml.Read(bytes.NewBufferString("<graph><node id"))
	require.Error(t, err)
}

func TestRead_UndeclaredNodeReference(t *testing.T) {
	_, err := graphml.Read(bytes.NewBufferString(`<graph><node id="A"/><edge source="A" target="B" type="requirement" value="1"/></graph>`))
	require.Error(t, err)
}
