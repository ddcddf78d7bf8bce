package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jublebi/dynacon/label"
)

func TestLabel_EmptyIsUniversal(t *testing.T) {
	e := label.Empty()
	assert.True(t, e.IsEmpty())
	assert.Equal(t, "⊤", e.String())
	assert.True(t, label.Subsumes(label.Single("p", label.Positive), e))
}

func TestLabel_ConjunctionConsistent(t *testing.T) {
	a := label.Single("p", label.Positive)
	b := label.Single("q", label.Negative)
	c, ok := label.Conjunction(a, b)
	require.True(t, ok)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "p∧¬q", c.String())
}

func TestLabel_ConjunctionInconsistent(t *testing.T) {
	a := label.Single("p", label.Positive)
	b := label.Single("p", label.Negative)
	_, ok := label.Conjunction(a, b)
	assert.False(t, ok)
}

func TestLabel_ConjunctionExtendedResolvesClash(t *testing.T) {
	a := label.Single("p", label.Positive)
	b := label.Single("p", label.Negative)
	c := label.ConjunctionExtended(a, b)
	st, ok := c.Get("p")
	require.True(t, ok)
	assert.Equal(t, label.Unknown, st)
}

func TestLabel_Subsumes(t *testing.T) {
	pq, ok := label.Conjunction(label.Single("p", label.Positive), label.Single("q", label.Negative))
	require.True(t, ok)
	p := label.Single("p", label.Positive)

	assert.True(t, label.Subsumes(pq, p), "p∧¬q should subsume p")
	assert.False(t, label.Subsumes(p, pq), "p should not subsume p∧¬q")
}

func TestLabel_Without(t *testing.T) {
	pq, _ := label.Conjunction(label.Single("p", label.Positive), label.Single("q", label.Negative))
	p := pq.Without("q")
	assert.Equal(t, 1, p.Len())
	_, ok := p.Get("q")
	assert.False(t, ok)
}

func TestLabel_RemoveChildrenOfUnknown(t *testing.T) {
	l := label.NewLabel([]string{"p", "q"}, []label.State{label.Positive, label.Negative})
	out := label.RemoveChildrenOfUnknown(l, func(prop string) bool { return prop == "q" })
	assert.Equal(t, 1, out.Len())
	_, hasQ := out.Get("q")
	assert.False(t, hasQ)
	_, hasP := out.Get("p")
	assert.True(t, hasP)
}

func TestLabel_Equal(t *testing.T) {
	a := label.NewLabel([]string{"p", "q"}, []label.State{label.Positive, label.Unknown})
	b := label.NewLabel([]string{"q", "p"}, []label.State{label.Unknown, label.Positive})
	assert.True(t, label.Equal(a, b))
}
