package lvmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jublebi/dynacon/label"
	"github.com/jublebi/dynacon/lvmap"
)

func TestMap_PutBasic(t *testing.T) {
	m := lvmap.New()
	p := label.Single("p", label.Positive)

	require.True(t, m.Put(p, 5))
	v, ok := m.Get(p)
	require.True(t, ok)
	assert.EqualValues(t, 5, v)
}

func TestMap_PutDominatedRejected(t *testing.T) {
	m := lvmap.New()
	pq, _ := label.Conjunction(label.Single("p", label.Positive), label.Single("q", label.Positive))
	p := label.Single("p", label.Positive)

	// A general, cheap entry already covers the more specific candidate.
	require.True(t, m.Put(p, 3))
	assert.False(t, m.Put(pq, 5), "pq@5 is dominated by p@3 since p subsumes pq and 3<=5")
	assert.Equal(t, 1, m.Len())
}

func TestMap_PutDominatesExisting(t *testing.T) {
	m := lvmap.New()
	pq, _ := label.Conjunction(label.Single("p", label.Positive), label.Single("q", label.Positive))
	p := label.Single("p", label.Positive)

	require.True(t, m.Put(pq, 5))
	// A cheaper, more general entry displaces the specific one.
	require.True(t, m.Put(p, 2))
	assert.Equal(t, 1, m.Len())
	v, ok := m.Get(p)
	require.True(t, ok)
	assert.EqualValues(t, 2, v)
}

func TestMap_IsCompact(t *testing.T) {
	m := lvmap.New()
	m.Put(label.Single("p", label.Positive), 1)
	m.Put(label.Single("q", label.Negative), 2)
	assert.True(t, m.IsCompact())
}

func TestMap_MergeKeepsCompaction(t *testing.T) {
	a := lvmap.New()
	a.Put(label.Empty(), 4)

	b := lvmap.New()
	b.Put(label.Single("p", label.Positive), 10)

	a.Merge(b)
	assert.Equal(t, 1, a.Len(), "the universal label@4 dominates p@10")
	assert.True(t, a.IsCompact())
}
