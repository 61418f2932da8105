package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomBipartite(t *testing.T) {
	rng := NewRNG(4711)

	g := rng.RandomBipartite(6, 4, 10)

	assert.Equal(t, 6, g.LeftCount())
	assert.Equal(t, 4, g.RightCount())
	assert.GreaterOrEqual(t, g.EdgeCount(), 6)
	assert.LessOrEqual(t, g.EdgeCount(), 20)

	// Every node carries at least one edge.
	for _, l := range g.LeftNodes() {
		nbrs, err := g.LeftNeighbors(l)
		require.NoError(t, err)
		assert.NotEmpty(t, nbrs)
		for _, w := range nbrs {
			assert.GreaterOrEqual(t, w, 0.5)
			assert.Less(t, w, 1.5)
		}
	}
	for _, r := range g.RightNodes() {
		nbrs, err := g.RightNeighbors(r)
		require.NoError(t, err)
		assert.NotEmpty(t, nbrs)
	}
}

func TestRandomBipartiteDeterministic(t *testing.T) {
	g1 := NewRNG(99).RandomBipartite(5, 5, 8)
	g2 := NewRNG(99).RandomBipartite(5, 5, 8)

	assert.Equal(t, g1.LeftNodes(), g2.LeftNodes())
	assert.Equal(t, g1.RightNodes(), g2.RightNodes())
	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount())

	for _, l := range g1.LeftNodes() {
		n1, err := g1.LeftNeighbors(l)
		require.NoError(t, err)
		n2, err := g2.LeftNeighbors(l)
		require.NoError(t, err)
		assert.Equal(t, n1, n2)
	}
}

func TestClusteredBipartite(t *testing.T) {
	rng := NewRNG(4711)

	g := rng.ClusteredBipartite(3, 4, 3, 2)

	assert.Equal(t, 12, g.LeftCount())
	assert.Equal(t, 9, g.RightCount())

	parts := g.SplitComponents()
	assert.Len(t, parts, 3)
	for _, p := range parts {
		assert.Equal(t, 4, p.LeftCount())
		assert.Equal(t, 3, p.RightCount())
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	g1 := rng.RandomBipartite(4, 4, 5)

	rng.Reset()
	g2 := rng.RandomBipartite(4, 4, 5)

	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount())
	assert.Equal(t, g1.LeftNodes(), g2.LeftNodes())
}
