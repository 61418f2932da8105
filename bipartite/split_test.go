package bipartite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitComponents(t *testing.T) {
	t.Run("TwoComponents", func(t *testing.T) {
		g := New[string, int]()
		g.AddEdge("A", 1, 1.0)
		g.AddEdge("A", 2, 1.0)
		g.AddEdge("B", 1, 1.0)
		g.AddEdge("B", 3, 1.0)
		g.AddEdge("C", 3, 1.0)
		g.AddEdge("D", 4, 1.0)
		g.AddEdge("D", 5, 1.0)
		g.AddEdge("E", 5, 1.0)

		parts := g.SplitComponents()
		require.Len(t, parts, 2)

		assert.Equal(t, []string{"A", "B", "C"}, parts[0].LeftNodes())
		assert.Equal(t, []int{1, 2, 3}, parts[0].RightNodes())
		assert.Equal(t, 5, parts[0].EdgeCount())

		assert.Equal(t, []string{"D", "E"}, parts[1].LeftNodes())
		assert.Equal(t, []int{4, 5}, parts[1].RightNodes())
		assert.Equal(t, 3, parts[1].EdgeCount())
	})

	t.Run("SingleComponent", func(t *testing.T) {
		g := New[string, string]()
		g.AddEdge("a", "x", 1.0)
		g.AddEdge("b", "x", 1.0)
		g.AddEdge("b", "y", 1.0)

		parts := g.SplitComponents()
		require.Len(t, parts, 1)
		assert.Equal(t, 3, parts[0].EdgeCount())
		assert.Equal(t, []string{"a", "b"}, parts[0].LeftNodes())
	})

	t.Run("EmptyGraph", func(t *testing.T) {
		g := New[string, string]()
		assert.Empty(t, g.SplitComponents())
	})

	t.Run("EdgesArePartitioned", func(t *testing.T) {
		g := New[string, int]()
		g.AddEdge("A", 1, 1.0)
		g.AddEdge("B", 1, 1.0)
		g.AddEdge("C", 2, 1.0)
		g.AddEdge("D", 3, 1.0)

		parts := g.SplitComponents()

		total := 0
		seen := make(map[[2]any]bool)
		for _, p := range parts {
			total += p.EdgeCount()
			for _, l := range p.LeftNodes() {
				nbrs, err := p.LeftNeighbors(l)
				require.NoError(t, err)
				for r := range nbrs {
					key := [2]any{l, r}
					assert.False(t, seen[key], "edge %v appears twice", key)
					seen[key] = true
					assert.True(t, g.HasEdge(l, r))
				}
			}
		}
		assert.Equal(t, g.EdgeCount(), total)
	})

	t.Run("WeightsPreserved", func(t *testing.T) {
		g := New[string, int]()
		g.AddEdge("A", 1, 0.25)
		g.AddEdge("A", 2, 4.0)
		g.AddEdge("B", 3, 7.5)

		parts := g.SplitComponents()
		require.Len(t, parts, 2)

		w, err := parts[0].Weight("A", 2)
		require.NoError(t, err)
		assert.Equal(t, 4.0, w)

		w, err = parts[1].Weight("B", 3)
		require.NoError(t, err)
		assert.Equal(t, 7.5, w)
	})

	t.Run("Deterministic", func(t *testing.T) {
		g := New[string, int]()
		g.AddEdge("A", 1, 1.0)
		g.AddEdge("B", 2, 1.0)
		g.AddEdge("C", 3, 1.0)
		g.AddEdge("C", 1, 1.0)

		first := g.SplitComponents()
		second := g.SplitComponents()
		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, first[i].LeftNodes(), second[i].LeftNodes())
			assert.Equal(t, first[i].RightNodes(), second[i].RightNodes())
		}
	})
}
