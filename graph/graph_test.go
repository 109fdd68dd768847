package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEdge(t *testing.T) {
	t.Run("adding an edge updates both adjacency lists", func(t *testing.T) {
		g := New(3)

		require.NoError(t, g.AddEdge(0, 2))

		require.Equal(t, []int{2}, g.Neighbors(0))
		require.Equal(t, []int{0}, g.Neighbors(2))
		require.Empty(t, g.Neighbors(1))
	})

	t.Run("duplicate edges are collapsed", func(t *testing.T) {
		g := New(2)

		require.NoError(t, g.AddEdge(0, 1))
		require.NoError(t, g.AddEdge(1, 0))

		require.Equal(t, 1, g.NumEdges())
		require.Equal(t, 1, g.Degree(0))
	})

	t.Run("self-loops are rejected", func(t *testing.T) {
		g := New(2)

		require.Error(t, g.AddEdge(1, 1))
	})

	t.Run("out-of-range endpoints are rejected", func(t *testing.T) {
		g := New(2)

		require.Error(t, g.AddEdge(0, 2))
		require.Error(t, g.AddEdge(-1, 0))
	})
}

func TestEdges(t *testing.T) {
	t.Run("each edge appears once with the lower endpoint first", func(t *testing.T) {
		g := New(4)
		require.NoError(t, g.AddEdge(2, 0))
		require.NoError(t, g.AddEdge(3, 1))
		require.NoError(t, g.AddEdge(0, 1))

		edges := g.Edges()

		require.Equal(t, []Edge{{U: 0, V: 2}, {U: 0, V: 1}, {U: 1, V: 3}}, edges)
		require.Equal(t, 3, g.NumEdges())
	})

	t.Run("empty graph has no edges", func(t *testing.T) {
		require.Empty(t, New(0).Edges())
		require.Empty(t, New(5).Edges())
	})
}
