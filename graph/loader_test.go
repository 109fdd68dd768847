package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	t.Run("parses a well-formed instance", func(t *testing.T) {
		g, err := ParseJSON([]byte(`{"num_vertices": 4, "edges": [[0,1],[1,2],[2,3]]}`))

		require.NoError(t, err)
		require.Equal(t, 4, g.NumVertices())
		require.Equal(t, 3, g.NumEdges())
		require.Equal(t, []int{0, 2}, g.Neighbors(1))
	})

	t.Run("collapses duplicate edges", func(t *testing.T) {
		g, err := ParseJSON([]byte(`{"num_vertices": 2, "edges": [[0,1],[1,0],[0,1]]}`))

		require.NoError(t, err)
		require.Equal(t, 1, g.NumEdges())
	})

	t.Run("rejects a document without num_vertices", func(t *testing.T) {
		_, err := ParseJSON([]byte(`{"edges": [[0,1]]}`))

		require.ErrorContains(t, err, "num_vertices")
	})

	t.Run("rejects self-loops", func(t *testing.T) {
		_, err := ParseJSON([]byte(`{"num_vertices": 2, "edges": [[1,1]]}`))

		require.ErrorContains(t, err, "self-loop")
	})

	t.Run("rejects out-of-range endpoints", func(t *testing.T) {
		_, err := ParseJSON([]byte(`{"num_vertices": 2, "edges": [[0,5]]}`))

		require.ErrorContains(t, err, "out of range")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := ParseJSON([]byte(`{"num_vertices":`))

		require.Error(t, err)
	})
}

func TestLoadWriteJSON(t *testing.T) {
	t.Run("round-trips an instance through disk", func(t *testing.T) {
		g := New(3)
		require.NoError(t, g.AddEdge(0, 1))
		require.NoError(t, g.AddEdge(1, 2))
		path := filepath.Join(t.TempDir(), "graph.json")

		require.NoError(t, WriteJSON(path, g))
		loaded, err := LoadJSON(path)

		require.NoError(t, err)
		require.Equal(t, g.NumVertices(), loaded.NumVertices())
		require.Equal(t, g.Edges(), loaded.Edges())
	})

	t.Run("load fails on a missing file", func(t *testing.T) {
		_, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"))

		require.Error(t, err)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
