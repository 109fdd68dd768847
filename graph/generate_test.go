package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestGenerate(t *testing.T) {
	t.Run("same seed produces the same graph", func(t *testing.T) {
		g1 := Generate(20, 0.3, rand.New(rand.NewSource(7)))
		g2 := Generate(20, 0.3, rand.New(rand.NewSource(7)))

		require.Equal(t, g1.Edges(), g2.Edges())
	})

	t.Run("probability zero yields no edges", func(t *testing.T) {
		g := Generate(10, 0, rand.New(rand.NewSource(1)))

		require.Equal(t, 0, g.NumEdges())
	})

	t.Run("probability one yields the complete graph", func(t *testing.T) {
		g := Generate(6, 1, rand.New(rand.NewSource(1)))

		require.Equal(t, 6*5/2, g.NumEdges())
	})
}
