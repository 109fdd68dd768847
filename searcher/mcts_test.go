package searcher

import (
	"testing"

	"mvc/graph"

	"github.com/stretchr/testify/require"
)

// checkTreeInvariants walks the whole tree and verifies the
// structural invariants that must hold after every rollout.
func checkTreeInvariants(t *testing.T, m *MCTS, nd *node) {
	t.Helper()
	n := m.graph.NumVertices()

	// Partition of the vertex universe
	selected := nd.state.Selected()
	excluded := nd.state.Excluded()
	require.Equal(t, nd.state.SelectedCount(), len(selected),
		"selection flags must agree with the selected set")
	possible := 0
	for v := 0; v < n; v++ {
		inSelected := nd.state.IsSelected(v)
		inPossible := nd.state.IsPossible(v)
		require.False(t, inSelected && inPossible, "selected and possible overlap")
		if inPossible {
			possible++
		}
	}
	require.Equal(t, n, len(selected)+len(excluded)+possible,
		"selected, excluded, possible must partition the vertices")

	require.LessOrEqual(t, len(nd.children), 2)
	require.GreaterOrEqual(t, nd.expandable, 0)
	require.LessOrEqual(t, nd.expandable, 2)

	childVisits := 0
	for _, child := range nd.children {
		childVisits += child.visits
		checkTreeInvariants(t, m, child)
	}
	require.GreaterOrEqual(t, nd.visits, childVisits,
		"a node is visited at least as often as its children combined")
	if nd.visits > 0 {
		require.GreaterOrEqual(t, nd.value, 0.0)
		require.LessOrEqual(t, nd.value, 1.0)
	}
	if nd.expandable == 1 && len(nd.children) == 2 {
		open := 0
		for _, child := range nd.children {
			if child.expandable > 0 {
				open++
			}
		}
		require.Equal(t, 1, open, "expandable==1 means exactly one open child")
	}
}

func TestRunScenarios(t *testing.T) {
	t.Run("triangle reaches the optimum in one rollout", func(t *testing.T) {
		g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
		m := NewMCTS(g, WithSeed(1))
		require.False(t, m.Done())
		require.Equal(t, 3, m.Answer(), "no rollout has run yet")

		m.Run()

		require.Equal(t, 2, m.Answer())
		checkTreeInvariants(t, m, m.root)
	})

	t.Run("two disjoint triangles reach the optimum of four in one rollout", func(t *testing.T) {
		g := buildGraph(t, 6, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})
		m := NewMCTS(g, WithSeed(1))

		m.Run()

		require.LessOrEqual(t, m.Answer(), 4)
		checkTreeInvariants(t, m, m.root)
	})

	t.Run("four-cycle converges to an opposite pair", func(t *testing.T) {
		g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}})
		m := NewMCTS(g, WithSeed(1))

		for i := 0; i < 20; i++ {
			m.Run()
		}

		require.Equal(t, 2, m.Answer())
		solution := m.GetSolution()
		require.True(t, solution.Covers(g))
		picked := solution.Selected()
		require.Len(t, picked, 2)
		require.Contains(t, [][]int{{0, 2}, {1, 3}}, picked,
			"a minimum cover of the 4-cycle is a pair of opposite vertices")
		checkTreeInvariants(t, m, m.root)
	})

	t.Run("complete graph answer approaches n-1", func(t *testing.T) {
		n := 6
		g := graph.New(n)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				require.NoError(t, g.AddEdge(u, v))
			}
		}
		m := NewMCTS(g, WithSeed(1))

		for i := 0; i < 50 && !m.Done(); i++ {
			m.Run()
		}

		require.LessOrEqual(t, m.Answer(), n-1)
		require.True(t, m.GetSolution().Covers(g))
	})
}

func TestRunBoundaries(t *testing.T) {
	t.Run("empty graph is terminal with answer zero", func(t *testing.T) {
		m := NewMCTS(graph.New(0), WithSeed(1))

		require.True(t, m.Done())
		require.Equal(t, 0, m.Answer())
	})

	t.Run("single vertex without edges is terminal with answer zero", func(t *testing.T) {
		m := NewMCTS(graph.New(1), WithSeed(1))

		require.True(t, m.Done())
		require.Equal(t, 0, m.Answer())
		require.Equal(t, []int{0}, m.root.state.Excluded())
	})

	t.Run("run on a terminal root changes nothing", func(t *testing.T) {
		g := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
		m := NewMCTS(g, WithSeed(1))
		require.True(t, m.Done())

		for i := 0; i < 5; i++ {
			m.Run()
		}

		require.Equal(t, 1, m.Answer())
		require.Empty(t, m.root.children)
		require.Zero(t, m.root.visits)
	})
}

func TestRunProperties(t *testing.T) {
	t.Run("answer never increases and rollouts always cover", func(t *testing.T) {
		g := buildGraph(t, 8, [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {2, 6},
		})
		m := NewMCTS(g, WithSeed(7))

		previous := m.Answer()
		for i := 0; i < 40 && !m.Done(); i++ {
			m.Run()
			require.LessOrEqual(t, m.Answer(), previous, "answer must be monotone")
			previous = m.Answer()
		}

		checkTreeInvariants(t, m, m.root)
		solution := m.GetSolution()
		require.True(t, solution.Covers(g))
		require.GreaterOrEqual(t, solution.SelectedCount(), m.Answer(),
			"the returned cover can never beat the best size observed")
	})

	t.Run("a closed tree stops producing rollouts", func(t *testing.T) {
		g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
		m := NewMCTS(g, WithSeed(1))

		for i := 0; i < 100; i++ {
			m.Run()
		}

		require.True(t, m.Done(), "the triangle tree has two leaves in total")
		require.Equal(t, 2, m.Answer())
		visits := m.root.visits
		m.Run()
		require.Equal(t, visits, m.root.visits, "runs after closure are no-ops")
	})

	t.Run("expansion alternates the pivot endpoints", func(t *testing.T) {
		g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}})
		m := NewMCTS(g, WithSeed(1))
		a, b := m.root.state.ActionEdge()

		m.Run()
		m.Run()

		require.Len(t, m.root.children, 2)
		first := m.root.children[0].state
		second := m.root.children[1].state
		require.True(t, first.IsSelected(a), "first child includes the first endpoint")
		require.True(t, second.IsSelected(b), "second child includes the second endpoint")
	})
}

func TestGetSolution(t *testing.T) {
	t.Run("returns a valid cover even before any rollout", func(t *testing.T) {
		g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}})
		m := NewMCTS(g, WithSeed(1))

		solution := m.GetSolution()

		require.True(t, solution.Covers(g))
	})

	t.Run("follows the best observed path", func(t *testing.T) {
		g := buildGraph(t, 6, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})
		m := NewMCTS(g, WithSeed(3))

		for i := 0; i < 30 && !m.Done(); i++ {
			m.Run()
		}
		solution := m.GetSolution()

		require.True(t, solution.Covers(g))
		require.LessOrEqual(t, solution.SelectedCount(), 6)
	})
}
