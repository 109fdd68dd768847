package graph

import "golang.org/x/exp/rand"

// Generate builds a G(n,p) random graph: every pair {u,v} becomes an
// edge independently with probability p.
func Generate(n int, p float64, rng *rand.Rand) *Graph {
	g := New(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				// Cannot fail: u < v and both in range
				_ = g.AddEdge(u, v)
			}
		}
	}
	return g
}
