package searcher

import (
	"mvc/graph"

	"github.com/rs/zerolog/log"
)

// greedyCover extends the selection flags in sel until every edge of
// g is covered: repeatedly pick the unselected vertex touching the
// most uncovered edges, ties to the lowest index. sel is mutated in
// place.
func greedyCover(g *graph.Graph, sel []bool) {
	n := g.NumVertices()
	edges := g.Edges()

	uncovered := func(e graph.Edge) bool {
		return !sel[e.U] && !sel[e.V]
	}

	for {
		remaining := false
		degree := make([]int, n)
		for _, e := range edges {
			if uncovered(e) {
				remaining = true
				degree[e.U]++
				degree[e.V]++
			}
		}
		if !remaining {
			return
		}

		pick, best := noVertex, -1
		for v := 0; v < n; v++ {
			if !sel[v] && degree[v] > best {
				best = degree[v]
				pick = v
			}
		}
		if pick == noVertex {
			// Unreachable while state invariants hold: an uncovered
			// edge always has two unselected endpoints.
			log.Warn().Msg("rollout found uncovered edges with every vertex selected")
			return
		}
		sel[pick] = true
	}
}
