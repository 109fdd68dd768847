package searcher

import (
	"container/heap"
	"math"

	"mvc/graph"
)

// Standalone cover solvers. None of these sit on the Run path; they
// exist as baselines and as the coarsening ladder the engine's
// rollout can be compared against.

// ExactSolveThreshold bounds the brute-force search; beyond it the
// subset enumeration is infeasible.
const ExactSolveThreshold = 16

// GreedySolve builds a cover from scratch with the max-residual-degree
// heuristic, the same procedure the engine uses to complete rollouts.
func GreedySolve(g *graph.Graph) *State {
	sel := make([]bool, g.NumVertices())
	greedyCover(g, sel)
	return NewStateFromSelected(sel)
}

// ExactSolve finds a minimum vertex cover by subset enumeration. The
// graph must have at most ExactSolveThreshold vertices.
func ExactSolve(g *graph.Graph) *State {
	if g.NumVertices() > ExactSolveThreshold {
		panic("graph too large for exact solve")
	}
	ones := make([]int, g.NumVertices())
	for i := range ones {
		ones[i] = 1
	}
	return exactSolveWeighted(g, ones)
}

// exactSolveWeighted enumerates vertex subsets and keeps the valid
// cover of minimum total weight.
func exactSolveWeighted(g *graph.Graph, weights []int) *State {
	n := g.NumVertices()
	edges := g.Edges()

	bestMask := (1 << n) - 1
	bestWeight := 0
	for _, w := range weights {
		bestWeight += w
	}

	for mask := 0; mask < 1<<n; mask++ {
		valid := true
		for _, e := range edges {
			if mask&(1<<e.U) == 0 && mask&(1<<e.V) == 0 {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}
		weight := 0
		for v := 0; v < n; v++ {
			if mask&(1<<v) != 0 {
				weight += weights[v]
			}
		}
		if weight < bestWeight {
			bestWeight = weight
			bestMask = mask
		}
	}

	sel := make([]bool, n)
	for v := 0; v < n; v++ {
		sel[v] = bestMask&(1<<v) != 0
	}
	return NewStateFromSelected(sel)
}

// CoarseSolve solves by recursive coarsening: contract matched vertex
// pairs into supernodes, solve the smaller graph (exactly once it is
// small enough), lift the cover back, and repair greedily. An
// experimental path, kept separate from the tree search.
func CoarseSolve(g *graph.Graph) *State {
	weights := make([]int, g.NumVertices())
	for i := range weights {
		weights[i] = 1
	}
	return coarseSolve(g, weights)
}

func coarseSolve(g *graph.Graph, weights []int) *State {
	if g.NumVertices() <= ExactSolveThreshold {
		return exactSolveWeighted(g, weights)
	}

	coarse, coarseWeights, groups := coarsen(g, weights)
	if coarse.NumVertices() == g.NumVertices() {
		// No contraction happened; coarsening has stalled.
		return GreedySolve(g)
	}

	coarseSol := coarseSolve(coarse, coarseWeights)

	// Lift: a selected supernode selects every vertex it contains.
	sel := make([]bool, g.NumVertices())
	for _, super := range coarseSol.Selected() {
		for _, v := range groups[super] {
			sel[v] = true
		}
	}

	// Lifted covers can miss edges between groups; repair greedily.
	greedyCover(g, sel)
	return NewStateFromSelected(sel)
}

// degreeVertex orders peeling candidates by current degree.
type degreeVertex struct {
	degree, vertex int
}

type degreeHeap []degreeVertex

func (h degreeHeap) Len() int           { return len(h) }
func (h degreeHeap) Less(i, j int) bool { return h[i].degree < h[j].degree }
func (h degreeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *degreeHeap) Push(x any) {
	*h = append(*h, x.(degreeVertex))
}

func (h *degreeHeap) Pop() any {
	old := *h
	last := old[len(old)-1]
	*h = old[:len(old)-1]
	return last
}

// coreNumbers computes the degeneracy core number of every vertex by
// min-degree peeling with a lazy heap: stale entries are skipped when
// they surface.
func coreNumbers(g *graph.Graph) []int {
	n := g.NumVertices()
	degree := make([]int, n)
	core := make([]int, n)
	removed := make([]bool, n)

	h := make(degreeHeap, 0, n)
	for v := 0; v < n; v++ {
		degree[v] = g.Degree(v)
		h = append(h, degreeVertex{degree: degree[v], vertex: v})
	}
	heap.Init(&h)

	k := 0
	for h.Len() > 0 {
		top := heap.Pop(&h).(degreeVertex)
		if removed[top.vertex] || top.degree != degree[top.vertex] {
			continue
		}
		removed[top.vertex] = true
		if top.degree > k {
			k = top.degree
		}
		core[top.vertex] = k
		for _, u := range g.Neighbors(top.vertex) {
			if !removed[u] {
				if degree[u] > 0 {
					degree[u]--
				}
				heap.Push(&h, degreeVertex{degree: degree[u], vertex: u})
			}
		}
	}
	return core
}

type bucketKey struct {
	core, degreeBucket int
}

// coarsen contracts matched vertex pairs into supernodes. Matching is
// restricted to buckets of similar structure (same core number, same
// log-degree band) and prefers adjacent pairs, then pairs sharing a
// neighbor, then arbitrary leftovers. Returns the coarse graph, its
// supernode weights, and the vertex groups behind each supernode.
func coarsen(g *graph.Graph, weights []int) (*graph.Graph, []int, [][]int) {
	n := g.NumVertices()
	core := coreNumbers(g)

	buckets := make(map[bucketKey][]int)
	order := make([]bucketKey, 0)
	for v := 0; v < n; v++ {
		key := bucketKey{
			core:         core[v],
			degreeBucket: int(math.Floor(math.Log2(float64(g.Degree(v)) + 1))),
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], v)
	}

	matched := make([]bool, n)
	groups := make([][]int, 0, n/2)

	// Deterministic bucket order: keyed map iteration would reorder
	// groups between runs.
	for _, key := range order {
		bucket := buckets[key]
		inBucket := make(map[int]bool, len(bucket))
		for _, v := range bucket {
			inBucket[v] = true
		}

		// Adjacent pairs first
		for _, v := range bucket {
			if matched[v] {
				continue
			}
			for _, u := range g.Neighbors(v) {
				if !matched[u] && inBucket[u] {
					matched[v], matched[u] = true, true
					groups = append(groups, []int{v, u})
					break
				}
			}
		}

		// Then pairs sharing a neighbor
		remain := make([]int, 0)
		inRemain := make(map[int]bool)
		for _, v := range bucket {
			if !matched[v] {
				remain = append(remain, v)
				inRemain[v] = true
			}
		}
		for _, v := range remain {
			if matched[v] {
				continue
			}
			paired := false
			for _, via := range g.Neighbors(v) {
				for _, w := range g.Neighbors(via) {
					if w != v && inRemain[w] && !matched[w] {
						matched[v], matched[w] = true, true
						groups = append(groups, []int{v, w})
						paired = true
						break
					}
				}
				if paired {
					break
				}
			}
		}

		// Arbitrary pairing of whatever is left; an odd vertex
		// survives uncontracted
		leftovers := make([]int, 0)
		for _, v := range remain {
			if !matched[v] {
				leftovers = append(leftovers, v)
			}
		}
		if len(leftovers)%2 == 1 {
			single := leftovers[len(leftovers)-1]
			leftovers = leftovers[:len(leftovers)-1]
			matched[single] = true
			groups = append(groups, []int{single})
		}
		for i := 0; i+1 < len(leftovers); i += 2 {
			a, b := leftovers[i], leftovers[i+1]
			matched[a], matched[b] = true, true
			groups = append(groups, []int{a, b})
		}
	}

	coarse := graph.New(len(groups))
	coarseWeights := make([]int, len(groups))
	vertexGroup := make([]int, n)
	for i, group := range groups {
		for _, v := range group {
			vertexGroup[v] = i
			coarseWeights[i] += weights[v]
		}
	}

	for u := 0; u < n; u++ {
		for _, v := range g.Neighbors(u) {
			su, sv := vertexGroup[u], vertexGroup[v]
			if su != sv {
				// AddEdge drops duplicates; contracted self-loops are
				// skipped here
				_ = coarse.AddEdge(su, sv)
			}
		}
	}

	return coarse, coarseWeights, groups
}
