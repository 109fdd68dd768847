package searcher

// kernelize applies the first reduction rule that fires on the node's
// state and reports whether anything changed. The engine loops it to
// a fixpoint after every state mutation. Rules, in order:
//
//  1. A possible vertex with no possible neighbors covers nothing;
//     exclude it.
//  2. A possible vertex with exactly one possible neighbor: take the
//     neighbor, which dominates taking the vertex itself.
//  3. A possible vertex with more possible neighbors than the best
//     cover found so far must be in any cover that beats it; include
//     it.
//
// Rules never touch the graph, only the node's state.
func (m *MCTS) kernelize(nd *node) bool {
	n := m.graph.NumVertices()
	state := nd.state

	// Rule 1: isolated in the residual graph
	for v := 0; v < n; v++ {
		if state.IsPossible(v) && state.residualDegree(m.graph, v) == 0 {
			state.Exclude(v)
			return true
		}
	}

	// Rule 2: degree one in the residual graph
	for v := 0; v < n; v++ {
		if !state.IsPossible(v) {
			continue
		}
		degree := 0
		neighbor := noVertex
		for _, u := range m.graph.Neighbors(v) {
			if state.IsPossible(u) {
				degree++
				neighbor = u
			}
		}
		if degree == 1 && neighbor != noVertex {
			state.Include(neighbor)
			return true
		}
	}

	// Rule 3: residual degree above the global upper bound
	k := m.answer
	for v := 0; v < n; v++ {
		if state.IsPossible(v) && state.residualDegree(m.graph, v) > k {
			state.Include(v)
			return true
		}
	}

	return false
}

// reduce runs the rule set to a fixpoint.
func (m *MCTS) reduce(nd *node) {
	for m.kernelize(nd) {
	}
}
