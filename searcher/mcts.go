package searcher

import (
	"time"

	"mvc/graph"

	"golang.org/x/exp/rand"
)

// Option configures an MCTS engine.
type Option func(m *MCTS)

// WithExplorationParam sets the exploration constant used by the tree
// policies.
func WithExplorationParam(c float64) Option {
	return func(m *MCTS) {
		m.explorationParam = c
	}
}

// WithPolicy selects the tree policy used during descent.
func WithPolicy(p Policy) Option {
	return func(m *MCTS) {
		m.policy = p
	}
}

// WithSeed makes the engine's random draws reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// MCTS is an anytime minimum vertex cover engine: a binary branching
// tree over pivot-edge decisions, with kernelization applied at every
// node and a greedy rollout as the default policy. One Run call is
// one rollout; the engine never terminates on its own, the caller
// decides when to stop. Single-threaded.
type MCTS struct {
	graph *graph.Graph
	root  *node

	// answer is the smallest cover size observed by any rollout since
	// construction. Monotonically non-increasing; kernelization rule 3
	// reads it as the pruning bound.
	answer int

	explorationParam float64
	policy           Policy
	rng              *rand.Rand
}

// NewMCTS builds an engine for g. The root is kernelized to a
// fixpoint immediately; a graph that kernelization solves outright
// leaves the root terminal with the answer already final.
func NewMCTS(g *graph.Graph, options ...Option) *MCTS {
	m := &MCTS{
		graph:  g,
		root:   newNode(NewState(g.NumVertices())),
		answer: g.NumVertices(),
		policy: EpsilonGreedy,
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	m.reduce(m.root)
	if !m.root.state.SelectActionEdge(m.graph) {
		m.answer = m.root.state.SelectedCount()
		m.root.expandable = 0
	}
	return m
}

// Graph returns the instance the engine searches.
func (m *MCTS) Graph() *graph.Graph {
	return m.graph
}

// Answer returns the best (smallest) cover size observed so far.
func (m *MCTS) Answer() int {
	return m.answer
}

// Done reports whether the tree is fully closed; further Run calls
// are no-ops.
func (m *MCTS) Done() bool {
	return m.root.expandable == 0
}

// SetExplorationParam adjusts the tree-policy exploration constant.
func (m *MCTS) SetExplorationParam(c float64) {
	m.explorationParam = c
}

// Run performs one rollout: select a node with room to grow, expand
// one branch of its pivot edge, complete the child greedily, and push
// the reward back to the root. Skipped once the tree is closed.
func (m *MCTS) Run() {
	if m.Done() {
		return
	}
	leaf := m.selectNode(m.root)
	child := m.expand(leaf)
	reward := m.simulate(child).Evaluate()
	m.backpropagate(child, reward)
}

// selectNode descends to a node that can still produce a child.
// Subtrees whose expandable count dropped to one have a single open
// child, so the descent is forced there; otherwise the tree policy
// chooses.
func (m *MCTS) selectNode(nd *node) *node {
	if !nd.isFull() {
		return nd
	}
	if nd.expandable <= 0 {
		panic("selection reached a closed subtree")
	}
	if nd.expandable == 1 {
		if nd.children[0].expandable > 0 {
			return m.selectNode(nd.children[0])
		}
		return m.selectNode(nd.children[1])
	}
	return m.selectNode(m.policy.pick(nd, m.explorationParam, m.rng))
}

// expand creates the next child of nd: commit the first pivot
// endpoint, kernelize, and pick the child's own pivot. Swapping nd's
// pivot endpoints afterwards makes the second expansion branch on the
// other endpoint.
func (m *MCTS) expand(nd *node) *node {
	if nd.expandable <= 0 {
		panic("cannot expand a closed node")
	}
	a, _ := nd.state.ActionEdge()
	if a == noVertex {
		panic("cannot expand a node without a pivot edge")
	}

	child := newNode(nd.state.Clone())
	child.parent = nd
	child.state.Include(a)
	m.reduce(child)
	if !child.state.SelectActionEdge(m.graph) {
		child.expandable = 0
		m.expandableUpdate(child)
	}
	nd.addChild(child)

	nd.state.swapActionEdge()

	return child
}

// simulate completes nd's partial cover with the greedy rollout and
// returns the finished state. The global answer absorbs the result.
func (m *MCTS) simulate(nd *node) *State {
	n := m.graph.NumVertices()
	sel := make([]bool, n)
	for v := 0; v < n; v++ {
		sel[v] = nd.state.IsSelected(v)
	}

	greedyCover(m.graph, sel)

	size := 0
	for _, picked := range sel {
		if picked {
			size++
		}
	}
	if size < m.answer {
		m.answer = size
	}
	return NewStateFromSelected(sel)
}

// backpropagate pushes a rollout reward from nd up to the root.
func (m *MCTS) backpropagate(nd *node, reward float64) {
	for ; nd != nil; nd = nd.parent {
		nd.addExperience(reward)
	}
}

// expandableUpdate closes ancestors of a newly terminal node: each
// parent loses one expandable slot, and the walk continues only while
// that closes the parent too.
func (m *MCTS) expandableUpdate(nd *node) {
	for nd.expandable == 0 {
		nd = nd.parent
		if nd == nil {
			return
		}
		nd.expandable--
	}
}

// GetSolution walks the best-observed path (maxValue, ties to more
// visits) down the tree and completes it with the greedy rollout.
// maxValue tracks the best reward seen below a node, which matches
// the minimization goal better than the running mean.
func (m *MCTS) GetSolution() *State {
	nd := m.root
	for len(nd.children) > 0 {
		best := nd.children[0]
		for _, child := range nd.children[1:] {
			if child.maxValue > best.maxValue ||
				(child.maxValue == best.maxValue && child.visits > best.visits) {
				best = child
			}
		}
		nd = best
	}
	return m.simulate(nd)
}
