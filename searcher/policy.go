package searcher

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Policy names a child-selection strategy for the descent through
// fully expanded nodes.
type Policy int

const (
	// EpsilonGreedy exploits the highest-scoring child and explores a
	// uniform child with probability epsilon. Default: after
	// kernelization the gap between the two branches is usually
	// large, and deterministic exploitation converges faster than
	// pure UCT on a branching factor of 2.
	EpsilonGreedy Policy = iota
	// UCTSampling draws a child at random, weighted by clipped UCT
	// scores.
	UCTSampling
)

const (
	epsilon     = 0.1  // exploration probability for EpsilonGreedy
	visitsFloor = 1e-6 // keeps the UCT term finite on unvisited children
)

func (p Policy) String() string {
	switch p {
	case EpsilonGreedy:
		return "epsilon-greedy"
	case UCTSampling:
		return "uct"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy maps a policy name to its Policy value.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "epsilon-greedy", "greedy":
		return EpsilonGreedy, nil
	case "uct":
		return UCTSampling, nil
	}
	return 0, fmt.Errorf("unknown tree policy %q", name)
}

// uctScore is the upper confidence bound on a child:
// value + 2c*sqrt(2*ln(N)/(eps+n)).
func uctScore(parent, child *node, explorationParam float64) float64 {
	return child.value + 2*explorationParam*
		math.Sqrt(2*math.Log(float64(parent.visits))/(visitsFloor+float64(child.visits)))
}

// uctSampling draws a child with probability proportional to its
// clipped UCT score. When every score clips to zero, the last child
// is the fallback pick. The parent must have been visited and have at
// least one child.
func uctSampling(parent *node, explorationParam float64, rng *rand.Rand) *node {
	if len(parent.children) == 0 {
		panic("cannot sample from a node with no children")
	}
	if parent.visits == 0 {
		panic("cannot sample from an unvisited node")
	}

	weights := make([]float64, len(parent.children))
	sum := 0.0
	for i, child := range parent.children {
		w := uctScore(parent, child, explorationParam)
		if w < 0 {
			w = 0
		}
		sum += w
		weights[i] = sum
	}
	if sum <= 0 {
		return parent.children[len(parent.children)-1]
	}

	r := rng.Float64() * sum
	for i, cumulative := range weights {
		if r <= cumulative {
			return parent.children[i]
		}
	}
	return parent.children[len(parent.children)-1]
}

// epsilonGreedy returns a uniformly random child with probability
// epsilon, otherwise the child with the largest UCT score. Ties go to
// the earliest child.
func epsilonGreedy(parent *node, explorationParam float64, rng *rand.Rand) *node {
	if len(parent.children) == 0 {
		panic("cannot sample from a node with no children")
	}
	if parent.visits == 0 {
		panic("cannot sample from an unvisited node")
	}

	if rng.Float64() < epsilon {
		return parent.children[rng.Intn(len(parent.children))]
	}

	best := parent.children[0]
	bestScore := uctScore(parent, best, explorationParam)
	for _, child := range parent.children[1:] {
		if score := uctScore(parent, child, explorationParam); score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

func (p Policy) pick(parent *node, explorationParam float64, rng *rand.Rand) *node {
	switch p {
	case UCTSampling:
		return uctSampling(parent, explorationParam, rng)
	default:
		return epsilonGreedy(parent, explorationParam, rng)
	}
}
