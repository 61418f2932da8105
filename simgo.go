package simgo

import (
	"fmt"

	"github.com/hupe1980/simgo/bipartite"
	"gonum.org/v1/gonum/mat"
)

// Algorithm identifies a similarity solver.
type Algorithm int

const (
	// AlgorithmSimRank is the uniform solver: every edge contributes alike.
	AlgorithmSimRank Algorithm = iota

	// AlgorithmSimRankPlusPlus is the weighted solver with evidence scaling.
	AlgorithmSimRankPlusPlus
)

// String returns a human-readable representation of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmSimRank:
		return "simrank"
	case AlgorithmSimRankPlusPlus:
		return "simrank++"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// Result holds the output of one solve over a bipartite graph.
type Result[L comparable, R comparable] struct {
	// LeftSim and RightSim are the square similarity matrices of the two
	// partitions. Row and column order follows node insertion order; the
	// diagonal is fixed at 1. Both are nil when the graph is empty.
	LeftSim  *mat.Dense
	RightSim *mat.Dense

	// LeftIndex and RightIndex map nodes to their matrix row/column.
	LeftIndex  map[L]int
	RightIndex map[R]int

	// Iterations is the number of passes the solver ran. It equals the
	// configured cap when the matrices did not settle within it.
	Iterations int
}

// LeftSimilarity returns the similarity score of two left-partition nodes.
// It returns bipartite.ErrNodeNotFound if either node is unknown.
func (r *Result[L, R]) LeftSimilarity(a, b L) (float64, error) {
	i, ok := r.LeftIndex[a]
	if !ok {
		return 0, fmt.Errorf("left node %v: %w", a, bipartite.ErrNodeNotFound)
	}
	j, ok := r.LeftIndex[b]
	if !ok {
		return 0, fmt.Errorf("left node %v: %w", b, bipartite.ErrNodeNotFound)
	}
	return r.LeftSim.At(i, j), nil
}

// RightSimilarity returns the similarity score of two right-partition nodes.
// It returns bipartite.ErrNodeNotFound if either node is unknown.
func (r *Result[L, R]) RightSimilarity(a, b R) (float64, error) {
	i, ok := r.RightIndex[a]
	if !ok {
		return 0, fmt.Errorf("right node %v: %w", a, bipartite.ErrNodeNotFound)
	}
	j, ok := r.RightIndex[b]
	if !ok {
		return 0, fmt.Errorf("right node %v: %w", b, bipartite.ErrNodeNotFound)
	}
	return r.RightSim.At(i, j), nil
}
