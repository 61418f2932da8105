package simgo

import (
	"time"

	"github.com/hupe1980/simgo/bipartite"
)

// SimRank computes SimRank similarity for every node pair of both partitions
// of g. Matrices start at identity; each pass rescores every pair with the
// damped mean similarity over the two nodes' neighbor cross product, read
// from the opposite partition's previous pass. Iteration stops once both
// matrices change by less than the tolerance, or at the iteration cap.
//
// The graph must not be mutated during the call. An empty graph yields an
// empty Result with nil matrices and zero iterations.
func SimRank[L comparable, R comparable](g *bipartite.Graph[L, R], optFns ...Option) (*Result[L, R], error) {
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	if g.EdgeCount() == 0 {
		return &Result[L, R]{LeftIndex: g.LeftIndex(), RightIndex: g.RightIndex()}, nil
	}

	left, right := snapshotSides(g)
	it := newIteration(left.n, right.n)
	it.run(o.maxIterations, o.tolerance,
		uniformScore(&left, it.rightPrev, o.damping),
		uniformScore(&right, it.leftPrev, o.damping),
	)

	duration := time.Since(start)
	o.logger.LogSolve(AlgorithmSimRank, left.n, right.n, it.iterations, it.delta, duration)
	o.metricsCollector.RecordSolve(AlgorithmSimRank, it.iterations, duration)

	return &Result[L, R]{
		LeftSim:    it.leftSim,
		RightSim:   it.rightSim,
		LeftIndex:  g.LeftIndex(),
		RightIndex: g.RightIndex(),
		Iterations: it.iterations,
	}, nil
}
