package simgo

import (
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/simgo/bipartite"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PlusPlusResult extends Result with the SimRank++ model. The embedded
// similarity matrices are evidence-weighted.
type PlusPlusResult[L comparable, R comparable] struct {
	Result[L, R]

	// LeftEvidence and RightEvidence hold the co-citation evidence of every
	// node pair, in [0, 1], diagonal 1.
	LeftEvidence  *mat.Dense
	RightEvidence *mat.Dense

	// LeftSpread and RightSpread hold exp(-variance) of each node's incident
	// edge weights. Uniform weights give spread 1; erratic weights shrink it.
	LeftSpread  []float64
	RightSpread []float64

	// LeftNorm and RightNorm are the row-normalized weight matrices. Rows
	// are indexed by the named partition, columns by the opposite one.
	LeftNorm  *mat.Dense
	RightNorm *mat.Dense

	// LeftTransition and RightTransition are the transition probabilities
	// driving the iteration: normalized weight scaled by the target node's
	// spread.
	LeftTransition  *mat.Dense
	RightTransition *mat.Dense

	// LeftSelfTransition and RightSelfTransition are the per-node leftover
	// probability mass, 1 minus the outgoing transition sum. Reported for
	// inspection; the iteration never follows self-transitions.
	LeftSelfTransition  []float64
	RightSelfTransition []float64
}

// SimRankPlusPlus computes SimRank++ similarity for every node pair of both
// partitions of g. On top of plain SimRank it weighs each propagation step
// by transition probabilities derived from edge weights and weight spread,
// and scales the returned matrices by co-citation evidence, so pairs sharing
// more neighbors keep more of their score. The fixed-point iteration runs on
// raw similarities; evidence is multiplied in once at the end.
//
// The graph must not be mutated during the call. An empty graph yields an
// empty result with nil matrices and zero iterations.
func SimRankPlusPlus[L comparable, R comparable](g *bipartite.Graph[L, R], optFns ...Option) (*PlusPlusResult[L, R], error) {
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	if g.EdgeCount() == 0 {
		return &PlusPlusResult[L, R]{
			Result: Result[L, R]{LeftIndex: g.LeftIndex(), RightIndex: g.RightIndex()},
		}, nil
	}

	left, right := snapshotSides(g)

	leftSpread := spreadVector(&left)
	rightSpread := spreadVector(&right)
	leftNorm, leftTrans, leftSelf := transitionModel(&left, rightSpread, right.n)
	rightNorm, rightTrans, rightSelf := transitionModel(&right, leftSpread, left.n)
	leftEv := evidenceMatrix(&left)
	rightEv := evidenceMatrix(&right)

	it := newIteration(left.n, right.n)
	it.run(o.maxIterations, o.tolerance,
		weightedScore(&left, leftTrans, it.rightPrev, o.damping),
		weightedScore(&right, rightTrans, it.leftPrev, o.damping),
	)

	// Evidence weights the returned matrices only, never the iteration.
	it.leftSim.MulElem(it.leftSim, leftEv)
	it.rightSim.MulElem(it.rightSim, rightEv)

	duration := time.Since(start)
	o.logger.LogSolve(AlgorithmSimRankPlusPlus, left.n, right.n, it.iterations, it.delta, duration)
	o.metricsCollector.RecordSolve(AlgorithmSimRankPlusPlus, it.iterations, duration)

	return &PlusPlusResult[L, R]{
		Result: Result[L, R]{
			LeftSim:    it.leftSim,
			RightSim:   it.rightSim,
			LeftIndex:  g.LeftIndex(),
			RightIndex: g.RightIndex(),
			Iterations: it.iterations,
		},
		LeftEvidence:        leftEv,
		RightEvidence:       rightEv,
		LeftSpread:          leftSpread,
		RightSpread:         rightSpread,
		LeftNorm:            leftNorm,
		RightNorm:           rightNorm,
		LeftTransition:      leftTrans,
		RightTransition:     rightTrans,
		LeftSelfTransition:  leftSelf,
		RightSelfTransition: rightSelf,
	}, nil
}

// evidenceOverlapCap bounds the precomputed evidence table; larger overlaps
// saturate at 1.
const evidenceOverlapCap = 10

// evidenceTable[k] holds 1 - 2^-k, the partial sum of the geometric series
// for k common neighbors.
var evidenceTable = buildEvidenceTable()

func buildEvidenceTable() [evidenceOverlapCap + 1]float64 {
	var t [evidenceOverlapCap + 1]float64
	for k := 1; k <= evidenceOverlapCap; k++ {
		t[k] = 1 - math.Exp2(-float64(k))
	}
	return t
}

// evidenceWeight maps a common-neighbor count to its evidence score.
func evidenceWeight(overlap uint64) float64 {
	if overlap > evidenceOverlapCap {
		return 1
	}
	return evidenceTable[overlap]
}

func evidenceScore(a, b *roaring.Bitmap) float64 {
	if a.IsEmpty() || b.IsEmpty() {
		return 0
	}
	return evidenceWeight(a.AndCardinality(b))
}

// evidenceMatrix scores every node pair of one side by co-citation: the more
// opposite-side neighbors two nodes share, the closer their evidence gets
// to 1.
func evidenceMatrix(snap *sideSnapshot) *mat.Dense {
	ev := identityMatrix(snap.n)
	for i := 0; i < snap.n; i++ {
		for j := i + 1; j < snap.n; j++ {
			e := evidenceScore(snap.sets[i], snap.sets[j])
			ev.Set(i, j, e)
			ev.Set(j, i, e)
		}
	}
	return ev
}

// spreadVector computes exp(-Var(w)) for each node over its incident edge
// weights, using the population variance.
func spreadVector(snap *sideSnapshot) []float64 {
	spread := make([]float64, snap.n)
	for i, ws := range snap.weights {
		if len(ws) == 0 {
			spread[i] = 1
			continue
		}
		spread[i] = math.Exp(-stat.PopVariance(ws, nil))
	}
	return spread
}

// transitionModel derives one side's weight model: row-normalized weights,
// transition probabilities (normalized weight scaled by the target node's
// spread), and the per-node self-transition remainder. A zero weight sum
// leaves the node's whole row at zero and its self-transition at 1.
func transitionModel(snap *sideSnapshot, oppSpread []float64, nOpp int) (norm, trans *mat.Dense, selfTrans []float64) {
	norm = mat.NewDense(snap.n, nOpp, nil)
	trans = mat.NewDense(snap.n, nOpp, nil)
	selfTrans = make([]float64, snap.n)
	for i := 0; i < snap.n; i++ {
		var total float64
		for _, w := range snap.weights[i] {
			total += w
		}
		var used float64
		if total != 0 {
			for k, j := range snap.neighbors[i] {
				nw := snap.weights[i][k] / total
				norm.Set(i, j, nw)
				tp := nw * oppSpread[j]
				trans.Set(i, j, tp)
				used += tp
			}
		}
		selfTrans[i] = 1 - used
	}
	return norm, trans, selfTrans
}
