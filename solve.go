package simgo

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/simgo/bipartite"
	"gonum.org/v1/gonum/mat"
)

// sideSnapshot is a dense read-only copy of one partition, taken before
// iteration starts: per-node neighbor indices into the opposite partition,
// edge weights aligned with them, and the neighbor index set as a bitmap.
// The hot loops run on snapshots only and never touch graph maps.
type sideSnapshot struct {
	n         int
	neighbors [][]int
	weights   [][]float64
	sets      []*roaring.Bitmap
}

// snapshotSides captures both partitions of g with dense indices.
func snapshotSides[L comparable, R comparable](g *bipartite.Graph[L, R]) (left, right sideSnapshot) {
	left = snapshotPartition(g.LeftNodes(), g.RightIndex(), g.LeftAdjacency)
	right = snapshotPartition(g.RightNodes(), g.LeftIndex(), g.RightAdjacency)
	return left, right
}

func snapshotPartition[A comparable, B comparable](nodes []A, opposite map[B]int, adjacency func(A) ([]bipartite.Neighbor[B], error)) sideSnapshot {
	snap := sideSnapshot{
		n:         len(nodes),
		neighbors: make([][]int, len(nodes)),
		weights:   make([][]float64, len(nodes)),
		sets:      make([]*roaring.Bitmap, len(nodes)),
	}
	for i, node := range nodes {
		nbrs, _ := adjacency(node) // node comes from the graph, lookup cannot fail
		idx := make([]int, len(nbrs))
		ws := make([]float64, len(nbrs))
		set := roaring.New()
		for k, nb := range nbrs {
			j := opposite[nb.Node]
			idx[k] = j
			ws[k] = nb.Weight
			set.Add(uint32(j))
		}
		snap.neighbors[i] = idx
		snap.weights[i] = ws
		snap.sets[i] = set
	}
	return snap
}

// identityMatrix returns the n x n identity matrix.
func identityMatrix(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// maxDelta returns the largest absolute elementwise difference between a and
// b. Both must be dense square matrices of the same order.
func maxDelta(a, b *mat.Dense) float64 {
	ad, bd := a.RawMatrix().Data, b.RawMatrix().Data
	var largest float64
	for i, v := range ad {
		if d := math.Abs(v - bd[i]); d > largest {
			largest = d
		}
	}
	return largest
}

// updatePass recomputes every off-diagonal pair of cur, assigning each score
// symmetrically. The diagonal stays untouched, so identity-initialized
// matrices keep self-similarity at 1. score must depend only on matrices
// from the previous iteration; updatePass itself never reads cur.
func updatePass(cur *mat.Dense, score func(i, j int) float64) {
	n, _ := cur.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := score(i, j)
			cur.Set(i, j, s)
			cur.Set(j, i, s)
		}
	}
}

// uniformScore returns the plain SimRank pair kernel for one side: the mean
// of the previous opposite-side similarities over the neighbor cross
// product, damped. Nodes without neighbors score zero.
func uniformScore(snap *sideSnapshot, prevOpp *mat.Dense, damping float64) func(i, j int) float64 {
	return func(i, j int) float64 {
		ni, nj := snap.neighbors[i], snap.neighbors[j]
		if len(ni) == 0 || len(nj) == 0 {
			return 0
		}
		var sum float64
		for _, a := range ni {
			for _, b := range nj {
				sum += prevOpp.At(a, b)
			}
		}
		return damping * sum / (float64(len(ni)) * float64(len(nj)))
	}
}

// weightedScore returns the SimRank++ pair kernel for one side: previous
// opposite-side similarities weighted by both nodes' transition
// probabilities, damped.
func weightedScore(snap *sideSnapshot, trans *mat.Dense, prevOpp *mat.Dense, damping float64) func(i, j int) float64 {
	return func(i, j int) float64 {
		ni, nj := snap.neighbors[i], snap.neighbors[j]
		if len(ni) == 0 || len(nj) == 0 {
			return 0
		}
		var sum float64
		for _, a := range ni {
			ta := trans.At(i, a)
			for _, b := range nj {
				sum += ta * trans.At(j, b) * prevOpp.At(a, b)
			}
		}
		return damping * sum
	}
}

// iteration carries the solver state: the matrices being written this pass
// and the previous iteration's matrices that the pair kernels read from.
type iteration struct {
	leftSim, rightSim   *mat.Dense
	leftPrev, rightPrev *mat.Dense
	iterations          int
	delta               float64
}

func newIteration(nLeft, nRight int) *iteration {
	return &iteration{
		leftSim:   identityMatrix(nLeft),
		rightSim:  identityMatrix(nRight),
		leftPrev:  identityMatrix(nLeft),
		rightPrev: identityMatrix(nRight),
	}
}

// run executes synchronized passes over both sides until the largest
// elementwise change of both matrices falls below tolerance, or the pass cap
// is reached. Passes are checked after updating, so even an immediately
// stable graph runs one full pass. leftScore must read only rightPrev and
// rightScore only leftPrev; run copies sim into prev between passes, never
// during one.
func (it *iteration) run(maxIterations int, tolerance float64, leftScore, rightScore func(i, j int) float64) {
	for pass := 1; pass <= maxIterations; pass++ {
		updatePass(it.leftSim, leftScore)
		updatePass(it.rightSim, rightScore)
		it.iterations = pass
		it.delta = math.Max(maxDelta(it.leftSim, it.leftPrev), maxDelta(it.rightSim, it.rightPrev))
		if it.delta < tolerance {
			return
		}
		it.leftPrev.Copy(it.leftSim)
		it.rightPrev.Copy(it.rightSim)
	}
}
