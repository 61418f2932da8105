package testutil

import (
	"math/rand"
	"strconv"
	"sync"

	"github.com/hupe1980/simgo/bipartite"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// RandomBipartite generates a graph with exactly leftNodes and rightNodes
// nodes: every node gets at least one incident edge, then extraEdges random
// edges are layered on top (duplicate draws collapse, so the final edge count
// may be lower). Node keys are "q0", "q1", ... on the left and "d0", "d1",
// ... on the right; weights fall in [0.5, 1.5).
func (r *RNG) RandomBipartite(leftNodes, rightNodes, extraEdges int) *bipartite.Graph[string, string] {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := bipartite.New[string, string]()
	for i := 0; i < leftNodes; i++ {
		g.AddEdge(leftName(i), rightName(r.rand.Intn(rightNodes)), r.weightLocked())
	}
	for j := 0; j < rightNodes; j++ {
		g.AddEdge(leftName(r.rand.Intn(leftNodes)), rightName(j), r.weightLocked())
	}
	for e := 0; e < extraEdges; e++ {
		g.AddEdge(leftName(r.rand.Intn(leftNodes)), rightName(r.rand.Intn(rightNodes)), r.weightLocked())
	}
	return g
}

// ClusteredBipartite generates a graph that splits into exactly clusters
// connected components. Each cluster wires its own disjoint block of left and
// right nodes: a hub edge per left node keeps the cluster connected, and
// extraPerCluster random in-cluster edges are layered on top.
func (r *RNG) ClusteredBipartite(clusters, leftPerCluster, rightPerCluster, extraPerCluster int) *bipartite.Graph[string, string] {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := bipartite.New[string, string]()
	for c := 0; c < clusters; c++ {
		lbase, rbase := c*leftPerCluster, c*rightPerCluster
		for i := 0; i < leftPerCluster; i++ {
			g.AddEdge(leftName(lbase+i), rightName(rbase), r.weightLocked())
			g.AddEdge(leftName(lbase+i), rightName(rbase+r.rand.Intn(rightPerCluster)), r.weightLocked())
		}
		for j := 0; j < rightPerCluster; j++ {
			g.AddEdge(leftName(lbase+r.rand.Intn(leftPerCluster)), rightName(rbase+j), r.weightLocked())
		}
		for e := 0; e < extraPerCluster; e++ {
			g.AddEdge(leftName(lbase+r.rand.Intn(leftPerCluster)), rightName(rbase+r.rand.Intn(rightPerCluster)), r.weightLocked())
		}
	}
	return g
}

// weightLocked draws an edge weight in [0.5, 1.5). Caller must hold the lock.
func (r *RNG) weightLocked() float64 {
	return 0.5 + r.rand.Float64()
}

func leftName(i int) string  { return "q" + strconv.Itoa(i) }
func rightName(i int) string { return "d" + strconv.Itoa(i) }
