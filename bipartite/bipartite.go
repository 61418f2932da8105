package bipartite

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrNodeNotFound is returned when a lookup references a node that is
	// absent from the addressed partition.
	ErrNodeNotFound = errors.New("node not found")

	// ErrEdgeNotFound is returned when both endpoints exist but are not
	// adjacent.
	ErrEdgeNotFound = errors.New("edge not found")
)

// Neighbor pairs a neighboring node with the weight of the connecting edge.
type Neighbor[N comparable] struct {
	Node   N
	Weight float64
}

// partition holds one side of the graph: node insertion order, the node to
// dense-index map, and per-node adjacency with neighbor insertion order.
type partition[A comparable, B comparable] struct {
	order    []A
	index    map[A]int
	weights  map[A]map[B]float64
	nbrOrder map[A][]B
}

func newPartition[A comparable, B comparable]() partition[A, B] {
	return partition[A, B]{
		index:    make(map[A]int),
		weights:  make(map[A]map[B]float64),
		nbrOrder: make(map[A][]B),
	}
}

// ensure registers n if it is new, assigning the next dense index.
func (p *partition[A, B]) ensure(n A) {
	if _, ok := p.index[n]; ok {
		return
	}
	p.index[n] = len(p.order)
	p.order = append(p.order, n)
	p.weights[n] = make(map[B]float64)
}

// link records to as a neighbor of from, overwriting the weight if the pair
// is already adjacent. Reports whether the edge is new on this side.
func (p *partition[A, B]) link(from A, to B, weight float64) bool {
	nbrs := p.weights[from]
	_, seen := nbrs[to]
	if !seen {
		p.nbrOrder[from] = append(p.nbrOrder[from], to)
	}
	nbrs[to] = weight
	return !seen
}

// Graph is a weighted bipartite graph with typed node partitions. The zero
// value is not usable; construct with New.
type Graph[L comparable, R comparable] struct {
	left  partition[L, R]
	right partition[R, L]
	edges int
}

// New creates an empty bipartite graph.
func New[L comparable, R comparable]() *Graph[L, R] {
	return &Graph[L, R]{
		left:  newPartition[L, R](),
		right: newPartition[R, L](),
	}
}

// AddEdge connects source (left partition) to target (right partition) with
// the given weight, creating either endpoint if it does not exist yet. Adding
// an existing edge overwrites its weight on both sides; the neighbor order is
// unchanged. Weights are taken as-is, zero and negative values included.
func (g *Graph[L, R]) AddEdge(source L, target R, weight float64) {
	g.left.ensure(source)
	g.right.ensure(target)
	if g.left.link(source, target, weight) {
		g.edges++
	}
	g.right.link(target, source, weight)
}

// LeftCount returns the number of nodes in the left partition.
func (g *Graph[L, R]) LeftCount() int { return len(g.left.order) }

// RightCount returns the number of nodes in the right partition.
func (g *Graph[L, R]) RightCount() int { return len(g.right.order) }

// EdgeCount returns the number of distinct edges.
func (g *Graph[L, R]) EdgeCount() int { return g.edges }

// LeftNodes returns the left partition's nodes in insertion order.
func (g *Graph[L, R]) LeftNodes() []L { return slices.Clone(g.left.order) }

// RightNodes returns the right partition's nodes in insertion order.
func (g *Graph[L, R]) RightNodes() []R { return slices.Clone(g.right.order) }

// LeftIndex returns a copy of the left node to dense-index map. The index of
// a node equals its position in LeftNodes.
func (g *Graph[L, R]) LeftIndex() map[L]int { return maps.Clone(g.left.index) }

// RightIndex returns a copy of the right node to dense-index map.
func (g *Graph[L, R]) RightIndex() map[R]int { return maps.Clone(g.right.index) }

// LeftNeighbors returns a copy of node's neighbor-to-weight map. Mutating the
// returned map does not affect the graph.
func (g *Graph[L, R]) LeftNeighbors(node L) (map[R]float64, error) {
	nbrs, ok := g.left.weights[node]
	if !ok {
		return nil, fmt.Errorf("left node %v: %w", node, ErrNodeNotFound)
	}
	return maps.Clone(nbrs), nil
}

// RightNeighbors returns a copy of node's neighbor-to-weight map.
func (g *Graph[L, R]) RightNeighbors(node R) (map[L]float64, error) {
	nbrs, ok := g.right.weights[node]
	if !ok {
		return nil, fmt.Errorf("right node %v: %w", node, ErrNodeNotFound)
	}
	return maps.Clone(nbrs), nil
}

// LeftAdjacency returns node's neighbors with weights in first-insertion
// order. The slice is freshly allocated on each call.
func (g *Graph[L, R]) LeftAdjacency(node L) ([]Neighbor[R], error) {
	nbrs, ok := g.left.weights[node]
	if !ok {
		return nil, fmt.Errorf("left node %v: %w", node, ErrNodeNotFound)
	}
	out := make([]Neighbor[R], 0, len(nbrs))
	for _, to := range g.left.nbrOrder[node] {
		out = append(out, Neighbor[R]{Node: to, Weight: nbrs[to]})
	}
	return out, nil
}

// RightAdjacency returns node's neighbors with weights in first-insertion
// order.
func (g *Graph[L, R]) RightAdjacency(node R) ([]Neighbor[L], error) {
	nbrs, ok := g.right.weights[node]
	if !ok {
		return nil, fmt.Errorf("right node %v: %w", node, ErrNodeNotFound)
	}
	out := make([]Neighbor[L], 0, len(nbrs))
	for _, to := range g.right.nbrOrder[node] {
		out = append(out, Neighbor[L]{Node: to, Weight: nbrs[to]})
	}
	return out, nil
}

// HasEdge reports whether source and target are adjacent.
func (g *Graph[L, R]) HasEdge(source L, target R) bool {
	nbrs, ok := g.left.weights[source]
	if !ok {
		return false
	}
	_, ok = nbrs[target]
	return ok
}

// Weight returns the weight of the edge between source and target. It returns
// ErrNodeNotFound if either endpoint is absent from its partition and
// ErrEdgeNotFound if both exist but are not adjacent.
func (g *Graph[L, R]) Weight(source L, target R) (float64, error) {
	nbrs, ok := g.left.weights[source]
	if !ok {
		return 0, fmt.Errorf("left node %v: %w", source, ErrNodeNotFound)
	}
	if _, ok := g.right.index[target]; !ok {
		return 0, fmt.Errorf("right node %v: %w", target, ErrNodeNotFound)
	}
	w, ok := nbrs[target]
	if !ok {
		return 0, fmt.Errorf("edge %v-%v: %w", source, target, ErrEdgeNotFound)
	}
	return w, nil
}
