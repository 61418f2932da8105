// Package bipartite provides a weighted bipartite graph with two typed node
// partitions and connected-component splitting.
//
// A Graph[L, R] keeps its left and right partitions in lockstep: every edge
// is recorded on both sides with the same weight, so neighbor lookups are
// symmetric and O(1) from either direction. Nodes are created implicitly by
// AddEdge and remembered in insertion order; each node also gets a dense
// index (its position in that order) which the solvers in the parent package
// use as matrix row/column coordinates.
//
// Graphs are not safe for concurrent mutation. Concurrent reads are fine
// once construction is done.
package bipartite
