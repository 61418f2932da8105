// Package testutil provides testing utilities for simgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic generation of random bipartite graphs, both
// fully random and clustered into a known number of connected components.
//
// # Random Graphs
//
//	rng := testutil.NewRNG(seed)
//	g := rng.RandomBipartite(100, 80, 300)
//
// Every node gets at least one incident edge; node keys are "q0", "q1", ...
// on the left and "d0", "d1", ... on the right.
//
// # Clustered Graphs
//
//	g := rng.ClusteredBipartite(8, 10, 10, 20)
//
// The result splits into exactly 8 connected components, which makes it a
// fixture for component-level solving.
package testutil
