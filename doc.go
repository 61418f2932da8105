// Package simgo computes structural-similarity scores between the nodes of
// weighted bipartite graphs, using SimRank and SimRank++.
//
// The intuition behind both algorithms: two nodes are similar if their
// neighbors are similar. Scores are iterated to a fixed point over both
// graph partitions at once, so similarity flows across sides (similar
// queries point to similar documents, which in turn make the queries more
// similar). SimRank treats all edges alike; SimRank++ additionally weighs
// transitions by edge weight and scales results by co-citation evidence.
//
// # Quick Start
//
// Build a graph, solve, look up scores:
//
//	g := bipartite.New[string, string]()
//	g.AddEdge("camera", "hp.com", 1.0)
//	g.AddEdge("camera", "bestbuy.com", 1.0)
//	g.AddEdge("digital_camera", "hp.com", 1.0)
//	g.AddEdge("digital_camera", "bestbuy.com", 1.0)
//
//	result, err := simgo.SimRank(g)
//	if err != nil {
//	    panic(err)
//	}
//	score, _ := result.LeftSimilarity("camera", "digital_camera")
//
// Node keys can be any comparable types; the two partitions are typed
// independently, so query/document, user/item and similar pairings keep
// their natural key types.
//
// # SimRank++
//
// The weighted variant returns its full model next to the similarity
// matrices (evidence, weight spread, normalized weights, transition
// probabilities):
//
//	result, err := simgo.SimRankPlusPlus(g,
//	    simgo.WithDamping(0.8),
//	    simgo.WithTolerance(1e-4),
//	)
//
// # Connected Components
//
// Similarity never crosses connected components, so large sparse graphs can
// be split and solved concurrently with identical results:
//
//	results, err := simgo.SolveComponents(ctx, g,
//	    func(c *bipartite.Graph[string, string]) (*simgo.Result[string, string], error) {
//	        return simgo.SimRank(c)
//	    })
//
// # Key Features
//
//   - Uniform SimRank and weighted, evidence-aware SimRank++
//   - Typed node partitions via generics
//   - Deterministic solves: insertion-order indexing, synchronous passes
//   - Connected-component splitting with concurrent solving
//   - Structured logging (log/slog) and pluggable metrics (Prometheus
//     adapter in the prom subpackage)
package simgo
