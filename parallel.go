package simgo

import (
	"context"
	"time"

	"github.com/hupe1980/simgo/bipartite"
	"golang.org/x/sync/errgroup"
)

// ComponentResult pairs one connected component with its solve output.
type ComponentResult[L comparable, R comparable, T any] struct {
	Graph  *bipartite.Graph[L, R]
	Result T
}

// SolveComponents splits g into its connected components and solves each one
// concurrently with the given solve function. Similarity never crosses
// components, so per-component scores equal whole-graph scores. Results are
// index-aligned with the SplitComponents order regardless of completion
// order.
//
// The first solve error cancels the remaining work and is returned.
// Concurrency is bounded by WithParallelism, GOMAXPROCS by default.
//
// Example:
//
//	results, err := simgo.SolveComponents(ctx, g,
//	    func(c *bipartite.Graph[string, string]) (*simgo.Result[string, string], error) {
//	        return simgo.SimRank(c, simgo.WithDamping(0.9))
//	    })
func SolveComponents[L comparable, R comparable, T any](ctx context.Context, g *bipartite.Graph[L, R], solve func(*bipartite.Graph[L, R]) (T, error), optFns ...Option) ([]ComponentResult[L, R, T], error) {
	o := applyOptions(optFns)

	start := time.Now()
	components := g.SplitComponents()
	results := make([]ComponentResult[L, R, T], len(components))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.parallelism)
	for i, component := range components {
		i, component := i, component // shadow: per-iteration values under go1.21 loop semantics
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := solve(component)
			if err != nil {
				return err
			}
			results[i] = ComponentResult[L, R, T]{Graph: component, Result: res}
			return nil
		})
	}
	err := eg.Wait()
	duration := time.Since(start)
	o.logger.LogComponentSolve(ctx, len(components), g.EdgeCount(), duration, err)
	if err != nil {
		return nil, err
	}
	o.metricsCollector.RecordComponentSolve(len(components), duration)
	return results, nil
}
