package integration_test

import (
	"context"
	"testing"

	"github.com/hupe1980/simgo"
	"github.com/hupe1980/simgo/bipartite"
	"github.com/hupe1980/simgo/prom"
	"github.com/hupe1980/simgo/testutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestFullPipeline runs the complete flow on a clustered graph: split into
// components, solve each with SimRank++, and cross-check against the
// whole-graph solve.
func TestFullPipeline(t *testing.T) {
	rng := testutil.NewRNG(4711)
	g := rng.ClusteredBipartite(4, 8, 6, 12)

	whole, err := simgo.SimRankPlusPlus(g)
	require.NoError(t, err)

	metrics := &simgo.BasicMetricsCollector{}
	results, err := simgo.SolveComponents(context.Background(), g,
		func(c *bipartite.Graph[string, string]) (*simgo.PlusPlusResult[string, string], error) {
			return simgo.SimRankPlusPlus(c)
		},
		simgo.WithMetricsCollector(metrics),
	)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for _, cr := range results {
		lefts := cr.Graph.LeftNodes()
		for i, a := range lefts {
			for _, b := range lefts[i+1:] {
				got, err := cr.Result.LeftSimilarity(a, b)
				require.NoError(t, err)
				want, err := whole.LeftSimilarity(a, b)
				require.NoError(t, err)
				assert.InDelta(t, want, got, 1e-3, "pair %s,%s", a, b)
			}
		}
	}

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.ComponentSolveCount)
	assert.Equal(t, int64(4), stats.ComponentsTotal)
}

// TestDeterministic checks that repeated solves of the same graph produce
// identical matrices, including through the parallel component driver.
func TestDeterministic(t *testing.T) {
	g := testutil.NewRNG(99).RandomBipartite(15, 12, 40)

	r1, err := simgo.SimRank(g)
	require.NoError(t, err)
	r2, err := simgo.SimRank(g)
	require.NoError(t, err)

	assert.Equal(t, r1.Iterations, r2.Iterations)
	assert.True(t, mat.Equal(r1.LeftSim, r2.LeftSim))
	assert.True(t, mat.Equal(r1.RightSim, r2.RightSim))

	clustered := testutil.NewRNG(7).ClusteredBipartite(3, 6, 5, 8)
	solve := func(c *bipartite.Graph[string, string]) (*simgo.Result[string, string], error) {
		return simgo.SimRank(c)
	}

	c1, err := simgo.SolveComponents(context.Background(), clustered, solve)
	require.NoError(t, err)
	c2, err := simgo.SolveComponents(context.Background(), clustered, solve)
	require.NoError(t, err)

	require.Len(t, c2, len(c1))
	for i := range c1 {
		assert.Equal(t, c1[i].Graph.LeftNodes(), c2[i].Graph.LeftNodes())
		assert.True(t, mat.Equal(c1[i].Result.LeftSim, c2[i].Result.LeftSim))
	}
}

// TestMetricsPipeline wires the Prometheus collector through both solvers
// and the component driver at once.
func TestMetricsPipeline(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := prom.New(reg)

	rng := testutil.NewRNG(42)
	g := rng.RandomBipartite(10, 8, 20)

	_, err := simgo.SimRank(g, simgo.WithMetricsCollector(collector))
	require.NoError(t, err)
	_, err = simgo.SimRankPlusPlus(g, simgo.WithMetricsCollector(collector))
	require.NoError(t, err)

	clustered := rng.ClusteredBipartite(3, 5, 4, 6)
	_, err = simgo.SolveComponents(context.Background(), clustered,
		func(c *bipartite.Graph[string, string]) (*simgo.Result[string, string], error) {
			return simgo.SimRank(c, simgo.WithMetricsCollector(collector))
		},
		simgo.WithMetricsCollector(collector),
	)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 6)

	// One direct solve plus three component solves ran as plain SimRank.
	var solves float64
	for _, mf := range families {
		if mf.GetName() != "simgo_solves_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "algorithm" && lp.GetValue() == "simrank" {
					solves += m.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, 4.0, solves)
}
