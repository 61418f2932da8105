// Package prom provides a Prometheus-backed simgo.MetricsCollector.
package prom

import (
	"time"

	"github.com/hupe1980/simgo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector implements simgo.MetricsCollector on Prometheus metrics.
//
// Wire it into a solve:
//
//	collector := prom.New(prometheus.DefaultRegisterer)
//	result, err := simgo.SimRank(g, simgo.WithMetricsCollector(collector))
type Collector struct {
	solvesTotal            *prometheus.CounterVec
	solveDuration          *prometheus.HistogramVec
	solveIterations        *prometheus.HistogramVec
	componentSolvesTotal   prometheus.Counter
	componentSolveDuration prometheus.Histogram
	componentsPerSolve     prometheus.Histogram
}

var _ simgo.MetricsCollector = (*Collector)(nil)

// New creates a Collector with its metrics registered on reg. Pass
// prometheus.DefaultRegisterer to use the process-global registry.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		solvesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "simgo_solves_total",
				Help: "Total number of completed solves",
			},
			[]string{"algorithm"},
		),
		solveDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "simgo_solve_duration_seconds",
				Help:    "Duration of solves in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"algorithm"},
		),
		solveIterations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "simgo_solve_iterations",
				Help: "Number of passes per solve",
				// Aligned with the default iteration cap of 100.
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
			},
			[]string{"algorithm"},
		),
		componentSolvesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "simgo_component_solves_total",
				Help: "Total number of split-and-solve runs",
			},
		),
		componentSolveDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "simgo_component_solve_duration_seconds",
				Help:    "Duration of split-and-solve runs in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		componentsPerSolve: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "simgo_components_per_solve",
				Help:    "Connected components per split-and-solve run",
				Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
			},
		),
	}
}

// RecordSolve implements simgo.MetricsCollector.
func (c *Collector) RecordSolve(algorithm simgo.Algorithm, iterations int, duration time.Duration) {
	c.solvesTotal.WithLabelValues(algorithm.String()).Inc()
	c.solveDuration.WithLabelValues(algorithm.String()).Observe(duration.Seconds())
	c.solveIterations.WithLabelValues(algorithm.String()).Observe(float64(iterations))
}

// RecordComponentSolve implements simgo.MetricsCollector.
func (c *Collector) RecordComponentSolve(components int, duration time.Duration) {
	c.componentSolvesTotal.Inc()
	c.componentSolveDuration.Observe(duration.Seconds())
	c.componentsPerSolve.Observe(float64(components))
}
