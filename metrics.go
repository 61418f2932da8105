package simgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the prom
// subpackage ships a Prometheus-backed implementation.
type MetricsCollector interface {
	// RecordSolve is called after each completed solve.
	// iterations is the number of passes run, duration the total time taken.
	RecordSolve(algorithm Algorithm, iterations int, duration time.Duration)

	// RecordComponentSolve is called after each split-and-solve.
	// components is the number of connected components solved.
	RecordComponentSolve(components int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSolve(Algorithm, int, time.Duration) {}
func (NoopMetricsCollector) RecordComponentSolve(int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SolveCount          atomic.Int64
	SolveTotalNanos     atomic.Int64
	IterationsTotal     atomic.Int64
	ComponentSolveCount atomic.Int64
	ComponentsTotal     atomic.Int64
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(_ Algorithm, iterations int, duration time.Duration) {
	b.SolveCount.Add(1)
	b.SolveTotalNanos.Add(duration.Nanoseconds())
	b.IterationsTotal.Add(int64(iterations))
}

// RecordComponentSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordComponentSolve(components int, duration time.Duration) {
	b.ComponentSolveCount.Add(1)
	b.ComponentsTotal.Add(int64(components))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SolveCount:          b.SolveCount.Load(),
		SolveAvgNanos:       b.getAvgSolveNanos(),
		IterationsTotal:     b.IterationsTotal.Load(),
		ComponentSolveCount: b.ComponentSolveCount.Load(),
		ComponentsTotal:     b.ComponentsTotal.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSolveNanos() int64 {
	count := b.SolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SolveCount          int64
	SolveAvgNanos       int64
	IterationsTotal     int64
	ComponentSolveCount int64
	ComponentsTotal     int64
}
