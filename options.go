package simgo

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Solver defaults, used whenever the corresponding option is not given.
const (
	// DefaultDamping is the decay factor applied to every propagated score.
	DefaultDamping = 0.8

	// DefaultMaxIterations caps the number of passes a solver runs.
	DefaultMaxIterations = 100

	// DefaultTolerance is the elementwise change below which iteration stops.
	DefaultTolerance = 1e-4
)

type options struct {
	damping          float64
	maxIterations    int
	tolerance        float64
	parallelism      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures solver behavior.
type Option func(*options)

// WithDamping sets the damping factor. Valid values are in (0, 1]; a factor
// of 1 propagates neighbor similarity undamped.
func WithDamping(damping float64) Option {
	return func(o *options) {
		o.damping = damping
	}
}

// WithMaxIterations caps the number of iteration passes. The solver stops at
// the cap even if the matrices have not settled; compare Result.Iterations
// against the cap to detect that case.
func WithMaxIterations(maxIterations int) Option {
	return func(o *options) {
		o.maxIterations = maxIterations
	}
}

// WithTolerance sets the convergence tolerance. Iteration stops once the
// largest absolute elementwise change of both similarity matrices falls
// below it.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		o.tolerance = tolerance
	}
}

// WithParallelism bounds how many components SolveComponents works on at
// once. Values below 1 fall back to GOMAXPROCS. Ignored by the single-graph
// solvers.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.parallelism = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring solves.
//
// Example with BasicMetricsCollector:
//
//	metrics := &simgo.BasicMetricsCollector{}
//	result, _ := simgo.SimRank(g, simgo.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Solves: %d, Avg latency: %dns\n", stats.SolveCount, stats.SolveAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for solves.
//
// Example with JSON logging:
//
//	logger := simgo.NewJSONLogger(slog.LevelDebug)
//	result, _ := simgo.SimRank(g, simgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		damping:          DefaultDamping,
		maxIterations:    DefaultMaxIterations,
		tolerance:        DefaultTolerance,
		parallelism:      runtime.GOMAXPROCS(0),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o *options) validate() error {
	if o.damping <= 0 || o.damping > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidDamping, o.damping)
	}
	if o.maxIterations < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxIterations, o.maxIterations)
	}
	if o.tolerance <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTolerance, o.tolerance)
	}
	return nil
}
