package simgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with simgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithAlgorithm adds an algorithm field to the logger.
func (l *Logger) WithAlgorithm(algorithm Algorithm) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", algorithm.String()),
	}
}

// WithComponent adds a component index field to the logger.
func (l *Logger) WithComponent(component int) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", component),
	}
}

// WithGraphSize adds left/right node count fields to the logger.
func (l *Logger) WithGraphSize(left, right int) *Logger {
	return &Logger{
		Logger: l.Logger.With("left_nodes", left, "right_nodes", right),
	}
}

// LogSolve logs a completed solve.
func (l *Logger) LogSolve(algorithm Algorithm, left, right, iterations int, delta float64, duration time.Duration) {
	l.Debug("solve completed",
		"algorithm", algorithm.String(),
		"left_nodes", left,
		"right_nodes", right,
		"iterations", iterations,
		"max_delta", delta,
		"duration", duration,
	)
}

// LogComponentSolve logs a completed split-and-solve over all components.
func (l *Logger) LogComponentSolve(ctx context.Context, components, edges int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "component solve failed",
			"components", components,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "component solve completed",
			"components", components,
			"edges", edges,
			"duration", duration,
		)
	}
}
