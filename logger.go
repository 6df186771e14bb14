package clusterstep

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clusterstep-specific context.
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

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithIteration adds an iteration field to the logger.
func (l *Logger) WithIteration(iteration int) *Logger {
	return &Logger{
		Logger: l.Logger.With("iteration", iteration),
	}
}

// LogStart logs the outcome of a start request.
func (l *Logger) LogStart(ctx context.Context, k, points int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "start failed",
			"k", k,
			"points", points,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run started",
			"k", k,
			"points", points,
		)
	}
}

// LogStep logs one committed step.
func (l *Logger) LogStep(ctx context.Context, iteration int, shift float64, status Status) {
	l.DebugContext(ctx, "step committed",
		"iteration", iteration,
		"shift", shift,
		"status", status.String(),
	)
}

// LogRun logs a completed run-to-termination drive.
func (l *Logger) LogRun(ctx context.Context, iterations int, status Status, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"iterations", iterations,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run finished",
			"iterations", iterations,
			"status", status.String(),
		)
	}
}
