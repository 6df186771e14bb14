package clusterstep

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordStart is called after each start request.
	// duration is the time spent normalizing and seeding, err is nil on
	// success.
	RecordStart(duration time.Duration, err error)

	// RecordStep is called after each committed step.
	// shift is the maximum centroid displacement of the step.
	RecordStep(iteration int, shift float64, duration time.Duration, err error)

	// RecordRun is called after a run-to-termination drive finishes.
	// iterations is the final iteration count, converged reports whether
	// the run ended below the convergence threshold.
	RecordRun(iterations int, converged bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStart(time.Duration, error)              {}
func (NoopMetricsCollector) RecordStep(int, float64, time.Duration, error) {}
func (NoopMetricsCollector) RecordRun(int, bool, time.Duration, error)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StartCount     atomic.Int64
	StartErrors    atomic.Int64
	StepCount      atomic.Int64
	StepErrors     atomic.Int64
	StepTotalNanos atomic.Int64
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunConverged   atomic.Int64
	RunCapped      atomic.Int64
	RunTotalIters  atomic.Int64
}

// RecordStart implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStart(duration time.Duration, err error) {
	b.StartCount.Add(1)
	if err != nil {
		b.StartErrors.Add(1)
	}
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(iteration int, shift float64, duration time.Duration, err error) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.StepErrors.Add(1)
	}
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(iterations int, converged bool, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalIters.Add(int64(iterations))
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	if converged {
		b.RunConverged.Add(1)
	} else {
		b.RunCapped.Add(1)
	}
}

// BasicMetricsStats is a point-in-time view of a BasicMetricsCollector.
type BasicMetricsStats struct {
	StartCount    int64
	StartErrors   int64
	StepCount     int64
	StepErrors    int64
	StepAvgNanos  int64
	RunCount      int64
	RunErrors     int64
	RunConverged  int64
	RunCapped     int64
	RunTotalIters int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		StartCount:    b.StartCount.Load(),
		StartErrors:   b.StartErrors.Load(),
		StepCount:     b.StepCount.Load(),
		StepErrors:    b.StepErrors.Load(),
		RunCount:      b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
		RunConverged:  b.RunConverged.Load(),
		RunCapped:     b.RunCapped.Load(),
		RunTotalIters: b.RunTotalIters.Load(),
	}
	if stats.StepCount > 0 {
		stats.StepAvgNanos = b.StepTotalNanos.Load() / stats.StepCount
	}
	return stats
}
