package clusterstep

import (
	"math/rand"

	"golang.org/x/time/rate"
)

const (
	// DefaultK is the cluster count used when WithK is not given.
	DefaultK = 3
	// DefaultConvergenceThreshold is the maximum centroid displacement,
	// in normalized-coordinate units, below which a run is converged.
	DefaultConvergenceThreshold = 0.001
	// DefaultMaxIterations bounds a run that never converges (e.g. labels
	// oscillating on exact ties). Reaching it is a terminal state, not an
	// error.
	DefaultMaxIterations = 20

	// MinK and MaxK bound the accepted cluster counts.
	MinK = 2
	MaxK = 10
)

type options struct {
	k         int
	threshold float64
	maxIter   int
	rng       *rand.Rand
	logger    *Logger
	metrics   MetricsCollector
	pacer     *rate.Limiter
}

// Option configures Engine constructor behavior.
type Option func(*options)

// WithK sets the initial cluster count. Must be in [MinK, MaxK];
// New fails with *ErrInvalidK otherwise. Equivalent to calling SetK
// on an idle engine.
func WithK(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

// WithRandSource sets the random source used to draw initial centroids.
// Seed it for reproducible runs; tests rely on this to replicate exact
// centroid draws. If nil or unset, a time-seeded source is used.
func WithRandSource(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithConvergenceThreshold overrides the centroid-displacement threshold
// below which a run is declared converged. Non-positive values are ignored.
func WithConvergenceThreshold(threshold float64) Option {
	return func(o *options) {
		if threshold > 0 {
			o.threshold = threshold
		}
	}
}

// WithMaxIterations overrides the iteration budget of a run.
// Non-positive values are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIter = n
		}
	}
}

// WithLogger configures structured logging. Pass nil to keep the default
// (no output).
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}

// WithPacer sets a rate limiter that Run and Steps wait on between steps.
// Pacing is a scheduling policy only: with or without it the run commits
// the same snapshots in the same order. Pass nil for no pacing.
func WithPacer(pacer *rate.Limiter) Option {
	return func(o *options) {
		o.pacer = pacer
	}
}
