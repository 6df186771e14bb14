package clusterstep

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/clusterstep/dataset"
	"github.com/hupe1980/clusterstep/internal/kmeans"
	"github.com/hupe1980/clusterstep/normalize"
)

// Engine is the clustering state machine. It owns the dataset's normalized
// coordinates, the K centroids and the per-point labels, and commits exactly
// one iteration per Step call.
//
// All state lives behind a single mutex: a step's (centroids, labels) commit
// is atomic and fully visible before the next step is allowed to read it, so
// callers may drive Step from any scheduler without a stale-read window.
// There is exactly one run at a time.
type Engine struct {
	mu sync.Mutex

	raw []dataset.RawPoint

	k         int
	threshold float64
	maxIter   int
	rng       *rand.Rand
	logger    *Logger
	metrics   MetricsCollector
	pacer     *rate.Limiter

	state      Status
	normalized []kmeans.Point
	centroids  []kmeans.Centroid
	labels     []int
	iteration  int
	lastShift  float64

	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// New creates an engine over the given raw records. The records are
// referenced, not copied, and must not be mutated while the engine lives.
func New(points []dataset.RawPoint, optFns ...Option) (*Engine, error) {
	opts := options{
		k:         DefaultK,
		threshold: DefaultConvergenceThreshold,
		maxIter:   DefaultMaxIterations,
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.k < MinK || opts.k > MaxK {
		return nil, &ErrInvalidK{K: opts.k}
	}
	if opts.rng == nil {
		opts.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{
		raw:       points,
		k:         opts.k,
		threshold: opts.threshold,
		maxIter:   opts.maxIter,
		rng:       opts.rng,
		logger:    opts.logger,
		metrics:   opts.metrics,
		pacer:     opts.pacer,
		state:     StatusIdle,
	}, nil
}

// SetK changes the cluster count for the next run. Accepted only while not
// running; returns ErrRunActive otherwise and *ErrInvalidK outside [2,10].
// The previous K is kept on any rejection.
func (e *Engine) SetK(k int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Running() {
		return ErrRunActive
	}
	if k < MinK || k > MaxK {
		return &ErrInvalidK{K: k}
	}

	e.k = k
	return nil
}

// Start begins a run: normalize the raw dataset, draw K initial centroids
// from it, assign every point to its nearest centroid and commit the
// iteration-0 snapshot. Rejections (active run, degenerate dataset, fewer
// points than K) leave all prior state untouched.
func (e *Engine) Start(ctx context.Context) (Snapshot, error) {
	began := time.Now()
	snap, subs, err := e.start(ctx)
	e.metrics.RecordStart(time.Since(began), err)
	e.logger.LogStart(ctx, e.K(), len(e.raw), err)
	if err != nil {
		return Snapshot{}, err
	}

	notify(subs, snap)
	return snap, nil
}

func (e *Engine) start(ctx context.Context) (Snapshot, []subscriber, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Snapshot{}, nil, err
	}
	if e.state.Running() {
		return Snapshot{}, nil, ErrRunActive
	}

	normalized, err := normalize.MinMax(e.raw)
	if err != nil {
		return Snapshot{}, nil, err
	}
	if len(normalized) < e.k {
		return Snapshot{}, nil, &ErrInsufficientData{Points: len(normalized), K: e.k}
	}

	centroids, err := kmeans.Seed(e.rng, normalized, e.k)
	if err != nil {
		return Snapshot{}, nil, err
	}

	e.normalized = normalized
	e.centroids = centroids
	e.labels = kmeans.Assign(normalized, centroids)
	e.iteration = 0
	e.lastShift = 0
	e.state = StatusRunning

	return e.snapshotLocked(), e.subscribersLocked(), nil
}

// Step commits one iteration: reassign every point to the current centroids,
// move each centroid to the mean of its group, and measure the maximum
// displacement. A displacement below the convergence threshold ends the run
// as StatusConverged; exhausting the iteration budget ends it as
// StatusIterationCapReached with the last computed centroids and labels kept.
// Returns ErrNotRunning without an active run.
func (e *Engine) Step(ctx context.Context) (Snapshot, error) {
	began := time.Now()
	snap, subs, err := e.step(ctx)
	e.metrics.RecordStep(snap.Iteration, snap.Shift, time.Since(began), err)
	if err != nil {
		return Snapshot{}, err
	}

	e.logger.LogStep(ctx, snap.Iteration, snap.Shift, snap.Status)
	notify(subs, snap)
	return snap, nil
}

func (e *Engine) step(ctx context.Context) (Snapshot, []subscriber, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Snapshot{}, nil, err
	}
	if !e.state.Running() {
		return Snapshot{}, nil, ErrNotRunning
	}

	labels := kmeans.Assign(e.normalized, e.centroids)
	next := kmeans.Update(e.normalized, labels, e.centroids)
	shift := kmeans.MaxShift(e.centroids, next)

	e.labels = labels
	e.centroids = next
	e.lastShift = shift

	if shift < e.threshold {
		e.state = StatusConverged
	} else {
		e.iteration++
		if e.iteration >= e.maxIter {
			e.state = StatusIterationCapReached
		}
	}

	return e.snapshotLocked(), e.subscribersLocked(), nil
}

// Stop ends an active run between steps, returning the engine to idle.
// The last committed centroids and labels stay readable via Snapshot.
// Stopping an idle or finished engine is a no-op reset to idle.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StatusIdle
}

// Run drives Step until the run ends, strictly sequentially. When a pacer
// is configured it waits on it between steps; pacing never changes the
// committed snapshots. Returns the terminal snapshot.
func (e *Engine) Run(ctx context.Context) (Snapshot, error) {
	began := time.Now()

	snap, err := e.Start(ctx)
	for err == nil && snap.Status.Running() {
		if e.pacer != nil {
			if err = e.pacer.Wait(ctx); err != nil {
				break
			}
		}
		snap, err = e.Step(ctx)
	}

	e.metrics.RecordRun(snap.Iteration, snap.Status == StatusConverged, time.Since(began), err)
	e.logger.LogRun(ctx, snap.Iteration, snap.Status, err)
	if err != nil {
		return Snapshot{}, err
	}

	return snap, nil
}

// Subscribe registers a callback invoked with every committed snapshot, in
// commit order, after the commit is visible. The returned cancel function
// unregisters it. Callbacks run on the stepping goroutine; keep them short
// or hand off.
func (e *Engine) Subscribe(fn func(Snapshot)) (cancel func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextSub
	e.nextSub++
	e.subs = append(e.subs, subscriber{id: id, fn: fn})

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns the last committed state. Safe at any time; before the
// first run it reports StatusIdle with unlabeled points and no centroids.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// State returns the current run status.
func (e *Engine) State() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// K returns the current cluster count.
func (e *Engine) K() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.k
}

// Iteration returns the number of committed update steps of the current or
// last run.
func (e *Engine) Iteration() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.iteration
}

func (e *Engine) snapshotLocked() Snapshot {
	points := make([]LabeledPoint, len(e.raw))
	for i, p := range e.raw {
		label := Unassigned
		if e.labels != nil {
			label = e.labels[i]
		}
		points[i] = LabeledPoint{
			StudyHours: p.StudyHours,
			SleepHours: p.SleepHours,
			Cluster:    label,
		}
	}

	var centroids []Centroid
	if e.centroids != nil {
		centroids = make([]Centroid, len(e.centroids))
		for i, c := range e.centroids {
			centroids[i] = Centroid{Cluster: c.Cluster, X: c.X, Y: c.Y}
		}
	}

	return Snapshot{
		Points:    points,
		Centroids: centroids,
		Iteration: e.iteration,
		Status:    e.state,
		Shift:     e.lastShift,
	}
}

func (e *Engine) subscribersLocked() []subscriber {
	if len(e.subs) == 0 {
		return nil
	}
	out := make([]subscriber, len(e.subs))
	copy(out, e.subs)
	return out
}

// notify runs outside the engine lock so callbacks may call back into the
// engine.
func notify(subs []subscriber, snap Snapshot) {
	for _, s := range subs {
		s.fn(snap)
	}
}
