// Package clusterstep provides a step-driven k-means engine for a
// two-feature dataset (weekly study hours vs. nightly sleep hours),
// built for animating convergence on a scatter plot.
//
// The engine is a free-standing state machine. It owns all clustering
// state (centroids, per-point assignments, iteration count) and commits
// exactly one iteration per Step call, so an external scheduler controls
// the cadence and a renderer consumes one immutable Snapshot per committed
// step. Shortening or removing the cadence never changes the result.
//
// # Quick Start
//
//	points, err := dataset.LoadCSV(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	eng, err := clusterstep.New(points, clusterstep.WithK(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for snap, err := range eng.Steps(ctx) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    render(snap) // e.g. plot.Scatter
//	}
//
// Runs are single-threaded by design: every step reads the centroids and
// labels committed by the immediately preceding step, guarded by one lock,
// so there is no stale-read window between assignment and update.
//
// # Lifecycle
//
// Idle -> Running -> Converged | IterationCapReached -> Idle.
//
// Converged means the maximum centroid displacement of the last step fell
// below the convergence threshold; IterationCapReached means the iteration
// budget ran out first. Both are "not running"; Snapshot.Shift carries the
// displacement so callers can tell them apart.
package clusterstep
