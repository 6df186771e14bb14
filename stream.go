package clusterstep

import (
	"context"
	"iter"
)

// Steps starts a run and returns an iterator over its committed snapshots,
// beginning with the iteration-0 snapshot and ending with the terminal one.
// The iterator drives steps strictly sequentially, pacing on the configured
// pacer if any.
//
// Breaking out of the loop early stops the run between steps; the engine is
// left idle with the last committed snapshot readable.
//
// Example:
//
//	for snap, err := range eng.Steps(ctx) {
//	    if err != nil { break }
//	    render(snap)
//	}
func (e *Engine) Steps(ctx context.Context) iter.Seq2[Snapshot, error] {
	return func(yield func(Snapshot, error) bool) {
		snap, err := e.Start(ctx)
		if err != nil {
			yield(Snapshot{}, err)
			return
		}
		if !yield(snap, nil) {
			e.Stop()
			return
		}

		for snap.Status.Running() {
			if e.pacer != nil {
				if err := e.pacer.Wait(ctx); err != nil {
					e.Stop()
					yield(Snapshot{}, err)
					return
				}
			}

			snap, err = e.Step(ctx)
			if err != nil {
				yield(Snapshot{}, err)
				return
			}
			if !yield(snap, nil) {
				if snap.Status.Running() {
					e.Stop()
				}
				return
			}
		}
	}
}
