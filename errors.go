package clusterstep

import (
	"errors"
	"fmt"
)

var (
	// ErrRunActive is returned when an operation requires an idle engine
	// but a run is in progress.
	ErrRunActive = errors.New("run already active")

	// ErrNotRunning is returned when Step is called without an active run.
	ErrNotRunning = errors.New("no active run")
)

// ErrInvalidK indicates a cluster count outside the accepted [2,10] range.
type ErrInvalidK struct {
	K int
}

func (e *ErrInvalidK) Error() string {
	return fmt.Sprintf("invalid k: %d (must be in [2,10])", e.K)
}

// ErrInsufficientData indicates a dataset with fewer points than clusters,
// which makes sampling k distinct initial centroids impossible.
type ErrInsufficientData struct {
	Points int
	K      int
}

func (e *ErrInsufficientData) Error() string {
	return fmt.Sprintf("insufficient data: %d points for k=%d", e.Points, e.K)
}
