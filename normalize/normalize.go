// Package normalize converts raw records into the bounded [0,1]x[0,1]
// coordinate space the clustering math operates in.
package normalize

import (
	"fmt"

	"github.com/hupe1980/clusterstep/dataset"
	"github.com/hupe1980/clusterstep/internal/kmeans"
)

// ErrDegenerateFeature indicates a feature column whose maximum is zero,
// which makes min-max scaling ill-defined. The run is rejected before any
// state mutates.
type ErrDegenerateFeature struct {
	Feature string
}

func (e *ErrDegenerateFeature) Error() string {
	return fmt.Sprintf("degenerate dataset: feature %q has zero maximum", e.Feature)
}

// MinMax scales both features into [0,1] by dividing each value by that
// feature's dataset-wide maximum (zero-floor min-max scaling: the minimum
// is assumed to be 0, only the maximum matters).
//
// The output is positional: point i corresponds to points[i]. Pure function
// of the input; the raw records are never mutated.
func MinMax(points []dataset.RawPoint) ([]kmeans.Point, error) {
	if len(points) == 0 {
		return nil, &ErrDegenerateFeature{Feature: "study_hours"}
	}

	var maxStudy, maxSleep float64
	for _, p := range points {
		if p.StudyHours > maxStudy {
			maxStudy = p.StudyHours
		}
		if p.SleepHours > maxSleep {
			maxSleep = p.SleepHours
		}
	}

	if maxStudy == 0 {
		return nil, &ErrDegenerateFeature{Feature: "study_hours"}
	}
	if maxSleep == 0 {
		return nil, &ErrDegenerateFeature{Feature: "sleep_hours"}
	}

	normalized := make([]kmeans.Point, len(points))
	for i, p := range points {
		normalized[i] = kmeans.Point{
			X: p.StudyHours / maxStudy,
			Y: p.SleepHours / maxSleep,
		}
	}

	return normalized, nil
}

// Maxima returns the per-feature maxima of a raw dataset. Callers can use
// it to place normalized coordinates back into raw feature space.
func Maxima(points []dataset.RawPoint) (maxStudy, maxSleep float64) {
	for _, p := range points {
		if p.StudyHours > maxStudy {
			maxStudy = p.StudyHours
		}
		if p.SleepHours > maxSleep {
			maxSleep = p.SleepHours
		}
	}
	return maxStudy, maxSleep
}
