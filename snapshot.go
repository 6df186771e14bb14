package clusterstep

// Status is the externally observable run state.
type Status int

const (
	// StatusIdle means no run is active and no run has finished since the
	// last reset.
	StatusIdle Status = iota
	// StatusRunning means a run is in progress and Step will be accepted.
	StatusRunning
	// StatusConverged means the last step's maximum centroid displacement
	// fell below the convergence threshold.
	StatusConverged
	// StatusIterationCapReached means the iteration budget was exhausted
	// before convergence. The last computed centroids and labels are kept.
	StatusIterationCapReached
)

// Running reports whether the engine accepts Step calls.
func (s Status) Running() bool { return s == StatusRunning }

// Done reports whether a run finished, converged or not.
func (s Status) Done() bool {
	return s == StatusConverged || s == StatusIterationCapReached
}

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusConverged:
		return "converged"
	case StatusIterationCapReached:
		return "iteration cap reached"
	default:
		return "unknown"
	}
}

// Unassigned is the cluster label of a point before the first assignment.
const Unassigned = -1

// LabeledPoint pairs a raw record's coordinates with its current cluster
// label. Labels are positional: Points[i] in a Snapshot corresponds to the
// i-th record of the dataset the engine was built with.
type LabeledPoint struct {
	StudyHours float64
	SleepHours float64
	Cluster    int
}

// Centroid is a cluster's representative coordinate in normalized [0,1]
// space, with its fixed cluster index.
type Centroid struct {
	Cluster int
	X       float64
	Y       float64
}

// Snapshot is the committed output of one step: everything a renderer
// needs. Snapshots are value copies; the engine never mutates one after
// handing it out.
type Snapshot struct {
	// Points holds every dataset record with its current label
	// (Unassigned before the first assignment).
	Points []LabeledPoint
	// Centroids holds the K centroids in cluster-index order. Nil before
	// the first run.
	Centroids []Centroid
	// Iteration is the number of committed update steps (0 right after
	// Start, before any centroid has moved).
	Iteration int
	// Status is the run state at commit time.
	Status Status
	// Shift is the maximum centroid displacement of the step that produced
	// this snapshot (0 for the iteration-0 snapshot). Together with Status
	// it distinguishes true convergence from budget exhaustion.
	Shift float64
}
