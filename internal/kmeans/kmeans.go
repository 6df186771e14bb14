package kmeans

import (
	"fmt"
	"math"
	"math/rand"
)

// Point is a coordinate in normalized [0,1]x[0,1] feature space.
type Point struct {
	X float64
	Y float64
}

// Centroid is a cluster's representative coordinate in normalized space.
// Cluster is the fixed index in [0,k); centroids are relocated, never
// added or removed, for the lifetime of a run.
type Centroid struct {
	Cluster int
	X       float64
	Y       float64
}

// Unassigned is the label of a point before the first assignment step.
const Unassigned = -1

// Distance returns the euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Seed chooses k distinct points uniformly at random without replacement
// (a full permutation, then the first k) and turns them into centroids with
// cluster indices 0..k-1 in selection order.
//
// The random source is explicit so callers can reproduce exact draws.
func Seed(rng *rand.Rand, points []Point, k int) ([]Centroid, error) {
	if len(points) < k {
		return nil, fmt.Errorf("need at least %d points, have %d", k, len(points))
	}

	perm := rng.Perm(len(points))

	centroids := make([]Centroid, k)
	for i := 0; i < k; i++ {
		p := points[perm[i]]
		centroids[i] = Centroid{Cluster: i, X: p.X, Y: p.Y}
	}

	return centroids, nil
}

// Assign labels every point with the index of its nearest centroid.
// The scan keeps the first minimum, so ties break toward the lowest
// cluster index. Neither input is mutated; the labels are a fresh slice.
func Assign(points []Point, centroids []Centroid) []int {
	labels := make([]int, len(points))

	for i, p := range points {
		best := Unassigned
		minDist := math.MaxFloat64

		for j, c := range centroids {
			d := Distance(p, Point{X: c.X, Y: c.Y})
			if d < minDist {
				minDist = d
				best = j
			}
		}

		labels[i] = best
	}

	return labels
}

// Update moves each centroid to the arithmetic mean of its assigned points.
// A centroid with no assigned points keeps its old position and index.
// The result is a new slice of the same length and index order as old.
func Update(points []Point, labels []int, old []Centroid) []Centroid {
	k := len(old)
	sumX := make([]float64, k)
	sumY := make([]float64, k)
	counts := make([]int, k)

	for i, p := range points {
		cluster := labels[i]
		sumX[cluster] += p.X
		sumY[cluster] += p.Y
		counts[cluster]++
	}

	next := make([]Centroid, k)
	for j, c := range old {
		if counts[j] == 0 {
			// Empty cluster: the centroid stays where it is.
			next[j] = c
			continue
		}

		n := float64(counts[j])
		next[j] = Centroid{Cluster: c.Cluster, X: sumX[j] / n, Y: sumY[j] / n}
	}

	return next
}

// MaxShift returns the largest euclidean distance any centroid moved
// between two same-length, same-order centroid sets.
func MaxShift(old, next []Centroid) float64 {
	var max float64

	for i := range old {
		d := Distance(Point{X: old[i].X, Y: old[i].Y}, Point{X: next[i].X, Y: next[i].Y})
		if d > max {
			max = d
		}
	}

	return max
}
