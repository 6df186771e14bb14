package kmeans

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	points := []Point{{0, 0}, {0.2, 0.2}, {0.8, 0.8}, {1, 1}}
	rng := rand.New(rand.NewSource(42))

	centroids, err := Seed(rng, points, 2)
	require.NoError(t, err)
	require.Len(t, centroids, 2)

	// Indices are assigned in selection order and the draws are distinct points.
	assert.Equal(t, 0, centroids[0].Cluster)
	assert.Equal(t, 1, centroids[1].Cluster)
	assert.NotEqual(t, centroids[0].X+centroids[0].Y, centroids[1].X+centroids[1].Y)
}

func TestSeed_Deterministic(t *testing.T) {
	points := []Point{{0, 0}, {0.2, 0.2}, {0.8, 0.8}, {1, 1}}

	a, err := Seed(rand.New(rand.NewSource(7)), points, 3)
	require.NoError(t, err)
	b, err := Seed(rand.New(rand.NewSource(7)), points, 3)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSeed_InsufficientPoints(t *testing.T) {
	_, err := Seed(rand.New(rand.NewSource(1)), []Point{{0, 0}}, 2)
	assert.Error(t, err)
}

func TestAssign(t *testing.T) {
	points := []Point{{0.1, 0.1}, {0.9, 0.9}, {0.2, 0.0}}
	centroids := []Centroid{
		{Cluster: 0, X: 0, Y: 0},
		{Cluster: 1, X: 1, Y: 1},
	}

	labels := Assign(points, centroids)
	assert.Equal(t, []int{0, 1, 0}, labels)
}

func TestAssign_TieBreaksToFirst(t *testing.T) {
	// Equidistant from both centroids: linear scan keeps the first minimum.
	points := []Point{{0.5, 0.5}}
	centroids := []Centroid{
		{Cluster: 0, X: 0, Y: 0},
		{Cluster: 1, X: 1, Y: 1},
	}

	labels := Assign(points, centroids)
	assert.Equal(t, []int{0}, labels)
}

func TestAssign_Pure(t *testing.T) {
	points := []Point{{0.1, 0.1}, {0.9, 0.9}}
	centroids := []Centroid{
		{Cluster: 0, X: 0, Y: 0},
		{Cluster: 1, X: 1, Y: 1},
	}

	first := Assign(points, centroids)
	second := Assign(points, centroids)

	assert.Equal(t, first, second)
	assert.Equal(t, []Centroid{{0, 0, 0}, {1, 1, 1}}, centroids)
}

func TestUpdate(t *testing.T) {
	points := []Point{{0, 0}, {0.2, 0.2}, {0.8, 0.8}, {1, 1}}
	labels := []int{0, 0, 1, 1}
	old := []Centroid{
		{Cluster: 0, X: 0, Y: 0},
		{Cluster: 1, X: 1, Y: 1},
	}

	next := Update(points, labels, old)
	require.Len(t, next, 2)

	assert.InDelta(t, 0.1, next[0].X, 1e-12)
	assert.InDelta(t, 0.1, next[0].Y, 1e-12)
	assert.InDelta(t, 0.9, next[1].X, 1e-12)
	assert.InDelta(t, 0.9, next[1].Y, 1e-12)
}

func TestUpdate_EmptyClusterUnchanged(t *testing.T) {
	points := []Point{{0, 0}, {0.1, 0.1}}
	labels := []int{0, 0} // cluster 1 gets nothing
	old := []Centroid{
		{Cluster: 0, X: 0, Y: 0},
		{Cluster: 1, X: 0.7, Y: 0.7},
	}

	next := Update(points, labels, old)
	assert.Equal(t, old[1], next[1])
}

func TestMaxShift(t *testing.T) {
	old := []Centroid{
		{Cluster: 0, X: 0, Y: 0},
		{Cluster: 1, X: 1, Y: 1},
	}
	next := []Centroid{
		{Cluster: 0, X: 0, Y: 0.5},
		{Cluster: 1, X: 1, Y: 1},
	}

	assert.InDelta(t, 0.5, MaxShift(old, next), 1e-12)
	assert.Zero(t, MaxShift(old, old))
}
