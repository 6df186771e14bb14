package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clusterstep/dataset"
)

func TestMinMax(t *testing.T) {
	points := []dataset.RawPoint{
		{StudyHours: 10, SleepHours: 4},
		{StudyHours: 30, SleepHours: 9},
		{StudyHours: 15, SleepHours: 6},
	}

	normalized, err := MinMax(points)
	require.NoError(t, err)
	require.Len(t, normalized, len(points))

	// Positional correspondence and bounds.
	for i, p := range normalized {
		assert.GreaterOrEqual(t, p.X, 0.0, "point %d", i)
		assert.LessOrEqual(t, p.X, 1.0, "point %d", i)
		assert.GreaterOrEqual(t, p.Y, 0.0, "point %d", i)
		assert.LessOrEqual(t, p.Y, 1.0, "point %d", i)
	}

	// The maximum of each feature normalizes to exactly 1.
	assert.Equal(t, 1.0, normalized[1].X)
	assert.Equal(t, 1.0, normalized[1].Y)

	assert.InDelta(t, 10.0/30.0, normalized[0].X, 1e-12)
	assert.InDelta(t, 4.0/9.0, normalized[0].Y, 1e-12)
}

func TestMinMax_Pure(t *testing.T) {
	points := []dataset.RawPoint{
		{StudyHours: 10, SleepHours: 4},
		{StudyHours: 30, SleepHours: 9},
	}

	_, err := MinMax(points)
	require.NoError(t, err)

	assert.Equal(t, dataset.RawPoint{StudyHours: 10, SleepHours: 4}, points[0])
}

func TestMinMax_DegenerateFeature(t *testing.T) {
	t.Run("ZeroStudyColumn", func(t *testing.T) {
		_, err := MinMax([]dataset.RawPoint{
			{StudyHours: 0, SleepHours: 8},
			{StudyHours: 0, SleepHours: 6},
		})
		var df *ErrDegenerateFeature
		require.ErrorAs(t, err, &df)
		assert.Equal(t, "study_hours", df.Feature)
	})

	t.Run("ZeroSleepColumn", func(t *testing.T) {
		_, err := MinMax([]dataset.RawPoint{
			{StudyHours: 10, SleepHours: 0},
			{StudyHours: 20, SleepHours: 0},
		})
		var df *ErrDegenerateFeature
		require.ErrorAs(t, err, &df)
		assert.Equal(t, "sleep_hours", df.Feature)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := MinMax(nil)
		var df *ErrDegenerateFeature
		assert.ErrorAs(t, err, &df)
	})
}

func TestMaxima(t *testing.T) {
	maxStudy, maxSleep := Maxima([]dataset.RawPoint{
		{StudyHours: 10, SleepHours: 9},
		{StudyHours: 30, SleepHours: 4},
	})

	assert.Equal(t, 30.0, maxStudy)
	assert.Equal(t, 9.0, maxSleep)
}
