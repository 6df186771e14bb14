package dataset

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clusterstep/dataset/source"
)

func TestLoadCSV(t *testing.T) {
	csv := "study_hours,sleep_hours\n10,4\n30,9\n15.5,6.5\n"

	points, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, RawPoint{StudyHours: 10, SleepHours: 4}, points[0])
	assert.Equal(t, RawPoint{StudyHours: 30, SleepHours: 9}, points[1])
	assert.Equal(t, RawPoint{StudyHours: 15.5, SleepHours: 6.5}, points[2])
}

func TestLoadCSV_Failures(t *testing.T) {
	cases := []struct {
		name string
		csv  string
	}{
		{"Empty", ""},
		{"HeaderOnly", "study_hours,sleep_hours\n"},
		{"NonNumericCell", "study_hours,sleep_hours\n10,four\n"},
		{"NegativeValue", "study_hours,sleep_hours\n-1,4\n"},
		{"WrongColumnCount", "study_hours,sleep_hours\n10,4,2\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tc.csv))
			var dl *ErrDataLoad
			require.ErrorAs(t, err, &dl)
			assert.NotNil(t, dl.Unwrap())
		})
	}
}

func TestLoad_FromBytesSource(t *testing.T) {
	ctx := context.Background()
	src := source.Bytes([]byte("study_hours,sleep_hours\n10,4\n"))

	points, err := Load(ctx, src)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, RawPoint{StudyHours: 10, SleepHours: 4}, points[0])
}

func TestLoad_FetchFailure(t *testing.T) {
	ctx := context.Background()

	_, err := Load(ctx, source.File("/nonexistent/dataset.csv"))
	var dl *ErrDataLoad
	require.ErrorAs(t, err, &dl)
	assert.ErrorIs(t, err, source.ErrNotFound)
}
