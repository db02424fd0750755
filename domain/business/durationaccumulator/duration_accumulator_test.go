package durationaccumulator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataErrors "bikeshare/domain/errors"
)

func TestAccumulatorKeepsExactSum(t *testing.T) {
	accumulator := NewDurationAccumulator()
	for i := 0; i < 10; i++ {
		accumulator.UpdateAccumulator(decimal.RequireFromString("0.1"))
	}

	assert.Equal(t, 10, accumulator.Counter)
	assert.True(t, accumulator.TotalSeconds.Equal(decimal.NewFromInt(1)), "got %s", accumulator.TotalSeconds)
}

func TestGetAverageDuration(t *testing.T) {
	accumulator := NewDurationAccumulator()
	for _, seconds := range []int64{100, 200, 300} {
		accumulator.UpdateAccumulator(decimal.NewFromInt(seconds))
	}

	average, err := accumulator.GetAverageDuration()
	require.NoError(t, err)
	assert.True(t, average.Equal(decimal.NewFromInt(200)))
}

func TestGetAverageDurationWithoutData(t *testing.T) {
	_, err := NewDurationAccumulator().GetAverageDuration()
	assert.ErrorIs(t, err, dataErrors.ErrEmptyDataset)
}

func TestMerge(t *testing.T) {
	first := NewDurationAccumulator()
	first.UpdateAccumulator(decimal.NewFromInt(10))
	second := NewDurationAccumulator()
	second.UpdateAccumulator(decimal.NewFromInt(20))
	second.UpdateAccumulator(decimal.NewFromInt(30))

	merged := first.Merge(second)
	assert.Equal(t, 3, merged.Counter)
	assert.True(t, merged.TotalSeconds.Equal(decimal.NewFromInt(60)))
}
