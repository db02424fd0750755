package stats

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

// DurationStats total and mean trip duration, in seconds
type DurationStats struct {
	TotalSeconds decimal.Decimal `json:"total_seconds"`
	MeanSeconds  decimal.Decimal `json:"mean_seconds"`
}

// DurationTally sums trip durations
type DurationTally struct {
	accumulator *durationaccumulator.DurationAccumulator
}

func NewDurationTally() *DurationTally {
	return &DurationTally{
		accumulator: durationaccumulator.NewDurationAccumulator(),
	}
}

func (dt *DurationTally) Add(record *trip.TripRecord) {
	dt.accumulator.UpdateAccumulator(record.Duration)
}

func (dt *DurationTally) Merge(other *DurationTally) {
	dt.accumulator = dt.accumulator.Merge(other.accumulator)
}

// Result fails with ErrEmptyDataset when no duration was added
func (dt *DurationTally) Result() (DurationStats, error) {
	mean, err := dt.accumulator.GetAverageDuration()
	if err != nil {
		return DurationStats{}, fmt.Errorf("cannot compute duration stats: %w", err)
	}

	return DurationStats{
		TotalSeconds: dt.accumulator.TotalSeconds,
		MeanSeconds:  mean,
	}, nil
}

func ComputeDurationStats(view *dataset.Dataset) (DurationStats, error) {
	tally := NewDurationTally()
	for idx := range view.Records {
		tally.Add(&view.Records[idx])
	}
	return tally.Result()
}
