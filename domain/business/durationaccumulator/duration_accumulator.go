package durationaccumulator

import (
	"fmt"

	"github.com/shopspring/decimal"

	dataErrors "bikeshare/domain/errors"
)

// DurationAccumulator collects trip durations without losing precision
// + Counter: amount of durations collected
// + TotalSeconds: exact sum of the durations collected
type DurationAccumulator struct {
	Counter      int             `json:"counter"`
	TotalSeconds decimal.Decimal `json:"total_seconds"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{
		TotalSeconds: decimal.Zero,
	}
}

func (da *DurationAccumulator) UpdateAccumulator(seconds decimal.Decimal) {
	da.Counter += 1
	da.TotalSeconds = da.TotalSeconds.Add(seconds)
}

func (da *DurationAccumulator) Merge(durationAccumulator2 *DurationAccumulator) *DurationAccumulator {
	return &DurationAccumulator{
		Counter:      da.Counter + durationAccumulator2.Counter,
		TotalSeconds: da.TotalSeconds.Add(durationAccumulator2.TotalSeconds),
	}
}

// GetAverageDuration returns TotalSeconds / Counter
func (da *DurationAccumulator) GetAverageDuration() (decimal.Decimal, error) {
	if da.Counter == 0 {
		return decimal.Zero, fmt.Errorf("%w: cannot get average duration, counter is zero", dataErrors.ErrEmptyDataset)
	}
	return da.TotalSeconds.Div(decimal.NewFromInt(int64(da.Counter))), nil
}
