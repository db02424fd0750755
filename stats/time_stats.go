package stats

import (
	"fmt"

	"bikeshare/domain/business/counter"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

// TimeStats most frequent times of travel
type TimeStats struct {
	MostCommonMonth int    `json:"most_common_month"`
	MostCommonDay   string `json:"most_common_day"`
	MostCommonHour  int    `json:"most_common_hour"`
}

// TimeTally counts months, days of week and start hours of a group of trips
type TimeTally struct {
	months *counter.Counter[int]
	days   *counter.Counter[string]
	hours  *counter.Counter[int]
}

func NewTimeTally() *TimeTally {
	return &TimeTally{
		months: counter.NewOrderedCounter[int](),
		days:   counter.NewOrderedCounter[string](),
		hours:  counter.NewOrderedCounter[int](),
	}
}

func (tt *TimeTally) Add(record *trip.TripRecord) {
	tt.months.UpdateCounter(record.Month)
	tt.days.UpdateCounter(record.DayOfWeek)
	tt.hours.UpdateCounter(record.Hour)
}

func (tt *TimeTally) Merge(other *TimeTally) {
	tt.months.Merge(other.months)
	tt.days.Merge(other.days)
	tt.hours.Merge(other.hours)
}

// Result returns the mode of month, day of week and start hour. Ties go to the lowest value.
func (tt *TimeTally) Result() (TimeStats, error) {
	if tt.months.Len() == 0 {
		return TimeStats{}, fmt.Errorf("%w: cannot compute time stats", dataErrors.ErrEmptyDataset)
	}

	month, _, _ := tt.months.Mode()
	day, _, _ := tt.days.Mode()
	hour, _, _ := tt.hours.Mode()

	return TimeStats{
		MostCommonMonth: month,
		MostCommonDay:   day,
		MostCommonHour:  hour,
	}, nil
}

func ComputeTimeStats(view *dataset.Dataset) (TimeStats, error) {
	tally := NewTimeTally()
	for idx := range view.Records {
		tally.Add(&view.Records[idx])
	}
	return tally.Result()
}
