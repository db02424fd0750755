package stats

import (
	"fmt"

	"bikeshare/domain/business/counter"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

// StationStats most popular stations and trip
// + PairTrips: number of trips of MostCommonPair
type StationStats struct {
	MostCommonStart string           `json:"most_common_start"`
	MostCommonEnd   string           `json:"most_common_end"`
	MostCommonPair  trip.StationPair `json:"most_common_pair"`
	PairTrips       int              `json:"pair_trips"`
}

// StationTally counts start stations, end stations and (start, end) pairs
type StationTally struct {
	startStations *counter.Counter[string]
	endStations   *counter.Counter[string]
	pairs         *counter.Counter[trip.StationPair]
}

func NewStationTally() *StationTally {
	return &StationTally{
		startStations: counter.NewOrderedCounter[string](),
		endStations:   counter.NewOrderedCounter[string](),
		pairs:         counter.NewCounter[trip.StationPair](trip.StationPair.Less),
	}
}

func (st *StationTally) Add(record *trip.TripRecord) {
	st.startStations.UpdateCounter(record.StartStation)
	st.endStations.UpdateCounter(record.EndStation)
	st.pairs.UpdateCounter(record.GetStationPair())
}

func (st *StationTally) Merge(other *StationTally) {
	st.startStations.Merge(other.startStations)
	st.endStations.Merge(other.endStations)
	st.pairs.Merge(other.pairs)
}

// Result returns the most used start station, end station and (start, end) pair.
// Ties go to the lexicographically first label or pair.
func (st *StationTally) Result() (StationStats, error) {
	if st.pairs.Len() == 0 {
		return StationStats{}, fmt.Errorf("%w: cannot compute station stats", dataErrors.ErrEmptyDataset)
	}

	start, _, _ := st.startStations.Mode()
	end, _, _ := st.endStations.Mode()
	pair, pairTrips, _ := st.pairs.Mode()

	return StationStats{
		MostCommonStart: start,
		MostCommonEnd:   end,
		MostCommonPair:  pair,
		PairTrips:       pairTrips,
	}, nil
}

func ComputeStationStats(view *dataset.Dataset) (StationStats, error) {
	tally := NewStationTally()
	for idx := range view.Records {
		tally.Add(&view.Records[idx])
	}
	return tally.Result()
}
