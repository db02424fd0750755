package stats

import (
	"fmt"

	"github.com/umahmood/haversine"

	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

// DistanceStats straight-line distance traveled between stations, in kilometers
// + MeasuredTrips: trips whose both stations are in the catalog
// + UnmatchedTrips: trips with at least one station missing from the catalog
type DistanceStats struct {
	TotalKm        float64 `json:"total_km"`
	MeanKm         float64 `json:"mean_km"`
	MeasuredTrips  int     `json:"measured_trips"`
	UnmatchedTrips int     `json:"unmatched_trips"`
}

// DistanceTally measures trips with the haversine formula. Distances are cached per station pair.
type DistanceTally struct {
	catalog        station.Catalog
	accumulator    *distanceaccumulator.DistanceAccumulator
	distancesCache map[trip.StationPair]float64
	unmatchedTrips int
}

func NewDistanceTally(catalog station.Catalog) *DistanceTally {
	return &DistanceTally{
		catalog:        catalog,
		accumulator:    distanceaccumulator.NewDistanceAccumulator(),
		distancesCache: make(map[trip.StationPair]float64),
	}
}

func (dt *DistanceTally) Add(record *trip.TripRecord) {
	pair := record.GetStationPair()
	distance, ok := dt.distancesCache[pair]
	if !ok {
		latStartStation, longStartStation, startFound := dt.catalog.GetCoordinates(pair.Start)
		latEndStation, longEndStation, endFound := dt.catalog.GetCoordinates(pair.End)
		if !startFound || !endFound {
			dt.unmatchedTrips += 1
			return
		}
		distance = calculateDistance(latStartStation, longStartStation, latEndStation, longEndStation)
		dt.distancesCache[pair] = distance
	}
	dt.accumulator.UpdateAccumulator(distance)
}

func (dt *DistanceTally) Merge(other *DistanceTally) {
	dt.accumulator = dt.accumulator.Merge(other.accumulator)
	dt.unmatchedTrips += other.unmatchedTrips
}

// Result fails with ErrEmptyDataset when no trip could be measured
func (dt *DistanceTally) Result() (DistanceStats, error) {
	mean, err := dt.accumulator.GetAverageDistance()
	if err != nil {
		return DistanceStats{UnmatchedTrips: dt.unmatchedTrips}, fmt.Errorf("cannot compute distance stats: %w", err)
	}

	return DistanceStats{
		TotalKm:        dt.accumulator.TotalDistance,
		MeanKm:         mean,
		MeasuredTrips:  dt.accumulator.Counter,
		UnmatchedTrips: dt.unmatchedTrips,
	}, nil
}

func ComputeDistanceStats(view *dataset.Dataset, catalog station.Catalog) (DistanceStats, error) {
	tally := NewDistanceTally(catalog)
	for idx := range view.Records {
		tally.Add(&view.Records[idx])
	}
	return tally.Result()
}

// calculateDistance returns the distance between two stations using haversine formula
func calculateDistance(latStartStation float64, longStartStation float64, latEndStation float64, longEndStation float64) float64 {
	station1 := haversine.Coord{Lat: latStartStation, Lon: longStartStation}
	station2 := haversine.Coord{Lat: latEndStation, Lon: longEndStation}

	_, km := haversine.Distance(station1, station2)
	return km
}
