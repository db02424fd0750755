package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
)

func newCatalog() station.Catalog {
	return station.Catalog{
		"A": {City: "chicago", Name: "A", Latitude: 0, Longitude: 0},
		"B": {City: "chicago", Name: "B", Latitude: 0, Longitude: 1},
	}
}

func TestComputeDistanceStats(t *testing.T) {
	view := newView(dataset.Schema{},
		newTrip(at(time.January, 2, 8), withStations("A", "B")),
		newTrip(at(time.January, 2, 8), withStations("A", "A")),
		newTrip(at(time.January, 2, 8), withStations("B", "A")),
		newTrip(at(time.January, 2, 8), withStations("A", "Unknown")),
	)

	distanceStats, err := ComputeDistanceStats(view, newCatalog())
	require.NoError(t, err)

	// one degree of longitude on the equator
	oneDegreeKm := calculateDistance(0, 0, 0, 1)
	assert.InDelta(t, 111.19, oneDegreeKm, 0.1)
	assert.Equal(t, 3, distanceStats.MeasuredTrips)
	assert.Equal(t, 1, distanceStats.UnmatchedTrips)
	assert.InDelta(t, 2*oneDegreeKm, distanceStats.TotalKm, 1e-6)
	assert.InDelta(t, 2*oneDegreeKm/3, distanceStats.MeanKm, 1e-6)
}

func TestComputeDistanceStatsWithoutKnownStations(t *testing.T) {
	view := newView(dataset.Schema{}, newTrip(at(time.January, 2, 8), withStations("X", "Y")))

	distanceStats, err := ComputeDistanceStats(view, newCatalog())
	assert.ErrorIs(t, err, dataErrors.ErrEmptyDataset)
	assert.Equal(t, 1, distanceStats.UnmatchedTrips)
}
