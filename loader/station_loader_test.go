package loader

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataErrors "bikeshare/domain/errors"
)

func TestLoadStationsFromReader(t *testing.T) {
	content := `Name,Latitude,Longitude
Wood St & Hubbard St,41.889899,-87.671473
Broken Station,north,-87.6
Damen Ave & Chicago Ave,41.895769,-87.677432
`
	catalog, err := LoadStationsFromReader(strings.NewReader(content), "chicago")
	require.NoError(t, err)

	assert.Len(t, catalog, 2)
	latitude, longitude, ok := catalog.GetCoordinates("Wood St & Hubbard St")
	require.True(t, ok)
	assert.InDelta(t, 41.889899, latitude, 1e-9)
	assert.InDelta(t, -87.671473, longitude, 1e-9)

	_, _, ok = catalog.GetCoordinates("Broken Station")
	assert.False(t, ok)
}

func TestLoadStationsFromReaderQuotes(t *testing.T) {
	content := `Name,Latitude,Longitude
Joe's "Corner",41.8,-87.6
"Clark St, Lake St",41.9,-87.7
`
	catalog, err := LoadStationsFromReader(strings.NewReader(content), "chicago")
	require.NoError(t, err)
	assert.Contains(t, catalog, `Joe's "Corner"`)
	assert.Contains(t, catalog, "Clark St, Lake St")

	unterminated := "Name,Latitude,Longitude\n\"Clark St,41.9,-87.7\nA,41.8,-87.6\n"
	_, err = LoadStationsFromReader(strings.NewReader(unterminated), "chicago")
	assert.ErrorIs(t, err, dataErrors.ErrSchema)
}

func TestLoadStationsMissingColumns(t *testing.T) {
	_, err := LoadStationsFromReader(strings.NewReader("Name,Lat\nA,1\n"), "chicago")
	assert.ErrorIs(t, err, dataErrors.ErrSchema)
}

func TestLoadStationsFileNotFound(t *testing.T) {
	_, err := LoadStations(filepath.Join(t.TempDir(), "stations.csv"), "chicago")
	assert.ErrorIs(t, err, dataErrors.ErrDatasetNotFound)
}
