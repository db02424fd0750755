package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
)

const (
	stationNameColumn      = "Name"
	stationLatitudeColumn  = "Latitude"
	stationLongitudeColumn = "Longitude"
)

// LoadStations reads a stations file with the columns Name, Latitude and Longitude.
// Stations with invalid coordinates are skipped.
func LoadStations(path string, city string) (station.Catalog, error) {
	stationsFile, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", dataErrors.ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer stationsFile.Close()

	return LoadStationsFromReader(stationsFile, city)
}

func LoadStationsFromReader(reader io.Reader, city string) (station.Catalog, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing stations header", dataErrors.ErrSchema)
	}

	nameIdx, latitudeIdx, longitudeIdx := -1, -1, -1
	for idx, column := range header {
		switch normalizeColumnName(column) {
		case stationNameColumn:
			nameIdx = idx
		case stationLatitudeColumn:
			latitudeIdx = idx
		case stationLongitudeColumn:
			longitudeIdx = idx
		}
	}

	if nameIdx < 0 || latitudeIdx < 0 || longitudeIdx < 0 {
		return nil, fmt.Errorf("%w: stations file needs %s, %s and %s columns", dataErrors.ErrSchema, stationNameColumn, stationLatitudeColumn, stationLongitudeColumn)
	}

	catalog := make(station.Catalog)
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading stations file: %w", err)
		}
		if spansLines(row) {
			line, _ := csvReader.FieldPos(0)
			return nil, fmt.Errorf("%w: unterminated quoted field in station starting at line %v", dataErrors.ErrSchema, line)
		}

		name := getField(row, nameIdx)
		latitude, errLat := strconv.ParseFloat(getField(row, latitudeIdx), 64)
		longitude, errLong := strconv.ParseFloat(getField(row, longitudeIdx), 64)
		if name == "" || errLat != nil || errLong != nil {
			log.Debugf("[component: %s][city: %s] invalid station data: %v", loaderStr, city, row)
			continue
		}

		catalog[name] = station.StationData{
			City:      city,
			Name:      name,
			Latitude:  latitude,
			Longitude: longitude,
		}
	}

	log.Infof("[component: %s][city: %s][status: OK] %v stations loaded", loaderStr, city, len(catalog))
	return catalog, nil
}
