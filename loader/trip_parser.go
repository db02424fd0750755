package loader

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// parseTripRecord builds a TripRecord from a CSV row. Errors wrapping ErrInvalidTripData mean the row must be excluded
func parseTripRecord(row []string, indexes columnIndexes, schema dataset.Schema) (trip.TripRecord, error) {
	startTime, err := parseTimestamp(getField(row, indexes.StartTime))
	if err != nil {
		return trip.TripRecord{}, fmt.Errorf("%s %q: %w", dataErrors.ErrInvalidDate, getField(row, indexes.StartTime), dataErrors.ErrInvalidTripData)
	}

	durationStr := getField(row, indexes.Duration)
	duration, err := decimal.NewFromString(durationStr)
	if err != nil {
		return trip.TripRecord{}, fmt.Errorf("%s %q: %w", dataErrors.ErrInvalidDurationType, durationStr, dataErrors.ErrInvalidTripData)
	}

	if duration.IsNegative() {
		return trip.TripRecord{}, fmt.Errorf("%s: trip duration < 0: %w", dataErrors.ErrInvalidDurationType, dataErrors.ErrInvalidTripData)
	}

	record := trip.NewTripRecord(
		startTime,
		getField(row, indexes.StartStation),
		getField(row, indexes.EndStation),
		duration,
		getField(row, indexes.UserType),
	)

	if schema.HasEndTime {
		// end time is informative only, an invalid value does not exclude the row
		endTime, err := parseTimestamp(getField(row, indexes.EndTime))
		if err == nil {
			record.EndTime = endTime
		}
	}

	if schema.HasGender {
		record.Gender = getField(row, indexes.Gender)
	}

	if schema.HasBirthYear {
		birthYear, err := parseBirthYear(getField(row, indexes.BirthYear))
		if err == nil {
			record.BirthYear = &birthYear
		}
	}

	return record, nil
}

func getField(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func parseTimestamp(value string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var timestamp time.Time
		timestamp, err = time.Parse(layout, value)
		if err == nil {
			return timestamp, nil
		}
	}
	return time.Time{}, err
}

const (
	minBirthYear = 0
	maxBirthYear = 9999
)

// parseBirthYear accepts integers and integral floats, e.g. 1992 or 1992.0, between minBirthYear and maxBirthYear
func parseBirthYear(value string) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", dataErrors.ErrInvalidBirthYear)
	}

	yearFloat, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(yearFloat) || math.IsInf(yearFloat, 0) || yearFloat != math.Trunc(yearFloat) {
		return 0, fmt.Errorf("%w: %q", dataErrors.ErrInvalidBirthYear, value)
	}

	if yearFloat < minBirthYear || yearFloat > maxBirthYear {
		return 0, fmt.Errorf("%w: %q out of range", dataErrors.ErrInvalidBirthYear, value)
	}
	return int(yearFloat), nil
}
