package filter

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

const filterStr = "filter"

// All disables a filter
const All = "all"

var (
	// Months only january to june: the datasets do not cover the rest of the year
	Months = []string{"january", "february", "march", "april", "may", "june"}
	Days   = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// ParseMonth returns the 1-based month number of name, or 0 when name is "all"
func ParseMonth(name string) (int, error) {
	name = normalize(name)
	if name == All {
		return 0, nil
	}

	for idx, month := range Months {
		if month == name {
			return idx + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: invalid month %q", dataErrors.ErrInvalidFilter, name)
}

// ParseDay returns the canonical weekday name of name (e.g. "Monday"), or "" when name is "all"
func ParseDay(name string) (string, error) {
	name = normalize(name)
	if name == All {
		return "", nil
	}

	for _, day := range Days {
		if day == name {
			return strings.ToUpper(day[:1]) + day[1:], nil
		}
	}
	return "", fmt.Errorf("%w: invalid day %q", dataErrors.ErrInvalidFilter, name)
}

// Filter returns the trips of ds that started in month and on day. Both filters accept "all".
// ds is never modified and an empty result is not an error.
func Filter(ds *dataset.Dataset, month string, day string) (*dataset.Dataset, error) {
	monthNumber, err := ParseMonth(month)
	if err != nil {
		log.Debugf("[component: %s][city: %s][method: Filter] %s", filterStr, ds.City, err.Error())
		return nil, err
	}

	dayName, err := ParseDay(day)
	if err != nil {
		log.Debugf("[component: %s][city: %s][method: Filter] %s", filterStr, ds.City, err.Error())
		return nil, err
	}

	view := ds.Subset(func(record trip.TripRecord) bool {
		if monthNumber != 0 && record.Month != monthNumber {
			return false
		}
		if dayName != "" && record.DayOfWeek != dayName {
			return false
		}
		return true
	})

	log.Debugf("[component: %s][city: %s][method: Filter] month: %s, day: %s, %v of %v trips selected", filterStr, ds.City, normalize(month), normalize(day), view.Len(), ds.Len())
	return view, nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
