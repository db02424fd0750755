package trip

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripRecord struct that contains a single bike trip. Once loaded it must not change.
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends, zero when the dataset does not carry it
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: kind of user, e.g. Subscriber or Customer
// + Gender: gender of the user, empty when unknown
// + BirthYear: birth year of the user, nil when unknown
// + Month, DayOfWeek, Hour: derived from StartTime at load time
type TripRecord struct {
	StartTime    time.Time       `json:"start_time"`
	EndTime      time.Time       `json:"end_time,omitempty"`
	StartStation string          `json:"start_station"`
	EndStation   string          `json:"end_station"`
	Duration     decimal.Decimal `json:"duration"`
	UserType     string          `json:"user_type"`
	Gender       string          `json:"gender,omitempty"`
	BirthYear    *int            `json:"birth_year,omitempty"`
	Month        int             `json:"month"`
	DayOfWeek    string          `json:"day_of_week"`
	Hour         int             `json:"hour"`
}

// NewTripRecord returns a TripRecord with the temporal fields derived from startTime
func NewTripRecord(startTime time.Time, startStation string, endStation string, duration decimal.Decimal, userType string) TripRecord {
	return TripRecord{
		StartTime:    startTime,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
		Month:        int(startTime.Month()),
		DayOfWeek:    startTime.Weekday().String(),
		Hour:         startTime.Hour(),
	}
}

// HasBirthYear returns true if the record carries a valid birth year
func (tr TripRecord) HasBirthYear() bool {
	return tr.BirthYear != nil
}

// GetStationPair returns the (start, end) pair of the trip
func (tr TripRecord) GetStationPair() StationPair {
	return StationPair{Start: tr.StartStation, End: tr.EndStation}
}

// StationPair is the composite key of a trip route
type StationPair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Less sorts pairs lexicographically on (Start, End)
func (sp StationPair) Less(other StationPair) bool {
	if sp.Start != other.Start {
		return sp.Start < other.Start
	}
	return sp.End < other.End
}

func (sp StationPair) String() string {
	return sp.Start + " -> " + sp.End
}
