package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

type tripOption func(record *trip.TripRecord)

func withStations(start string, end string) tripOption {
	return func(record *trip.TripRecord) {
		record.StartStation = start
		record.EndStation = end
	}
}

func withDuration(seconds string) tripOption {
	return func(record *trip.TripRecord) {
		record.Duration = decimal.RequireFromString(seconds)
	}
}

func withUser(userType string, gender string) tripOption {
	return func(record *trip.TripRecord) {
		record.UserType = userType
		record.Gender = gender
	}
}

func withBirthYear(year int) tripOption {
	return func(record *trip.TripRecord) {
		record.BirthYear = &year
	}
}

func newTrip(startTime time.Time, options ...tripOption) trip.TripRecord {
	record := trip.NewTripRecord(startTime, "Start", "End", decimal.NewFromInt(60), "Subscriber")
	for _, option := range options {
		option(&record)
	}
	return record
}

func at(month time.Month, day int, hour int) time.Time {
	return time.Date(2017, month, day, hour, 0, 0, 0, time.UTC)
}

func newView(schema dataset.Schema, records ...trip.TripRecord) *dataset.Dataset {
	return dataset.NewDataset("chicago", schema, records)
}
