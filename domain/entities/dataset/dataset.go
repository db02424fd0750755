package dataset

import "bikeshare/domain/entities/trip"

// Schema describes which optional columns a dataset carries. It is decided once at load time
// and is shared by every view derived from the dataset.
type Schema struct {
	HasEndTime   bool `json:"has_end_time"`
	HasGender    bool `json:"has_gender"`
	HasBirthYear bool `json:"has_birth_year"`
}

// Dataset ordered sequence of trips of one city. Read-only after construction: filtering
// returns a new Dataset sharing the schema.
// + City: city which belongs the data
// + Schema: optional columns present in the source
// + Records: trips in source order
// + ExcludedRows: rows dropped at load time because of an unparseable start time or duration
type Dataset struct {
	City         string            `json:"city"`
	Schema       Schema            `json:"schema"`
	Records      []trip.TripRecord `json:"records"`
	ExcludedRows int               `json:"excluded_rows"`
}

func NewDataset(city string, schema Schema, records []trip.TripRecord) *Dataset {
	return &Dataset{
		City:    city,
		Schema:  schema,
		Records: records,
	}
}

// Len returns the amount of records
func (ds *Dataset) Len() int {
	return len(ds.Records)
}

// IsEmpty returns true if the dataset has no records
func (ds *Dataset) IsEmpty() bool {
	return len(ds.Records) == 0
}

// Subset returns a new Dataset with the records that match the predicate, in the same order
func (ds *Dataset) Subset(predicate func(record trip.TripRecord) bool) *Dataset {
	records := make([]trip.TripRecord, 0, len(ds.Records))
	for idx := range ds.Records {
		if predicate(ds.Records[idx]) {
			records = append(records, ds.Records[idx])
		}
	}

	return &Dataset{
		City:         ds.City,
		Schema:       ds.Schema,
		Records:      records,
		ExcludedRows: ds.ExcludedRows,
	}
}
