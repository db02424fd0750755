package errors

import "errors"

// Run-level errors, surfaced to the caller
var (
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrSchema          = errors.New("invalid dataset schema")
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrEmptyDataset    = errors.New("empty dataset")
)

// Row-level errors. A row failing with one of these is excluded from the dataset, never escalated.
var (
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrInvalidBirthYear    = errors.New("invalid birth year")
)
