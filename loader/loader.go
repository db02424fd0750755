package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/dataset"
	dataErrors "bikeshare/domain/errors"
)

const loaderStr = "loader"

// Loader reads trip datasets. Rows with an unparseable start time or trip duration are
// excluded from the dataset instead of failing the whole load: availability is preferred
// over strictness. The amount of excluded rows is kept in Dataset.ExcludedRows.
type Loader struct {
	columns Columns
}

func NewLoader(columns Columns) *Loader {
	return &Loader{
		columns: columns.withDefaults(),
	}
}

// Load reads the trips file at path
func (l *Loader) Load(path string, city string) (*dataset.Dataset, error) {
	dataFile, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", dataErrors.ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("[component: %s][city: %s] error closing %s: %s", loaderStr, city, path, err.Error())
		}
	}(dataFile)

	return l.LoadFromReader(dataFile, city)
}

// LoadFromReader reads a trips CSV, header included, from reader
func (l *Loader) LoadFromReader(reader io.Reader, city string) (*dataset.Dataset, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", dataErrors.ErrSchema)
		}
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	indexes, schema, err := l.resolveColumns(header)
	if err != nil {
		return nil, err
	}

	ds := dataset.NewDataset(city, schema, nil)
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("error reading row after %v trips: %w", ds.Len()+ds.ExcludedRows, err)
			}
			log.Debugf("[component: %s][city: %s][line: %v] malformed row: %s", loaderStr, city, parseErr.StartLine, err.Error())
			ds.ExcludedRows += 1
			continue
		}

		lineNumber, _ := csvReader.FieldPos(0)
		// trips never span lines: a line break inside a field comes from an unterminated quote
		// that swallowed the following rows
		if spansLines(row) {
			return nil, fmt.Errorf("%w: unterminated quoted field in record starting at line %v", dataErrors.ErrSchema, lineNumber)
		}

		record, err := parseTripRecord(row, indexes, schema)
		if err != nil {
			if errors.Is(err, dataErrors.ErrInvalidTripData) {
				log.Debugf("[component: %s][city: %s][line: %v] row excluded: %s", loaderStr, city, lineNumber, err.Error())
				ds.ExcludedRows += 1
				continue
			}
			return nil, err
		}
		ds.Records = append(ds.Records, record)
	}

	log.Infof("[component: %s][city: %s][status: OK] %v trips loaded, %v rows excluded", loaderStr, city, ds.Len(), ds.ExcludedRows)
	return ds, nil
}

// resolveColumns finds the position of each column in the header and decides which optional columns exist
func (l *Loader) resolveColumns(header []string) (columnIndexes, dataset.Schema, error) {
	positions := make(map[string]int, len(header))
	for idx, name := range header {
		name = normalizeColumnName(name)
		if _, ok := positions[name]; !ok {
			positions[name] = idx
		}
	}

	position := func(name string) int {
		idx, ok := positions[name]
		if !ok {
			return -1
		}
		return idx
	}

	indexes := columnIndexes{
		StartTime:    position(l.columns.StartTime),
		EndTime:      position(l.columns.EndTime),
		StartStation: position(l.columns.StartStation),
		EndStation:   position(l.columns.EndStation),
		Duration:     position(l.columns.Duration),
		UserType:     position(l.columns.UserType),
		Gender:       position(l.columns.Gender),
		BirthYear:    position(l.columns.BirthYear),
	}

	var missingColumns []string
	required := []struct {
		name  string
		index int
	}{
		{l.columns.StartTime, indexes.StartTime},
		{l.columns.StartStation, indexes.StartStation},
		{l.columns.EndStation, indexes.EndStation},
		{l.columns.Duration, indexes.Duration},
		{l.columns.UserType, indexes.UserType},
	}
	for _, column := range required {
		if column.index < 0 {
			missingColumns = append(missingColumns, column.name)
		}
	}

	if len(missingColumns) > 0 {
		return columnIndexes{}, dataset.Schema{}, fmt.Errorf("%w: missing required columns %v", dataErrors.ErrSchema, missingColumns)
	}

	schema := dataset.Schema{
		HasEndTime:   indexes.EndTime >= 0,
		HasGender:    indexes.Gender >= 0,
		HasBirthYear: indexes.BirthYear >= 0,
	}
	return indexes, schema, nil
}

// normalizeColumnName removes surrounding spaces and the UTF-8 byte order mark
func normalizeColumnName(name string) string {
	return strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
}

func spansLines(row []string) bool {
	for _, field := range row {
		if strings.ContainsAny(field, "\r\n") {
			return true
		}
	}
	return false
}
