package pagination

import "bikeshare/domain/entities/trip"

// DefaultPageSize rows shown per request of raw data
const DefaultPageSize = 5

// Paginator walks the records of a view page by page
type Paginator struct {
	records  []trip.TripRecord
	pageSize int
	offset   int
}

// NewPaginator returns a Paginator over records. A non-positive pageSize means DefaultPageSize
func NewPaginator(records []trip.TripRecord, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{
		records:  records,
		pageSize: pageSize,
	}
}

// Next returns the next page and false when there are no more records
func (p *Paginator) Next() ([]trip.TripRecord, bool) {
	if p.offset >= len(p.records) {
		return nil, false
	}

	upperLimit := min(p.offset+p.pageSize, len(p.records))
	page := p.records[p.offset:upperLimit]
	p.offset = upperLimit
	return page, true
}

// HasNext returns true if Next would return a page
func (p *Paginator) HasNext() bool {
	return p.offset < len(p.records)
}

// Offset returns the index of the first record of the next page
func (p *Paginator) Offset() int {
	return p.offset
}
