package report

import (
	"time"

	"bikeshare/domain/entities"
	"bikeshare/stats"
)

// Section computation time of one group of statistics
type Section struct {
	Name    string        `json:"name"`
	Elapsed time.Duration `json:"elapsed"`
}

// Report contains every statistic computed over a filtered view
// + Metadata: city and filters of the view
// + Trips: amount of trips of the view
// + Distance: nil when no station catalog was available
type Report struct {
	Metadata entities.Metadata    `json:"metadata"`
	Trips    int                  `json:"trips"`
	Time     stats.TimeStats      `json:"time"`
	Stations stats.StationStats   `json:"stations"`
	Duration stats.DurationStats  `json:"duration"`
	Users    stats.UserStats      `json:"users"`
	Distance *stats.DistanceStats `json:"distance,omitempty"`
	Sections []Section            `json:"sections"`
}

func NewReport(metadata entities.Metadata, trips int) *Report {
	return &Report{
		Metadata: metadata,
		Trips:    trips,
	}
}

func (r *Report) GetMetadata() entities.Metadata {
	return r.Metadata
}

// GetElapsed returns the computation time of the section with the given name
func (r *Report) GetElapsed(name string) (time.Duration, bool) {
	for _, section := range r.Sections {
		if section.Name == name {
			return section.Elapsed, true
		}
	}
	return 0, false
}
