package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"bikeshare/domain/business/report"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/stats"
)

const (
	analysisStr = "analysis"

	// DefaultChunkSize amount of trips tallied by each goroutine
	DefaultChunkSize = 50_000

	TimeSection     = "time"
	StationSection  = "stations"
	DurationSection = "duration"
	UserSection     = "users"
	DistanceSection = "distance"
)

// Request view to analyze and the filters that produced it
// + Catalog: optional, distance stats are skipped when nil
// + ChunkSize: trips per concurrent tally, DefaultChunkSize when zero
type Request struct {
	View      *dataset.Dataset
	Month     string
	Day       string
	Catalog   station.Catalog
	ChunkSize int
}

// Run splits the view into chunks, tallies every chunk concurrently and merges the partial
// results in chunk order, so the report is the same as a sequential pass over the view.
// The view is only read.
func Run(ctx context.Context, request Request) (*report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := request.View
	chunks := splitRecords(view.Records, request.ChunkSize)
	tallies := make([]*chunkTally, len(chunks))

	group, groupCtx := errgroup.WithContext(ctx)
	for idx, chunk := range chunks {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			tally := newChunkTally(view.Schema, request.Catalog)
			tally.add(chunk)
			tallies[idx] = tally
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("error analyzing %s trips: %w", view.City, err)
	}

	merged := newChunkTally(view.Schema, request.Catalog)
	for _, tally := range tallies {
		merged.merge(tally)
	}

	result, err := merged.buildReport(entities.NewMetadata(view.City, request.Month, request.Day, analysisStr), view.Len())
	if err != nil {
		return nil, fmt.Errorf("error analyzing %s trips: %w", view.City, err)
	}

	log.Debugf("[component: %s][city: %s][status: OK] %v trips analyzed in %v chunks", analysisStr, view.City, view.Len(), len(chunks))
	return result, nil
}

// splitRecords returns consecutive chunks of at most chunkSize records, sharing the backing array
func splitRecords(records []trip.TripRecord, chunkSize int) [][]trip.TripRecord {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	var chunks [][]trip.TripRecord
	for start := 0; start < len(records); start += chunkSize {
		chunks = append(chunks, records[start:min(start+chunkSize, len(records))])
	}
	return chunks
}

// chunkTally partial statistics of a chunk of the view
// + distance: nil when there is no station catalog
// + elapsed: time spent per section
type chunkTally struct {
	time     *stats.TimeTally
	stations *stats.StationTally
	duration *stats.DurationTally
	users    *stats.UserTally
	distance *stats.DistanceTally
	elapsed  map[string]time.Duration
}

func newChunkTally(schema dataset.Schema, catalog station.Catalog) *chunkTally {
	tally := &chunkTally{
		time:     stats.NewTimeTally(),
		stations: stats.NewStationTally(),
		duration: stats.NewDurationTally(),
		users:    stats.NewUserTally(schema),
		elapsed:  make(map[string]time.Duration),
	}
	if catalog != nil {
		tally.distance = stats.NewDistanceTally(catalog)
	}
	return tally
}

func (ct *chunkTally) add(records []trip.TripRecord) {
	ct.measure(TimeSection, records, ct.time.Add)
	ct.measure(StationSection, records, ct.stations.Add)
	ct.measure(DurationSection, records, ct.duration.Add)
	ct.measure(UserSection, records, ct.users.Add)
	if ct.distance != nil {
		ct.measure(DistanceSection, records, ct.distance.Add)
	}
}

func (ct *chunkTally) measure(section string, records []trip.TripRecord, add func(record *trip.TripRecord)) {
	start := time.Now()
	for idx := range records {
		add(&records[idx])
	}
	ct.elapsed[section] += time.Since(start)
}

func (ct *chunkTally) merge(other *chunkTally) {
	ct.time.Merge(other.time)
	ct.stations.Merge(other.stations)
	ct.duration.Merge(other.duration)
	ct.users.Merge(other.users)
	if ct.distance != nil {
		ct.distance.Merge(other.distance)
	}

	for section, elapsed := range other.elapsed {
		ct.elapsed[section] += elapsed
	}
}

func (ct *chunkTally) buildReport(metadata entities.Metadata, trips int) (*report.Report, error) {
	result := report.NewReport(metadata, trips)
	addSection := func(name string) {
		result.Sections = append(result.Sections, report.Section{Name: name, Elapsed: ct.elapsed[name]})
	}

	var err error
	if result.Time, err = ct.time.Result(); err != nil {
		return nil, err
	}
	addSection(TimeSection)

	if result.Stations, err = ct.stations.Result(); err != nil {
		return nil, err
	}
	addSection(StationSection)

	if result.Duration, err = ct.duration.Result(); err != nil {
		return nil, err
	}
	addSection(DurationSection)

	result.Users = ct.users.Result()
	addSection(UserSection)

	if ct.distance == nil {
		return result, nil
	}

	distanceStats, err := ct.distance.Result()
	if err != nil {
		if errors.Is(err, dataErrors.ErrEmptyDataset) {
			log.Debugf("[component: %s][city: %s] distance stats skipped: %s", analysisStr, metadata.GetCity(), err.Error())
			return result, nil
		}
		return nil, err
	}
	result.Distance = &distanceStats
	addSection(DistanceSection)
	return result, nil
}
