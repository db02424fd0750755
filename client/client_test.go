package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bikeshare/config"
	"bikeshare/domain/business/report"
)

const chicagoTrips = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-01-02 08:10:00,2017-01-02 08:20:00,600,Clark St,State St,Subscriber,Male,1990.0
2,2017-01-09 08:15:00,2017-01-09 08:30:00,900,Clark St,State St,Subscriber,Female,1985.0
3,2017-01-16 17:00:00,2017-01-16 17:05:00,300,State St,Clark St,Customer,,
4,2017-02-07 09:00:00,2017-02-07 09:10:00,600,State St,Clark St,Customer,,
5,broken,2017-02-07 09:10:00,600,State St,Clark St,Customer,,
`

const chicagoStations = `Name,Latitude,Longitude
Clark St,41.8819,-87.6310
State St,41.8840,-87.6280
`

type MockReportPublisher struct {
	mock.Mock
}

func (m *MockReportPublisher) Publish(ctx context.Context, result *report.Report) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func newTestConfig(t *testing.T) *config.AppConfig {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "chicago.csv"), []byte(chicagoTrips), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "chicago_stations.csv"), []byte(chicagoStations), 0o644))

	return &config.AppConfig{
		LogLevel: "info",
		DataDir:  dataDir,
		PageSize: 2,
		// several chunks per analysis
		ChunkSize: 2,
		Cities: map[string]config.CityConfig{
			"chicago":    {TripsFile: "chicago.csv", StationsFile: "chicago_stations.csv"},
			"washington": {TripsFile: "washington.csv"},
		},
	}
}

func runSession(t *testing.T, appConfig *config.AppConfig, input string, reportPublisher ReportPublisher) string {
	var output bytes.Buffer
	client := NewClient(appConfig, strings.NewReader(input), &output, reportPublisher)
	require.NoError(t, client.Run(context.Background()))
	return output.String()
}

func TestClientSession(t *testing.T) {
	mockPublisher := new(MockReportPublisher)
	mockPublisher.On("Publish", mock.Anything, mock.MatchedBy(func(result *report.Report) bool {
		return result.Trips == 3 && result.Metadata.GetMonth() == "january"
	})).Return(nil)

	input := strings.Join([]string{
		"boston",  // invalid city
		"Chicago", // valid
		"july",    // invalid month
		"january",
		"monday",
		"yes", // raw data
		"yes",
		"no", // restart
	}, "\n") + "\n"

	output := runSession(t, newTestConfig(t), input, mockPublisher)

	assert.Contains(t, output, "Invalid city. Please try again")
	assert.Contains(t, output, "Invalid month. Please try again")
	assert.Contains(t, output, "Most Common Month: 1")
	assert.Contains(t, output, "Most Common Day of Week: Monday")
	assert.Contains(t, output, "Most Common Start Hour: 8")
	assert.Contains(t, output, "Most Frequent Combination of Start and End Station Trip: Clark St -> State St (2 trips)")
	assert.Contains(t, output, "Total Travel Time: 1800 seconds")
	assert.Contains(t, output, "Mean Travel Time: 600.00 seconds")
	assert.Contains(t, output, "Counts of Gender:")
	assert.Contains(t, output, "Earliest Year of Birth: 1985")
	assert.Contains(t, output, "Mean Distance:")
	assert.Contains(t, output, "0: 2017-01-02 08:10:00 | Clark St -> State St | 600 s | Subscriber | Male | 1990")
	assert.Contains(t, output, "2: 2017-01-16 17:00:00 | State St -> Clark St | 300 s | Customer")
	assert.Contains(t, output, "No more raw data to display.")
	mockPublisher.AssertExpectations(t)
}

func TestClientSessionWithoutMatches(t *testing.T) {
	input := "chicago\njune\nall\nno\n"

	output := runSession(t, newTestConfig(t), input, nil)
	assert.Contains(t, output, "No trips found for chicago (month: june, day: all)")
}

func TestClientSessionMissingDataset(t *testing.T) {
	input := "washington\nall\nall\nno\n"

	output := runSession(t, newTestConfig(t), input, nil)
	assert.Contains(t, output, "Cannot load washington data")
}

func TestClientSessionRestartUsesCache(t *testing.T) {
	appConfig := newTestConfig(t)
	input := "chicago\nall\nall\nno\nyes\nchicago\nfebruary\ntuesday\nno\nno\n"

	var output bytes.Buffer
	client := NewClient(appConfig, strings.NewReader(input), &output, nil)
	require.NoError(t, client.Run(context.Background()))

	assert.Len(t, client.datasets, 1)
	assert.Equal(t, 1, client.datasets["chicago"].ExcludedRows)
	assert.Equal(t, 2, strings.Count(output.String(), "Calculating User Stats..."))
	assert.Contains(t, output.String(), "Most Common Day of Week: Tuesday")
}

func TestClientPublisherErrorIsNotFatal(t *testing.T) {
	mockPublisher := new(MockReportPublisher)
	mockPublisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	output := runSession(t, newTestConfig(t), "chicago\nall\nall\nno\nno\n", mockPublisher)
	assert.Contains(t, output, "Calculating Trip Duration...")
	mockPublisher.AssertExpectations(t)
}

func TestClientStopsAtEndOfInput(t *testing.T) {
	output := runSession(t, newTestConfig(t), "chicago\n", nil)
	assert.Contains(t, output, "Which month?")
}

// cancelingReader cancels the session once the input has been read
type cancelingReader struct {
	reader io.Reader
	cancel context.CancelFunc
}

func (cr *cancelingReader) Read(p []byte) (int, error) {
	n, err := cr.reader.Read(p)
	cr.cancel()
	return n, err
}

func TestClientCanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var output bytes.Buffer
	client := NewClient(newTestConfig(t), strings.NewReader("chicago\nall\nall\nno\nno\n"), &output, nil)
	require.NoError(t, client.Run(ctx))
	assert.Empty(t, output.String())
}

func TestClientCanceledDuringSession(t *testing.T) {
	mockPublisher := new(MockReportPublisher)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	input := &cancelingReader{reader: strings.NewReader("chicago\nall\nall\nno\nno\n"), cancel: cancel}
	var output bytes.Buffer
	client := NewClient(newTestConfig(t), input, &output, mockPublisher)

	require.NoError(t, client.Run(ctx))
	assert.Contains(t, output.String(), "Which day?")
	assert.NotContains(t, output.String(), "Calculating")
	assert.Empty(t, client.datasets)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger("debug"))
	assert.Error(t, InitLogger("loud"))
}
