package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"bikeshare/analysis"
	"bikeshare/config"
	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/filter"
	"bikeshare/loader"
	"bikeshare/pagination"
)

const clientStr = "client"

// ReportPublisher receives every computed report
type ReportPublisher interface {
	Publish(ctx context.Context, result *report.Report) error
}

// Client runs the interactive session. Datasets are cached per city between runs.
type Client struct {
	config          *config.AppConfig
	loader          *loader.Loader
	prompt          *Prompt
	presenter       *Presenter
	reportPublisher ReportPublisher
	datasets        map[string]*dataset.Dataset
	catalogs        map[string]station.Catalog
}

// NewClient returns a Client. reportPublisher may be nil
func NewClient(appConfig *config.AppConfig, input io.Reader, output io.Writer, reportPublisher ReportPublisher) *Client {
	return &Client{
		config:          appConfig,
		loader:          loader.NewLoader(appConfig.Columns),
		prompt:          NewPrompt(input, output),
		presenter:       NewPresenter(output),
		reportPublisher: reportPublisher,
		datasets:        make(map[string]*dataset.Dataset),
		catalogs:        make(map[string]station.Catalog),
	}
}

// Run asks for filters, prints the statistics and starts again until the user stops, the input ends
// or ctx is canceled
func (c *Client) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			log.Infof("[component: %s] session canceled", clientStr)
			return nil
		}

		err := c.runOnce(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}

		restart, err := c.prompt.Confirm("\nWould you like to restart? Enter yes or no.\n")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

func (c *Client) runOnce(ctx context.Context) error {
	city, month, day, err := c.prompt.GetFilters(c.config.GetCityNames())
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ds, err := c.getDataset(city)
	if err != nil {
		if errors.Is(err, dataErrors.ErrDatasetNotFound) || errors.Is(err, dataErrors.ErrSchema) {
			log.Errorf("[component: %s][city: %s][status: ERROR] cannot load dataset: %s", clientStr, city, err.Error())
			fmt.Fprintf(c.presenter.output, "Cannot load %s data: %s\n", city, err.Error())
			return nil
		}
		return err
	}

	view, err := filter.Filter(ds, month, day)
	if err != nil {
		return err
	}

	if view.IsEmpty() {
		fmt.Fprintf(c.presenter.output, "No trips found for %s (month: %s, day: %s)\n", city, month, day)
		return nil
	}

	result, err := analysis.Run(ctx, analysis.Request{
		View:      view,
		Month:     month,
		Day:       day,
		Catalog:   c.getCatalog(city),
		ChunkSize: c.config.ChunkSize,
	})
	if err != nil {
		return err
	}

	c.presenter.PrintReport(result)

	if c.reportPublisher != nil {
		err = c.reportPublisher.Publish(ctx, result)
		if err != nil {
			log.Errorf("[component: %s][city: %s][status: ERROR] report not published: %s", clientStr, city, err.Error())
		}
	}

	return c.displayRawData(view)
}

// displayRawData prints trips of the view upon request
func (c *Client) displayRawData(view *dataset.Dataset) error {
	paginator := pagination.NewPaginator(view.Records, c.config.PageSize)
	question := fmt.Sprintf("\nWould you like to see %v lines of raw data? Enter yes or no.\n", c.pageSize())
	for paginator.HasNext() {
		display, err := c.prompt.Confirm(question)
		if err != nil {
			return err
		}
		if !display {
			return nil
		}

		offset := paginator.Offset()
		page, _ := paginator.Next()
		c.presenter.PrintTrips(page, offset)
	}

	fmt.Fprintln(c.presenter.output, "No more raw data to display.")
	return nil
}

func (c *Client) pageSize() int {
	if c.config.PageSize <= 0 {
		return pagination.DefaultPageSize
	}
	return c.config.PageSize
}

func (c *Client) getDataset(city string) (*dataset.Dataset, error) {
	if ds, ok := c.datasets[city]; ok {
		log.Debugf("[component: %s][city: %s] dataset found in cache", clientStr, city)
		return ds, nil
	}

	tripsFilepath, ok := c.config.GetTripsFilepath(city)
	if !ok {
		return nil, fmt.Errorf("%w: no trips file configured for %s", dataErrors.ErrDatasetNotFound, city)
	}

	ds, err := c.loader.Load(tripsFilepath, city)
	if err != nil {
		return nil, err
	}

	c.datasets[city] = ds
	return ds, nil
}

// getCatalog returns the stations of city, nil when the city has no usable stations file
func (c *Client) getCatalog(city string) station.Catalog {
	if catalog, ok := c.catalogs[city]; ok {
		return catalog
	}

	stationsFilepath, ok := c.config.GetStationsFilepath(city)
	if !ok {
		return nil
	}

	catalog, err := loader.LoadStations(stationsFilepath, city)
	if err != nil {
		log.Warnf("[component: %s][city: %s] stations not loaded, distance stats disabled: %s", clientStr, city, err.Error())
	}

	c.catalogs[city] = catalog
	return catalog
}
