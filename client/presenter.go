package main

import (
	"fmt"
	"io"
	"strings"

	"bikeshare/analysis"
	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/trip"
	"bikeshare/stats"
)

var separator = strings.Repeat("-", 40)

// Presenter writes reports and raw trips in a human readable way
type Presenter struct {
	output io.Writer
}

func NewPresenter(output io.Writer) *Presenter {
	return &Presenter{output: output}
}

func (p *Presenter) PrintReport(result *report.Report) {
	fmt.Fprintf(p.output, "\n%v trips of %s (month: %s, day: %s)\n", result.Trips, result.GetMetadata().GetCity(), result.GetMetadata().GetMonth(), result.GetMetadata().GetDay())

	p.printSection(result, analysis.TimeSection, "Calculating The Most Frequent Times of Travel...", func() {
		fmt.Fprintf(p.output, "Most Common Month: %v\n", result.Time.MostCommonMonth)
		fmt.Fprintf(p.output, "Most Common Day of Week: %s\n", result.Time.MostCommonDay)
		fmt.Fprintf(p.output, "Most Common Start Hour: %v\n", result.Time.MostCommonHour)
	})

	p.printSection(result, analysis.StationSection, "Calculating The Most Popular Stations and Trip...", func() {
		fmt.Fprintf(p.output, "Most Commonly Used Start Station: %s\n", result.Stations.MostCommonStart)
		fmt.Fprintf(p.output, "Most Commonly Used End Station: %s\n", result.Stations.MostCommonEnd)
		fmt.Fprintf(p.output, "Most Frequent Combination of Start and End Station Trip: %s (%v trips)\n", result.Stations.MostCommonPair, result.Stations.PairTrips)
	})

	p.printSection(result, analysis.DurationSection, "Calculating Trip Duration...", func() {
		fmt.Fprintf(p.output, "Total Travel Time: %s seconds\n", result.Duration.TotalSeconds.String())
		fmt.Fprintf(p.output, "Mean Travel Time: %s seconds\n", result.Duration.MeanSeconds.StringFixed(2))
	})

	p.printSection(result, analysis.UserSection, "Calculating User Stats...", func() {
		fmt.Fprintln(p.output, "Counts of User Types:")
		p.printCounts(result.Users.UserTypes)

		if result.Users.HasGenders() {
			fmt.Fprintln(p.output, "\nCounts of Gender:")
			p.printCounts(*result.Users.Genders)
		}

		if result.Users.BirthYear != nil {
			fmt.Fprintf(p.output, "\nEarliest Year of Birth: %v\n", result.Users.BirthYear.Earliest)
			fmt.Fprintf(p.output, "Most Recent Year of Birth: %v\n", result.Users.BirthYear.Latest)
			fmt.Fprintf(p.output, "Most Common Year of Birth: %v\n", result.Users.BirthYear.MostCommon)
		}
	})

	if result.Distance != nil {
		p.printSection(result, analysis.DistanceSection, "Calculating Trip Distance...", func() {
			fmt.Fprintf(p.output, "Total Distance: %.2f km\n", result.Distance.TotalKm)
			fmt.Fprintf(p.output, "Mean Distance: %.2f km\n", result.Distance.MeanKm)
			fmt.Fprintf(p.output, "Trips measured: %v (%v without known stations)\n", result.Distance.MeasuredTrips, result.Distance.UnmatchedTrips)
		})
	}
}

func (p *Presenter) printSection(result *report.Report, name string, title string, body func()) {
	fmt.Fprintf(p.output, "\n%s\n\n", title)
	body()
	if elapsed, ok := result.GetElapsed(name); ok {
		fmt.Fprintf(p.output, "\nThis took %v seconds.\n", elapsed.Seconds())
	}
	fmt.Fprintln(p.output, separator)
}

func (p *Presenter) printCounts(counts stats.CategoryCounts) {
	for _, count := range counts {
		fmt.Fprintf(p.output, "%-12s %v\n", count.Value, count.Count)
	}
}

// PrintTrips prints raw trips, offset is the position of the first one in the view
func (p *Presenter) PrintTrips(trips []trip.TripRecord, offset int) {
	for idx, record := range trips {
		line := fmt.Sprintf("%v: %s | %s -> %s | %s s | %s",
			offset+idx,
			record.StartTime.Format("2006-01-02 15:04:05"),
			record.StartStation,
			record.EndStation,
			record.Duration.String(),
			record.UserType,
		)
		if record.Gender != "" {
			line += " | " + record.Gender
		}
		if record.HasBirthYear() {
			line += fmt.Sprintf(" | %v", *record.BirthYear)
		}
		fmt.Fprintln(p.output, line)
	}
}
