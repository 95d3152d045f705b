// Package report renders the computed results into the plain-text
// documents the pipeline publishes, and carries them to their sinks.
package report

import (
	"fmt"
	"strings"

	"github.com/dkozlov-dev/weather-reports/internal/services"
)

// Document is one rendered output file.
type Document struct {
	Name string
	Body string
}

// Labeling text preceding each report body.
const (
	hottestTimeHeader = "What time of the day is the most commonly occurring hottest time?"
	averageTimeHeader = "What is the average time of hottest daily temperature (over month)?"
	topTenHeader      = "Which are the Top Ten hottest times on distinct days, preferably sorted by date order?"
	intervalHeader    = "All of the dates and times where the Hi Temperature was within +/- 1 degree of 22.3" +
		" or the Low Temperature was within +/- 0.2 degree of 10.3 over the first 9 days of June."
)

// BuildAll runs every report against the given Reporter and renders the
// three output documents, named by the "task_%d_results.txt"-style pattern.
func BuildAll(rep *services.Reporter, pattern string) ([]Document, error) {
	var summary strings.Builder

	hottest, err := rep.HottestTimeOfDay()
	if err != nil {
		return nil, err
	}
	summary.WriteString(hottestTimeHeader + "\n")
	summary.WriteString(hottest + "\n")

	summary.WriteString("\n" + averageTimeHeader + "\n")
	monthly, err := rep.AverageHottestTimeByMonth()
	if err != nil {
		return nil, err
	}
	for _, m := range monthly {
		fmt.Fprintf(&summary, "%d: %s\n", m.Month, m.AverageTime)
	}

	summary.WriteString("\n" + topTenHeader + "\n")
	for _, line := range rep.TopHottestTimes(10) {
		summary.WriteString(line + "\n")
	}

	var interval strings.Builder
	interval.WriteString(intervalHeader + "\n")
	for _, line := range rep.DaysWithHiLowInInterval() {
		interval.WriteString(line + "\n")
	}

	forecastLines, err := rep.JulyForecast()
	if err != nil {
		return nil, err
	}
	var forecast strings.Builder
	for _, line := range forecastLines {
		forecast.WriteString(line + "\n")
	}

	return []Document{
		{Name: fmt.Sprintf(pattern, 1), Body: summary.String()},
		{Name: fmt.Sprintf(pattern, 2), Body: interval.String()},
		{Name: fmt.Sprintf(pattern, 3), Body: forecast.String()},
	}, nil
}
