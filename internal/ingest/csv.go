// Package ingest reads the tabular weather export into rows the core data
// model can consume.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dkozlov-dev/weather-reports/internal/models"
)

// Column headers expected in the source CSV.
const (
	colDate    = "Date"
	colTime    = "Time"
	colOutside = "Outside Temperature"
	colHi      = "Hi Temperature"
	colLow     = "Low Temperature"
)

// ReadRows consumes a CSV stream with a header row and returns one Row per
// record, locating columns by header name so extra columns and column order
// do not matter.
func ReadRows(r io.Reader) ([]models.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colDate, colTime, colOutside, colHi, colLow} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("csv: missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []models.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		rows = append(rows, models.Row{
			Date:               field(record, colDate),
			Time:               field(record, colTime),
			OutsideTemperature: field(record, colOutside),
			HiTemperature:      field(record, colHi),
			LowTemperature:     field(record, colLow),
		})
	}
	return rows, nil
}

// ReadFile opens path and parses it with ReadRows.
func ReadFile(path string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening weather data file: %w", err)
	}
	defer f.Close()
	return ReadRows(f)
}
