package models

import (
	"strconv"
	"strings"
)

// Row is one record handed over by the ingestion collaborator. All fields
// are the raw strings read from the CSV.
type Row struct {
	Date               string // "D/M/Y"
	Time               string // "HH:MM"
	OutsideTemperature string
	HiTemperature      string
	LowTemperature     string
}

// Dataset owns the ordered sequence of every snippet across all days plus
// the set of days themselves. It is built once by ingestion and mutated
// only by forecast synthesis; all report reads happen strictly afterwards.
// Not safe for concurrent use.
type Dataset struct {
	registry *DayRegistry
	snippets []*Snippet
	days     []*Day
	seen     map[*Day]struct{}
}

func NewDataset() *Dataset {
	return &Dataset{
		registry: NewDayRegistry(),
		seen:     make(map[*Day]struct{}),
	}
}

// BuildDataset ingests rows in order. The first malformed row aborts the
// whole ingestion; there is no partial dataset.
func BuildDataset(rows []Row) (*Dataset, error) {
	ds := NewDataset()
	for _, row := range rows {
		day, err := ds.registry.GetOrCreate(row.Date)
		if err != nil {
			return nil, err
		}
		outside, err := parseTemperature("Outside Temperature", row.OutsideTemperature)
		if err != nil {
			return nil, err
		}
		hi, err := parseTemperature("Hi Temperature", row.HiTemperature)
		if err != nil {
			return nil, err
		}
		low, err := parseTemperature("Low Temperature", row.LowTemperature)
		if err != nil {
			return nil, err
		}
		snippet := NewSnippet(day, row.Time, outside, hi, low)
		day.AddSnippet(snippet)
		ds.Attach(snippet)
	}
	return ds, nil
}

func parseTemperature(field, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &MalformedRowError{Field: field, Value: value, Err: err}
	}
	return v, nil
}

// Attach records a snippet in the global sequence and tracks its owning day
// in first-seen order. The snippet must already be attached to its Day.
func (ds *Dataset) Attach(s *Snippet) {
	ds.snippets = append(ds.snippets, s)
	if _, ok := ds.seen[s.Day]; !ok {
		ds.seen[s.Day] = struct{}{}
		ds.days = append(ds.days, s.Day)
	}
}

// EnsureDay resolves or creates the Day for an already-parsed calendar
// date. The day joins the dataset's day list once a snippet referencing it
// is attached.
func (ds *Dataset) EnsureDay(year, month, day int) (*Day, error) {
	return ds.registry.GetOrCreateDate(year, month, day)
}

// Snippets returns the global snippet sequence in ingestion order.
func (ds *Dataset) Snippets() []*Snippet {
	return ds.snippets
}

// Days returns every day with at least one snippet, in first-seen order.
// The order is deterministic, which the report tie-breaks rely on.
func (ds *Dataset) Days() []*Day {
	return ds.days
}
