package models

import "fmt"

// Day aggregates every snippet recorded on one calendar date. The maximum,
// hottest times and average are computed lazily on first access and cached;
// appending a snippet drops the cache so later reads see the new data.
// Not safe for concurrent use.
type Day struct {
	Year       int
	Month      int
	DayOfMonth int

	snippets []*Snippet

	maxTemperature *float64
	hottestTimes   []string
	avgTemperature *float64
}

func newDay(year, month, dayOfMonth int) *Day {
	return &Day{Year: year, Month: month, DayOfMonth: dayOfMonth}
}

func (d *Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.DayOfMonth)
}

// Before reports whether d falls on an earlier calendar date than other.
func (d *Day) Before(other *Day) bool {
	return d.sortKey() < other.sortKey()
}

func (d *Day) sortKey() int {
	return d.Year*10000 + d.Month*100 + d.DayOfMonth
}

// AddSnippet appends a reading in ingestion order and invalidates the
// cached statistics.
func (d *Day) AddSnippet(s *Snippet) {
	d.snippets = append(d.snippets, s)
	d.maxTemperature = nil
	d.hottestTimes = nil
	d.avgTemperature = nil
}

// Snippets returns the day's readings in the order they were added.
func (d *Day) Snippets() []*Snippet {
	return d.snippets
}

// MaxTemperature returns the highest outside temperature of the day.
func (d *Day) MaxTemperature() (float64, error) {
	if d.maxTemperature != nil {
		return *d.maxTemperature, nil
	}
	if len(d.snippets) == 0 {
		return 0, fmt.Errorf("%s: %w", d, ErrEmptyDay)
	}
	max := d.snippets[0].OutsideTemperature
	for _, s := range d.snippets[1:] {
		if s.OutsideTemperature > max {
			max = s.OutsideTemperature
		}
	}
	d.maxTemperature = &max
	return max, nil
}

// HottestTimes returns every time of day whose reading ties the day's
// maximum. Exact float comparison, so all tied readings are included.
func (d *Day) HottestTimes() ([]string, error) {
	if d.hottestTimes != nil {
		return d.hottestTimes, nil
	}
	max, err := d.MaxTemperature()
	if err != nil {
		return nil, err
	}
	times := make([]string, 0, 1)
	for _, s := range d.snippets {
		if s.OutsideTemperature == max {
			times = append(times, s.Time)
		}
	}
	d.hottestTimes = times
	return times, nil
}

// AvgTemperature returns the arithmetic mean of the day's outside
// temperatures.
func (d *Day) AvgTemperature() (float64, error) {
	if d.avgTemperature != nil {
		return *d.avgTemperature, nil
	}
	if len(d.snippets) == 0 {
		return 0, fmt.Errorf("%s: %w", d, ErrEmptyDay)
	}
	var sum float64
	for _, s := range d.snippets {
		sum += s.OutsideTemperature
	}
	avg := sum / float64(len(d.snippets))
	d.avgTemperature = &avg
	return avg, nil
}

// FindByTime returns the first snippet recorded at the given time of day.
// This is the keyed lookup used for cross-month matching; snippets carry no
// equality semantics of their own.
func (d *Day) FindByTime(timeOfDay string) (*Snippet, bool) {
	for _, s := range d.snippets {
		if s.Time == timeOfDay {
			return s, true
		}
	}
	return nil, false
}
