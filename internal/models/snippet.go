package models

// Snippet is a single immutable weather reading taken at one time of day.
// It keeps a reference to its owning Day so per-day statistics are one hop
// away. Nothing mutates a Snippet after construction.
type Snippet struct {
	Day                *Day
	Time               string // "HH:MM"
	OutsideTemperature float64
	HiTemperature      float64
	LowTemperature     float64
}

func NewSnippet(day *Day, timeOfDay string, outside, hi, low float64) *Snippet {
	return &Snippet{
		Day:                day,
		Time:               timeOfDay,
		OutsideTemperature: outside,
		HiTemperature:      hi,
		LowTemperature:     low,
	}
}

// DiffWithAvgTemp returns the gap between the owning day's average
// temperature and this reading. Positive when the reading sits below the
// day's average.
func (s *Snippet) DiffWithAvgTemp() (float64, error) {
	avg, err := s.Day.AvgTemperature()
	if err != nil {
		return 0, err
	}
	return avg - s.OutsideTemperature, nil
}
