package services

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/dkozlov-dev/weather-reports/internal/models"
)

const (
	// sourceMonth is the month the forecast is derived from; the synthesized
	// month is the one after it.
	sourceMonth = 6

	// seedDays is how many leading source-month days feed the forecast.
	seedDays = 9
)

// JulyForecast synthesizes readings for the month after June so that each
// seeded July day carries one reading per June time of day and its average
// temperature lands on the configured target. Returns one formatted line
// per July snippet, sorted by date then time.
func (r *Reporter) JulyForecast() ([]string, error) {
	var juneDays []*models.Day
	for _, d := range r.dataset.Days() {
		if d.Month == sourceMonth {
			juneDays = append(juneDays, d)
		}
	}
	sort.Slice(juneDays, func(i, j int) bool { return juneDays[i].Before(juneDays[j]) })
	if len(juneDays) > seedDays {
		juneDays = juneDays[:seedDays]
	}

	for _, juneDay := range juneDays {
		julyDay, err := r.dataset.EnsureDay(juneDay.Year, juneDay.Month+1, juneDay.DayOfMonth)
		if err != nil {
			return nil, err
		}
		if len(julyDay.Snippets()) == len(juneDay.Snippets()) {
			r.logger.Info("Full set of weather snippets already present",
				zap.Stringer("day", julyDay))
			continue
		}
		if err := r.synthesizeDay(juneDay, julyDay); err != nil {
			return nil, err
		}
		avg, err := julyDay.AvgTemperature()
		if err != nil {
			return nil, err
		}
		r.logger.Debug("Synthesized day",
			zap.Stringer("day", julyDay),
			zap.Float64("avg_temperature", avg))
	}

	var july []*models.Snippet
	for _, s := range r.dataset.Snippets() {
		if s.Day.Month == sourceMonth+1 {
			july = append(july, s)
		}
	}
	sort.SliceStable(july, func(i, j int) bool {
		if july[i].Day != july[j].Day {
			return july[i].Day.Before(july[j].Day)
		}
		return july[i].Time < july[j].Time
	})

	lines := make([]string, 0, len(july))
	for _, s := range july {
		lines = append(lines, fmt.Sprintf("%s %s %.1f", s.Day, s.Time, s.OutsideTemperature))
	}
	return lines, nil
}

// synthesizeDay fills the July day with one snippet per June time it is
// missing. The correction diff spreads the error of the July readings
// already present across the synthesized ones, so the finished day's
// average still trends to the target.
func (r *Reporter) synthesizeDay(juneDay, julyDay *models.Day) error {
	missing := len(juneDay.Snippets()) - len(julyDay.Snippets())
	if missing == 0 {
		return fmt.Errorf("%s: %w", julyDay, models.ErrNoMissingEntries)
	}

	var delta float64
	for _, existing := range julyDay.Snippets() {
		juneEq, ok := juneDay.FindByTime(existing.Time)
		if !ok {
			return fmt.Errorf("no %s reading at %s to correct %s against",
				juneDay, existing.Time, julyDay)
		}
		gap, err := juneEq.DiffWithAvgTemp()
		if err != nil {
			return err
		}
		expected := r.forecastTarget - gap
		delta += existing.OutsideTemperature - expected
	}
	diff := delta / float64(missing)
	r.logger.Debug("Correction for synthesized readings",
		zap.Stringer("day", julyDay),
		zap.Float64("diff", diff))

	juneAvg, err := juneDay.AvgTemperature()
	if err != nil {
		return err
	}
	for _, juneSnippet := range juneDay.Snippets() {
		if _, ok := julyDay.FindByTime(juneSnippet.Time); ok {
			continue
		}
		gap, err := juneSnippet.DiffWithAvgTemp()
		if err != nil {
			return err
		}
		outside := round1(r.forecastTarget - gap - diff)
		// Hi/low have no forecast model behind them; the June average is a
		// placeholder, not meaningful data.
		synthesized := models.NewSnippet(julyDay, juneSnippet.Time, outside, juneAvg, juneAvg)
		julyDay.AddSnippet(synthesized)
		r.dataset.Attach(synthesized)
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
