package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/dkozlov-dev/weather-reports/internal/models"
)

// HottestTimeOfDay returns the time of day that is most often the hottest
// moment of a day across the whole dataset. A day with several readings
// tied at its maximum contributes each tied time once. Ties between times
// are broken by first encounter, so repeated runs return the same winner.
func (r *Reporter) HottestTimeOfDay() (string, error) {
	counts := make(map[string]int)
	var order []string
	for _, day := range r.dataset.Days() {
		times, err := day.HottestTimes()
		if err != nil {
			return "", err
		}
		for _, tm := range times {
			if counts[tm] == 0 {
				order = append(order, tm)
			}
			counts[tm]++
		}
	}
	if len(order) == 0 {
		return "", fmt.Errorf("hottest time of day: dataset has no days")
	}

	best := order[0]
	for _, tm := range order[1:] {
		if counts[tm] > counts[best] {
			best = tm
		}
	}
	r.logger.Info("Computed most common hottest time",
		zap.String("time", best),
		zap.Int("occurrences", counts[best]))
	return best, nil
}

// MonthlyAverage pairs a month number with the mean hottest time of day
// over that month, displayed as "H:M" (integer division and remainder, no
// zero padding: 720 minutes renders as "12:0").
type MonthlyAverage struct {
	Month       int
	AverageTime string
}

// AverageHottestTimeByMonth groups every hottest time of day by month,
// averages them in minutes since midnight and returns one entry per month,
// sorted by month number.
func (r *Reporter) AverageHottestTimeByMonth() ([]MonthlyAverage, error) {
	minutesByMonth := make(map[int][]int)
	for _, day := range r.dataset.Days() {
		times, err := day.HottestTimes()
		if err != nil {
			return nil, err
		}
		for _, tm := range times {
			m, err := timeToMinutes(tm)
			if err != nil {
				return nil, err
			}
			minutesByMonth[day.Month] = append(minutesByMonth[day.Month], m)
		}
	}

	months := make([]int, 0, len(minutesByMonth))
	for month := range minutesByMonth {
		months = append(months, month)
	}
	sort.Ints(months)

	result := make([]MonthlyAverage, 0, len(months))
	for _, month := range months {
		minutes := minutesByMonth[month]
		sum := 0
		for _, m := range minutes {
			sum += m
		}
		avg := sum / len(minutes)
		entry := MonthlyAverage{
			Month:       month,
			AverageTime: fmt.Sprintf("%d:%d", avg/60, avg%60),
		}
		r.logger.Debug("Average hottest time for month",
			zap.Int("month", entry.Month),
			zap.String("time", entry.AverageTime))
		result = append(result, entry)
	}
	return result, nil
}

func timeToMinutes(tm string) (int, error) {
	parts := strings.Split(tm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected H:M", tm)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", tm, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", tm, err)
	}
	return hours*60 + minutes, nil
}

// TopHottestTimes returns up to n formatted lines, one per distinct day,
// walking the dataset's snippets from hottest to coldest. The output keeps
// temperature order, not date order; the stable sort keeps ties
// deterministic.
func (r *Reporter) TopHottestTimes(n int) []string {
	snippets := make([]*models.Snippet, len(r.dataset.Snippets()))
	copy(snippets, r.dataset.Snippets())
	sort.SliceStable(snippets, func(i, j int) bool {
		return snippets[i].OutsideTemperature > snippets[j].OutsideTemperature
	})

	used := make(map[*models.Day]struct{})
	lines := make([]string, 0, n)
	for _, s := range snippets {
		if _, ok := used[s.Day]; ok {
			continue
		}
		used[s.Day] = struct{}{}
		lines = append(lines, fmt.Sprintf("Date: %s, Time: %s, Temperature %.1f",
			s.Day, s.Time, s.OutsideTemperature))
		if len(lines) == n {
			break
		}
	}
	r.logger.Info("Collected hottest times on distinct days", zap.Int("entries", len(lines)))
	return lines
}

// DaysWithHiLowInInterval lists readings over the first nine June days
// whose hi temperature is within ±1.0 of 22.3 or whose low temperature is
// within ±0.2 of 10.3, in original dataset order.
func (r *Reporter) DaysWithHiLowInInterval() []string {
	var lines []string
	for _, s := range r.dataset.Snippets() {
		if s.Day.Month != 6 || s.Day.DayOfMonth >= 10 {
			continue
		}
		hiMatch := math.Abs(s.HiTemperature-HiTemperatureToCompare) <= HiTemperatureDelta
		lowMatch := math.Abs(s.LowTemperature-LowTemperatureToCompare) <= LowTemperatureDelta
		if !hiMatch && !lowMatch {
			continue
		}
		lines = append(lines, fmt.Sprintf("Date: %s, Time: %s, Hi: %.1f, Low: %.1f",
			s.Day, s.Time, s.HiTemperature, s.LowTemperature))
	}
	r.logger.Info("Filtered early June readings by hi/low interval", zap.Int("entries", len(lines)))
	return lines
}
