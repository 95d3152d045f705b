package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type dateKey struct {
	year, month, day int
}

// DayRegistry deduplicates Day instances by calendar date so every snippet
// for a given date accumulates on one shared object. A registry belongs to
// a single Dataset; nothing is process-global, and independent runs never
// share days.
type DayRegistry struct {
	days map[dateKey]*Day
}

func NewDayRegistry() *DayRegistry {
	return &DayRegistry{days: make(map[dateKey]*Day)}
}

// GetOrCreate resolves a "D/M/Y" date string to its unique Day, creating an
// empty one on first sight. Repeated calls with the same date return the
// identical pointer.
func (r *DayRegistry) GetOrCreate(input string) (*Day, error) {
	parts := strings.Split(input, "/")
	if len(parts) != 3 {
		return nil, &InvalidDateError{Input: input}
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, &InvalidDateError{Input: input}
		}
		nums[i] = n
	}
	return r.GetOrCreateDate(nums[2], nums[1], nums[0])
}

// GetOrCreateDate is the component-level variant used when the caller
// already holds a parsed date, such as forecast synthesis shifting a June
// day into July.
func (r *DayRegistry) GetOrCreateDate(year, month, day int) (*Day, error) {
	if !validDate(year, month, day) {
		return nil, &InvalidDateError{Input: fmt.Sprintf("%d/%d/%d", day, month, year)}
	}
	key := dateKey{year, month, day}
	if d, ok := r.days[key]; ok {
		return d, nil
	}
	d := newDay(year, month, day)
	r.days[key] = d
	return d, nil
}

// validDate rejects impossible calendar dates by round-tripping through
// time.Date, which silently normalizes out-of-range components.
func validDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
