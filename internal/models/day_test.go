package models

import (
	"errors"
	"testing"
)

func testDay(temps map[string]float64, order []string) *Day {
	d := newDay(2006, 6, 1)
	for _, tm := range order {
		d.AddSnippet(NewSnippet(d, tm, temps[tm], 0, 0))
	}
	return d
}

func TestMaxTemperature(t *testing.T) {
	d := testDay(map[string]float64{"09:00": 15.0, "12:00": 21.5, "15:00": 18.0}, []string{"09:00", "12:00", "15:00"})

	max, err := d.MaxTemperature()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if max != 21.5 {
		t.Fatalf("expected max 21.5, got %v", max)
	}

	// Repeated access returns the cached value.
	again, err := d.MaxTemperature()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != max {
		t.Fatalf("cached max changed between reads: %v vs %v", again, max)
	}
}

func TestStatsInvalidatedOnAppend(t *testing.T) {
	d := testDay(map[string]float64{"09:00": 15.0, "12:00": 21.5}, []string{"09:00", "12:00"})

	if max, _ := d.MaxTemperature(); max != 21.5 {
		t.Fatalf("expected max 21.5, got %v", max)
	}
	if avg, _ := d.AvgTemperature(); avg != 18.25 {
		t.Fatalf("expected avg 18.25, got %v", avg)
	}

	// A later reading hotter than the cached max must be visible.
	d.AddSnippet(NewSnippet(d, "15:00", 30.0, 0, 0))

	if max, _ := d.MaxTemperature(); max != 30.0 {
		t.Fatalf("expected recomputed max 30.0, got %v", max)
	}
	if avg, _ := d.AvgTemperature(); avg != 66.5/3 {
		t.Fatalf("expected recomputed avg, got %v", avg)
	}
	times, _ := d.HottestTimes()
	if len(times) != 1 || times[0] != "15:00" {
		t.Fatalf("expected hottest time 15:00, got %v", times)
	}
}

func TestHottestTimesIncludesTies(t *testing.T) {
	d := testDay(map[string]float64{"09:00": 21.5, "12:00": 21.5, "15:00": 18.0}, []string{"09:00", "12:00", "15:00"})

	times, err := d.HottestTimes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 2 || times[0] != "09:00" || times[1] != "12:00" {
		t.Fatalf("expected [09:00 12:00], got %v", times)
	}
}

func TestEmptyDayStatsFail(t *testing.T) {
	d := newDay(2006, 6, 1)

	if _, err := d.MaxTemperature(); !errors.Is(err, ErrEmptyDay) {
		t.Fatalf("expected ErrEmptyDay from MaxTemperature, got %v", err)
	}
	if _, err := d.HottestTimes(); !errors.Is(err, ErrEmptyDay) {
		t.Fatalf("expected ErrEmptyDay from HottestTimes, got %v", err)
	}
	if _, err := d.AvgTemperature(); !errors.Is(err, ErrEmptyDay) {
		t.Fatalf("expected ErrEmptyDay from AvgTemperature, got %v", err)
	}
}

func TestFindByTime(t *testing.T) {
	d := testDay(map[string]float64{"09:00": 15.0, "12:00": 21.5}, []string{"09:00", "12:00"})

	s, ok := d.FindByTime("12:00")
	if !ok {
		t.Fatal("expected a snippet at 12:00")
	}
	if s.OutsideTemperature != 21.5 {
		t.Fatalf("expected 21.5 at 12:00, got %v", s.OutsideTemperature)
	}
	if _, ok := d.FindByTime("23:00"); ok {
		t.Fatal("expected no snippet at 23:00")
	}
}

func TestDiffWithAvgTemp(t *testing.T) {
	d := testDay(map[string]float64{"09:00": 10.0, "12:00": 14.0}, []string{"09:00", "12:00"})

	s, _ := d.FindByTime("09:00")
	diff, err := s.DiffWithAvgTemp()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Reading below the day's average yields a positive diff.
	if diff != 2.0 {
		t.Fatalf("expected diff 2.0, got %v", diff)
	}
}

func TestDayStringAndBefore(t *testing.T) {
	a := newDay(2006, 6, 9)
	b := newDay(2006, 7, 1)

	if a.String() != "2006-06-09" {
		t.Fatalf("unexpected date string %q", a.String())
	}
	if !a.Before(b) || b.Before(a) {
		t.Fatal("expected 2006-06-09 to sort before 2006-07-01")
	}
}
