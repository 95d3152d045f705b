package models

import (
	"errors"
	"testing"
)

func TestGetOrCreateReturnsSharedDay(t *testing.T) {
	r := NewDayRegistry()

	first, err := r.GetOrCreate("01/06/2006")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.GetOrCreate("01/06/2006")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatal("expected the same Day object for equal dates")
	}

	// Snippets attached through one reference are visible through the other.
	first.AddSnippet(NewSnippet(first, "09:00", 15.0, 16.0, 9.0))
	if len(second.Snippets()) != 1 {
		t.Fatalf("expected shared snippet list, got %d snippets", len(second.Snippets()))
	}

	byComponents, err := r.GetOrCreateDate(2006, 6, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byComponents != first {
		t.Fatal("expected GetOrCreateDate to resolve the same Day")
	}
}

func TestGetOrCreateParsesDayMonthYear(t *testing.T) {
	r := NewDayRegistry()

	d, err := r.GetOrCreate("09/06/2006")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year != 2006 || d.Month != 6 || d.DayOfMonth != 9 {
		t.Fatalf("expected 2006-06-09, got %s", d)
	}
}

func TestGetOrCreateRejectsMalformedDates(t *testing.T) {
	r := NewDayRegistry()

	for _, input := range []string{
		"2006-06-01", // wrong delimiter
		"1/6",        // wrong field count
		"a/6/2006",   // non-integer component
		"32/6/2006",  // no such day
		"1/13/2006",  // no such month
		"",
	} {
		_, err := r.GetOrCreate(input)
		var invalid *InvalidDateError
		if !errors.As(err, &invalid) {
			t.Errorf("input %q: expected InvalidDateError, got %v", input, err)
		}
	}
}
