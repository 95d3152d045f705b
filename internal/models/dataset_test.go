package models

import (
	"errors"
	"testing"
)

func TestBuildDatasetSharesDayAcrossRows(t *testing.T) {
	rows := []Row{
		{Date: "01/06/2006", Time: "09:00", OutsideTemperature: "15.0", HiTemperature: "16.0", LowTemperature: "9.0"},
		{Date: "01/06/2006", Time: "09:00", OutsideTemperature: "15.0", HiTemperature: "16.0", LowTemperature: "9.0"},
	}

	ds, err := BuildDataset(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Days()) != 1 {
		t.Fatalf("expected exactly one day, got %d", len(ds.Days()))
	}
	if len(ds.Snippets()) != 2 {
		t.Fatalf("expected two snippets, got %d", len(ds.Snippets()))
	}
	if len(ds.Days()[0].Snippets()) != 2 {
		t.Fatalf("expected both snippets on the shared day, got %d", len(ds.Days()[0].Snippets()))
	}
}

func TestBuildDatasetAbortsOnMalformedRow(t *testing.T) {
	rows := []Row{
		{Date: "01/06/2006", Time: "09:00", OutsideTemperature: "15.0", HiTemperature: "16.0", LowTemperature: "9.0"},
		{Date: "02/06/2006", Time: "09:00", OutsideTemperature: "warm", HiTemperature: "16.0", LowTemperature: "9.0"},
		{Date: "03/06/2006", Time: "09:00", OutsideTemperature: "15.0", HiTemperature: "16.0", LowTemperature: "9.0"},
	}

	ds, err := BuildDataset(rows)
	if ds != nil {
		t.Fatal("expected no partial dataset on malformed input")
	}
	var malformed *MalformedRowError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedRowError, got %v", err)
	}
	if malformed.Field != "Outside Temperature" {
		t.Fatalf("expected the outside temperature field to be reported, got %q", malformed.Field)
	}
}

func TestBuildDatasetAbortsOnBadDate(t *testing.T) {
	rows := []Row{
		{Date: "40/06/2006", Time: "09:00", OutsideTemperature: "15.0", HiTemperature: "16.0", LowTemperature: "9.0"},
	}

	_, err := BuildDataset(rows)
	var invalid *InvalidDateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidDateError, got %v", err)
	}
}

func TestEnsureDayJoinsDatasetOnAttach(t *testing.T) {
	ds, err := BuildDataset([]Row{
		{Date: "01/06/2006", Time: "09:00", OutsideTemperature: "15.0", HiTemperature: "16.0", LowTemperature: "9.0"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	july, err := ds.EnsureDay(2006, 7, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Days()) != 1 {
		t.Fatalf("a day without snippets must not appear in Days, got %d days", len(ds.Days()))
	}

	s := NewSnippet(july, "09:00", 25.0, 0, 0)
	july.AddSnippet(s)
	ds.Attach(s)

	if len(ds.Days()) != 2 {
		t.Fatalf("expected the july day to join the dataset, got %d days", len(ds.Days()))
	}
	if len(ds.Snippets()) != 2 {
		t.Fatalf("expected the attached snippet in the global sequence, got %d", len(ds.Snippets()))
	}
}
