package models

import (
	"errors"
	"fmt"
)

// ErrEmptyDay is returned when a statistic is requested on a Day that holds
// no weather snippets; max and average over an empty set are undefined.
var ErrEmptyDay = errors.New("day has no weather snippets")

// ErrNoMissingEntries is returned by forecast synthesis when a target day
// already holds one reading per source time, which would make the
// correction divisor zero.
var ErrNoMissingEntries = errors.New("no missing entries to synthesize")

// InvalidDateError reports a date string that could not be parsed into a
// valid calendar date.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected D/M/Y with integer fields", e.Input)
}

// MalformedRowError reports an ingestion row whose temperature field does
// not parse as a real number. Ingestion aborts on the first one.
type MalformedRowError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row: field %q value %q: %v", e.Field, e.Value, e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}
