package rrule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput is returned by Parse for an empty rule string.
	ErrEmptyInput = errors.New("empty recurrence rule")
	// ErrFrequencyRequired is returned by Validate when no frequency is set.
	ErrFrequencyRequired = errors.New("frequency is required: set FREQ to DAILY or WEEKLY")
)

// MalformedSegmentError reports a rule string containing a segment that
// does not split into KEY=VALUE, or a key outside the supported
// vocabulary. It carries the whole original input, not just the
// offending segment.
type MalformedSegmentError struct {
	Input string
}

func (e *MalformedSegmentError) Error() string {
	return fmt.Sprintf("malformed recurrence rule %q: expected ;-separated KEY=VALUE segments with keys FREQ, INTERVAL, BYMINUTE, BYHOUR, BYDAY, WKST", e.Input)
}

// InvalidFrequencyError reports a FREQ value outside {DAILY, WEEKLY}. It
// carries the whole original input.
type InvalidFrequencyError struct {
	Input string
}

func (e *InvalidFrequencyError) Error() string {
	return fmt.Sprintf("missing or invalid FREQ in %q: allowed values are DAILY, WEEKLY", e.Input)
}

// IntervalError reports a non-positive interval.
type IntervalError struct {
	Value int
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("invalid interval %d: must be a positive integer", e.Value)
}

// RangeError reports set elements outside a field's allowed range.
// Values holds only the offending elements, in ascending order.
type RangeError struct {
	Field  string
	Values []int
	Min    int
	Max    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid %s values %v: allowed range is %d to %d", e.Field, e.Values, e.Min, e.Max)
}

// ValidationErrors aggregates every validation failure found, in the
// order the fields are checked. Positions in the message are 1-based for
// display.
type ValidationErrors []error

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = fmt.Sprintf("%d. %s", i+1, err)
	}
	return fmt.Sprintf("%d validation failures: %s", len(e), strings.Join(parts, "; "))
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error { return e }
