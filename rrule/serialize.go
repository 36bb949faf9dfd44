package rrule

import (
	"strconv"
	"strings"
)

// Serialize renders the rule in canonical RFC 5545 text form. It runs
// Validate first and returns the validation error unchanged when the
// rule is invalid; no partial string is produced.
//
// Segments are emitted in the fixed order FREQ, INTERVAL, BYMINUTE,
// BYHOUR, BYDAY, WKST. INTERVAL is omitted at its default of 1, empty
// sets and an unset WKST are omitted, and set values are emitted in
// ascending numeric order (Sunday-first week order for BYDAY) so output
// is deterministic.
func (r *Rule) Serialize() (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	segments := []string{keyFreq + "=" + r.Frequency.MustGet().String()}
	if r.Interval != 1 {
		segments = append(segments, keyInterval+"="+strconv.Itoa(r.Interval))
	}
	if r.ByMinute.Len() > 0 {
		segments = append(segments, keyByMinute+"="+joinInts(r.ByMinute.Values()))
	}
	if r.ByHour.Len() > 0 {
		segments = append(segments, keyByHour+"="+joinInts(r.ByHour.Values()))
	}
	if r.ByDay.Len() > 0 {
		segments = append(segments, keyByDay+"="+joinDays(r.ByDay.Values()))
	}
	if d, ok := r.WeekStart.Get(); ok {
		segments = append(segments, keyWkst+"="+d.String())
	}
	return strings.Join(segments, ";"), nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func joinDays(days []Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}
