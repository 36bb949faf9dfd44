package rrule

import (
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Keys of the supported RFC 5545 subset, in emission order.
const (
	keyFreq     = "FREQ"
	keyInterval = "INTERVAL"
	keyByMinute = "BYMINUTE"
	keyByHour   = "BYHOUR"
	keyByDay    = "BYDAY"
	keyWkst     = "WKST"
)

// Parse converts a ;-separated KEY=VALUE rule string into a Rule.
//
// Parsing is strict about structure and lenient about field contents. An
// empty input, a segment without "=", an unknown key or a FREQ value
// outside {DAILY, WEEKLY} fail the whole parse. Unparsable BYMINUTE,
// BYHOUR and BYDAY elements are filtered out, an unparsable or
// non-positive INTERVAL keeps the previous value, and an unparsable WKST
// clears the field. Keys may appear in any order; the last occurrence of
// a key wins, with list keys replacing (not merging) the prior set.
//
// A missing FREQ key is not a parse error; it surfaces from Validate as
// ErrFrequencyRequired.
func Parse(text string) (*Rule, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}
	r := NewRule()
	for _, segment := range strings.Split(text, ";") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok {
			return nil, &MalformedSegmentError{Input: text}
		}
		switch key {
		case keyFreq:
			f, ok := ParseFrequency(value)
			if !ok {
				return nil, &InvalidFrequencyError{Input: text}
			}
			r.Frequency = mo.Some(f)
		case keyInterval:
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				r.Interval = n
			}
		case keyByMinute:
			r.ByMinute = parseIntList(value)
		case keyByHour:
			r.ByHour = parseIntList(value)
		case keyByDay:
			r.ByDay = parseDayList(value)
		case keyWkst:
			// Replace semantics like the BY* lists: a token outside the
			// day vocabulary leaves the field unset rather than keeping
			// any previous value.
			if d, ok := ParseWeekday(value); ok {
				r.WeekStart = mo.Some(d)
			} else {
				r.WeekStart = mo.None[Weekday]()
			}
		default:
			return nil, &MalformedSegmentError{Input: text}
		}
	}
	return r, nil
}

func parseIntList(value string) IntSet {
	set := IntSet{}
	for _, token := range strings.Split(value, ",") {
		if n, err := strconv.Atoi(token); err == nil {
			set.Add(n)
		}
	}
	return set
}

func parseDayList(value string) DaySet {
	set := DaySet{}
	for _, token := range strings.Split(value, ",") {
		if d, ok := ParseWeekday(token); ok {
			set.Add(d)
		}
	}
	return set
}
