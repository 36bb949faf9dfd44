package rrule

import (
	"sort"

	"github.com/samber/mo"
)

// Frequency is the recurrence frequency. Only the daily and weekly
// frequencies of RFC 5545 are modeled.
type Frequency int

const (
	Daily Frequency = iota
	Weekly
)

// freqTokens maps FREQ tokens to their variants, in emission order. It is
// the single vocabulary for both parsing and serialization so the two
// cannot drift apart.
var freqTokens = []struct {
	token string
	freq  Frequency
}{
	{"DAILY", Daily},
	{"WEEKLY", Weekly},
}

// String returns the RFC 5545 token for the frequency.
func (f Frequency) String() string {
	for _, ft := range freqTokens {
		if ft.freq == f {
			return ft.token
		}
	}
	return "UNKNOWN"
}

// ParseFrequency matches a FREQ token (exact case) against the supported
// vocabulary.
func ParseFrequency(token string) (Frequency, bool) {
	for _, ft := range freqTokens {
		if ft.token == token {
			return ft.freq, true
		}
	}
	return 0, false
}

// Weekday is a day of the week as used by BYDAY and WKST.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// dayTokens maps two-letter RFC 5545 day tokens to their variants, in
// emission order (week starts on Sunday for display purposes).
var dayTokens = []struct {
	token string
	day   Weekday
}{
	{"SU", Sunday},
	{"MO", Monday},
	{"TU", Tuesday},
	{"WE", Wednesday},
	{"TH", Thursday},
	{"FR", Friday},
	{"SA", Saturday},
}

// String returns the two-letter RFC 5545 token for the day.
func (d Weekday) String() string {
	for _, dt := range dayTokens {
		if dt.day == d {
			return dt.token
		}
	}
	return "??"
}

// ParseWeekday matches a two-letter day token (exact case) against the
// supported vocabulary.
func ParseWeekday(token string) (Weekday, bool) {
	for _, dt := range dayTokens {
		if dt.token == token {
			return dt.day, true
		}
	}
	return 0, false
}

// IntSet is an unordered set of integers. Duplicates collapse on Add.
type IntSet map[int]struct{}

// NewIntSet builds a set from the given values.
func NewIntSet(values ...int) IntSet {
	s := IntSet{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s IntSet) Add(v int)      { s[v] = struct{}{} }
func (s IntSet) Has(v int) bool { _, ok := s[v]; return ok }
func (s IntSet) Len() int       { return len(s) }

// Values returns the elements in ascending order.
func (s IntSet) Values() []int {
	values := make([]int, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

// Equal reports whether both sets hold the same elements.
func (s IntSet) Equal(o IntSet) bool {
	if len(s) != len(o) {
		return false
	}
	for v := range s {
		if !o.Has(v) {
			return false
		}
	}
	return true
}

// DaySet is an unordered set of weekdays.
type DaySet map[Weekday]struct{}

// NewDaySet builds a set from the given days.
func NewDaySet(days ...Weekday) DaySet {
	s := DaySet{}
	for _, d := range days {
		s.Add(d)
	}
	return s
}

func (s DaySet) Add(d Weekday)      { s[d] = struct{}{} }
func (s DaySet) Has(d Weekday) bool { _, ok := s[d]; return ok }
func (s DaySet) Len() int           { return len(s) }

// Values returns the days in Sunday-first week order.
func (s DaySet) Values() []Weekday {
	days := make([]Weekday, 0, len(s))
	for _, dt := range dayTokens {
		if s.Has(dt.day) {
			days = append(days, dt.day)
		}
	}
	return days
}

// Equal reports whether both sets hold the same days.
func (s DaySet) Equal(o DaySet) bool {
	if len(s) != len(o) {
		return false
	}
	for d := range s {
		if !o.Has(d) {
			return false
		}
	}
	return true
}

// Rule is a mutable recurrence rule. Frequency and WeekStart are tagged
// optionals so that "unset" is a first-class state distinct from any
// default; an unset frequency is invalid and surfaces from Validate.
//
// A Rule has a single conceptual owner at a time and provides no internal
// synchronization.
type Rule struct {
	Frequency mo.Option[Frequency]
	Interval  int
	ByMinute  IntSet
	ByHour    IntSet
	ByDay     DaySet
	WeekStart mo.Option[Weekday]
}

// NewRule returns an empty rule with the default interval of 1 and empty
// sets ready for Add.
func NewRule() *Rule {
	return &Rule{
		Interval: 1,
		ByMinute: IntSet{},
		ByHour:   IntSet{},
		ByDay:    DaySet{},
	}
}

// Equal reports whether two rules carry the same field values, ignoring
// set iteration order.
func (r *Rule) Equal(o *Rule) bool {
	return r.Frequency == o.Frequency &&
		r.Interval == o.Interval &&
		r.ByMinute.Equal(o.ByMinute) &&
		r.ByHour.Equal(o.ByHour) &&
		r.ByDay.Equal(o.ByDay) &&
		r.WeekStart == o.WeekStart
}
