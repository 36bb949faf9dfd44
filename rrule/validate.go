package rrule

// Allowed ranges for the time-of-day sets.
const (
	minuteMin, minuteMax = 0, 59
	hourMin, hourMax     = 0, 23
)

// Validate checks every field and reports every failure found, in the
// fixed field order frequency, interval, byMinute, byHour, byDay, wkst.
// ByDay and WeekStart carry no constraints beyond their types and always
// pass. A single failure is returned as-is; multiple failures are
// aggregated into ValidationErrors. A nil result means the rule is
// serializable.
func (r *Rule) Validate() error {
	var errs []error
	if r.Frequency.IsAbsent() {
		errs = append(errs, ErrFrequencyRequired)
	}
	if r.Interval <= 0 {
		errs = append(errs, &IntervalError{Value: r.Interval})
	}
	if bad := outOfRange(r.ByMinute, minuteMin, minuteMax); len(bad) > 0 {
		errs = append(errs, &RangeError{Field: keyByMinute, Values: bad, Min: minuteMin, Max: minuteMax})
	}
	if bad := outOfRange(r.ByHour, hourMin, hourMax); len(bad) > 0 {
		errs = append(errs, &RangeError{Field: keyByHour, Values: bad, Min: hourMin, Max: hourMax})
	}
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return ValidationErrors(errs)
	}
}

// outOfRange returns the elements outside [min, max], ascending.
func outOfRange(s IntSet, min, max int) []int {
	var bad []int
	for _, v := range s.Values() {
		if v < min || v > max {
			bad = append(bad, v)
		}
	}
	return bad
}
