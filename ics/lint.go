package ics

import (
	"fmt"

	"github.com/cyp0633/librecur/rrule"
	"github.com/emersion/go-ical"
)

// Issue describes one problem found while linting a calendar's
// recurrence rules.
type Issue struct {
	UID  string // UID of the offending event, if present
	Rule string // raw RRULE value
	Err  error
}

func (i Issue) String() string {
	return fmt.Sprintf("event %q: RRULE %q: %v", i.UID, i.Rule, i.Err)
}

// Lint checks the RRULE of every VEVENT in the calendar against the
// supported DAILY/WEEKLY subset and returns one Issue per offending
// event. Events without an RRULE pass; rules outside the subset (other
// frequencies, COUNT, UNTIL and the like) report as issues rather than
// being skipped.
func Lint(cal *ical.Calendar) []Issue {
	var issues []Issue
	for _, event := range cal.Events() {
		prop := event.Props.Get(ical.PropRecurrenceRule)
		if prop == nil {
			continue
		}
		uid := ""
		if p := event.Props.Get(ical.PropUID); p != nil {
			uid = p.Value
		}
		r, err := rrule.Parse(prop.Value)
		if err == nil {
			err = r.Validate()
		}
		if err != nil {
			issues = append(issues, Issue{UID: uid, Rule: prop.Value, Err: err})
		}
	}
	return issues
}
