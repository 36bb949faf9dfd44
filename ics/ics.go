// Package ics attaches recurrence rules to iCalendar objects and reads
// them back, bridging the rrule package and emersion/go-ical.
package ics

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/cyp0633/librecur/rrule"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/samber/mo"
)

// RuleOf reads the RRULE property of a component and parses it against
// the supported DAILY/WEEKLY subset. A component without an RRULE yields
// None and no error.
func RuleOf(comp *ical.Component) (mo.Option[*rrule.Rule], error) {
	prop := comp.Props.Get(ical.PropRecurrenceRule)
	if prop == nil {
		return mo.None[*rrule.Rule](), nil
	}
	r, err := rrule.Parse(prop.Value)
	if err != nil {
		return mo.None[*rrule.Rule](), fmt.Errorf("failed to parse RRULE: %w", err)
	}
	return mo.Some(r), nil
}

// SetRule serializes the rule (validating it) and sets it as the
// component's RRULE property, replacing any previous one.
func SetRule(comp *ical.Component, r *rrule.Rule) error {
	text, err := r.Serialize()
	if err != nil {
		return err
	}
	prop := ical.NewProp(ical.PropRecurrenceRule)
	prop.Value = text
	comp.Props.Set(prop)
	return nil
}

// NewEvent builds a minimal recurring VEVENT: generated UID, DTSTAMP,
// DTSTART, SUMMARY and the given rule.
func NewEvent(summary string, start time.Time, r *rrule.Rule) (*ical.Event, error) {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uuid.New().String())
	event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now())
	event.Props.SetDateTime(ical.PropDateTimeStart, start)
	event.Props.SetText(ical.PropSummary, summary)
	if err := SetRule(event.Component, r); err != nil {
		return nil, err
	}
	return event, nil
}

// EventToICS wraps a single event in a VCALENDAR and encodes it.
func EventToICS(event *ical.Event) (string, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//librecur//Go Recurrence//EN")

	// Ensure DTSTAMP is present
	if event.Props.Get(ical.PropDateTimeStamp) == nil {
		event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now())
	}

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return "", fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.String(), nil
}

// DecodeCalendar parses an ICS document.
func DecodeCalendar(ics string) (*ical.Calendar, error) {
	cal, err := ical.NewDecoder(strings.NewReader(ics)).Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode calendar: %w", err)
	}
	return cal, nil
}
