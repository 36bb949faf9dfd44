/*
Package rrule models a constrained subset of the RFC 5545 recurrence rule
grammar: FREQ (DAILY and WEEKLY only), INTERVAL, BYMINUTE, BYHOUR, BYDAY
and WKST.

# Basic Usage

	r, err := rrule.Parse("FREQ=WEEKLY;BYDAY=MO,WE,FR")
	if err != nil {
		log.Fatal(err)
	}
	r.ByHour.Add(9)
	text, err := r.Serialize()

A Rule is a permissive builder: fields can hold out-of-range values while a
caller assembles them, and Serialize is the enforcement gate. Validate runs
every field check and reports every failure found, so a caller gets a
complete correction list rather than the first problem only.

Expansion of a rule into concrete occurrence dates is out of scope; the
package only models the rule itself.
*/
package rrule
