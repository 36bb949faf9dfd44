// Package xcal converts recurrence rules to and from the RFC 6321 xCal
// XML form of the RECUR value.
package xcal

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/cyp0633/librecur/rrule"
	"github.com/samber/mo"
)

// Element names from RFC 6321. The child order mirrors the text form's
// segment order.
const (
	elemRecur    = "recur"
	elemFreq     = "freq"
	elemInterval = "interval"
	elemByMinute = "byminute"
	elemByHour   = "byhour"
	elemByDay    = "byday"
	elemWkst     = "wkst"
)

// Encode renders the rule as a <recur> element. The rule is validated
// first; an invalid rule yields the validation error and no element.
// Multi-valued fields become repeated child elements, one per value, in
// the same canonical order as the text form.
func Encode(r *rrule.Rule) (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	el := etree.NewElement(elemRecur)
	el.CreateElement(elemFreq).SetText(r.Frequency.MustGet().String())
	if r.Interval != 1 {
		el.CreateElement(elemInterval).SetText(strconv.Itoa(r.Interval))
	}
	for _, v := range r.ByMinute.Values() {
		el.CreateElement(elemByMinute).SetText(strconv.Itoa(v))
	}
	for _, v := range r.ByHour.Values() {
		el.CreateElement(elemByHour).SetText(strconv.Itoa(v))
	}
	for _, d := range r.ByDay.Values() {
		el.CreateElement(elemByDay).SetText(d.String())
	}
	if d, ok := r.WeekStart.Get(); ok {
		el.CreateElement(elemWkst).SetText(d.String())
	}
	return el, nil
}

// Decode converts a <recur> element back into a rule. Field contents
// follow the text parser's lenient policy: unparsable numeric or day
// values are dropped, a bad interval keeps the previous value and a bad
// wkst clears the field. An unexpected child element fails the whole
// decode, like a malformed segment does in the text form.
func Decode(el *etree.Element) (*rrule.Rule, error) {
	if el.Tag != elemRecur {
		return nil, fmt.Errorf("unexpected element <%s>: want <%s>", el.Tag, elemRecur)
	}
	r := rrule.NewRule()
	for _, child := range el.ChildElements() {
		text := child.Text()
		switch child.Tag {
		case elemFreq:
			f, ok := rrule.ParseFrequency(text)
			if !ok {
				return nil, fmt.Errorf("invalid <%s> value %q: allowed values are DAILY, WEEKLY", elemFreq, text)
			}
			r.Frequency = mo.Some(f)
		case elemInterval:
			if n, err := strconv.Atoi(text); err == nil && n > 0 {
				r.Interval = n
			}
		case elemByMinute:
			if n, err := strconv.Atoi(text); err == nil {
				r.ByMinute.Add(n)
			}
		case elemByHour:
			if n, err := strconv.Atoi(text); err == nil {
				r.ByHour.Add(n)
			}
		case elemByDay:
			if d, ok := rrule.ParseWeekday(text); ok {
				r.ByDay.Add(d)
			}
		case elemWkst:
			if d, ok := rrule.ParseWeekday(text); ok {
				r.WeekStart = mo.Some(d)
			} else {
				r.WeekStart = mo.None[rrule.Weekday]()
			}
		default:
			return nil, fmt.Errorf("unexpected element <%s> in <%s>", child.Tag, elemRecur)
		}
	}
	return r, nil
}

// EncodeString is a convenience wrapper returning the element as an XML
// document string.
func EncodeString(r *rrule.Rule) (string, error) {
	el, err := Encode(r)
	if err != nil {
		return "", err
	}
	doc := etree.NewDocument()
	doc.SetRoot(el)
	return doc.WriteToString()
}

// DecodeString parses an XML document whose root is a <recur> element.
func DecodeString(xml string) (*rrule.Rule, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty XML document")
	}
	return Decode(root)
}
