package rrule

import (
	"errors"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyInput(t *testing.T) {
	r, err := Parse("")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestParse_Success(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Rule
	}{
		{
			name:  "Frequency only",
			input: "FREQ=DAILY",
			want: &Rule{
				Frequency: mo.Some(Daily),
				Interval:  1,
				ByMinute:  IntSet{},
				ByHour:    IntSet{},
				ByDay:     DaySet{},
			},
		},
		{
			name:  "Minute and hour lists",
			input: "FREQ=DAILY;BYMINUTE=15,30,45;BYHOUR=1,2",
			want: &Rule{
				Frequency: mo.Some(Daily),
				Interval:  1,
				ByMinute:  NewIntSet(15, 30, 45),
				ByHour:    NewIntSet(1, 2),
				ByDay:     DaySet{},
			},
		},
		{
			name:  "Weekly with days and week start",
			input: "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE,FR;WKST=MO",
			want: &Rule{
				Frequency: mo.Some(Weekly),
				Interval:  2,
				ByMinute:  IntSet{},
				ByHour:    IntSet{},
				ByDay:     NewDaySet(Monday, Wednesday, Friday),
				WeekStart: mo.Some(Monday),
			},
		},
		{
			name:  "Keys in arbitrary order",
			input: "BYHOUR=9;WKST=SU;FREQ=WEEKLY",
			want: &Rule{
				Frequency: mo.Some(Weekly),
				Interval:  1,
				ByMinute:  IntSet{},
				ByHour:    NewIntSet(9),
				ByDay:     DaySet{},
				WeekStart: mo.Some(Sunday),
			},
		},
		{
			name:  "Missing FREQ is not a parse error",
			input: "INTERVAL=3;BYMINUTE=0",
			want: &Rule{
				Interval: 3,
				ByMinute: NewIntSet(0),
				ByHour:   IntSet{},
				ByDay:    DaySet{},
			},
		},
		{
			name:  "Duplicate list values collapse",
			input: "FREQ=DAILY;BYMINUTE=5,5,5",
			want: &Rule{
				Frequency: mo.Some(Daily),
				Interval:  1,
				ByMinute:  NewIntSet(5),
				ByHour:    IntSet{},
				ByDay:     DaySet{},
			},
		},
		{
			name:  "Out-of-range values are accepted at parse time",
			input: "FREQ=DAILY;BYMINUTE=75;BYHOUR=99",
			want: &Rule{
				Frequency: mo.Some(Daily),
				Interval:  1,
				ByMinute:  NewIntSet(75),
				ByHour:    NewIntSet(99),
				ByDay:     DaySet{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "parsed %+v, want %+v", got, tt.want)
		})
	}
}

func TestParse_StructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Segment without equals", input: "FREQ"},
		{name: "Trailing separator", input: "FREQ=DAILY;"},
		{name: "Unknown key", input: "FREQ=DAILY;BYMONTH=2"},
		{name: "Lowercase key", input: "freq=DAILY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.input)
			assert.Nil(t, r)
			var malformed *MalformedSegmentError
			require.ErrorAs(t, err, &malformed)
			// The error carries the whole original input, not just the
			// offending segment.
			assert.Equal(t, tt.input, malformed.Input)
		})
	}
}

func TestParse_InvalidFrequency(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Unsupported frequency", input: "FREQ=MONTHLY"},
		{name: "Lowercase value", input: "FREQ=daily"},
		{name: "Empty value", input: "FREQ="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.input)
			assert.Nil(t, r)
			var invalid *InvalidFrequencyError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.input, invalid.Input)
		})
	}
}

func TestParse_LenientInterval(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "Non-numeric value keeps default", input: "FREQ=DAILY;INTERVAL=abc", want: 1},
		{name: "Zero keeps default", input: "FREQ=DAILY;INTERVAL=0", want: 1},
		{name: "Negative keeps default", input: "FREQ=DAILY;INTERVAL=-3", want: 1},
		{name: "Non-numeric value keeps earlier assignment", input: "FREQ=DAILY;INTERVAL=4;INTERVAL=abc", want: 4},
		{name: "Positive value assigned", input: "FREQ=DAILY;INTERVAL=7", want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Interval)
		})
	}
}

func TestParse_LenientLists(t *testing.T) {
	r, err := Parse("FREQ=DAILY;BYMINUTE=5,x,10;BYDAY=MO,XX,FR")
	require.NoError(t, err)
	assert.True(t, r.ByMinute.Equal(NewIntSet(5, 10)))
	assert.True(t, r.ByDay.Equal(NewDaySet(Monday, Friday)))
}

func TestParse_LastKeyWins(t *testing.T) {
	r, err := Parse("FREQ=DAILY;BYMINUTE=1,2;FREQ=WEEKLY;BYMINUTE=30")
	require.NoError(t, err)
	assert.Equal(t, mo.Some(Weekly), r.Frequency)
	// The later BYMINUTE replaces the earlier set, it does not merge.
	assert.True(t, r.ByMinute.Equal(NewIntSet(30)))
}

func TestParse_WeekStartClearsOnBadToken(t *testing.T) {
	r, err := Parse("FREQ=DAILY;WKST=MO;WKST=XYZ")
	require.NoError(t, err)
	assert.True(t, r.WeekStart.IsAbsent())
}

func TestParse_ErrorKindsAreDistinct(t *testing.T) {
	_, err := Parse("FREQ=MONTHLY")
	var malformed *MalformedSegmentError
	assert.False(t, errors.As(err, &malformed))
}
