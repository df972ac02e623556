// Package datex implements the day-granularity date arithmetic kakai is built
// on: calendar-day differences, stay durations ("2박 3일") and month-grid
// layout. Everything here is pure; "now" is always passed in.
package datex

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/kakai/internal/common"
)

// DateLayout is the user-facing date format accepted by ParseDate.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

// civil maps t to midnight UTC of its calendar date in loc, so differences
// between civil values are exact multiples of a day regardless of DST.
func civil(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(location(loc)).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayDiff returns the number of calendar-day boundaries between from and to
// as observed in loc. Two instants on the same calendar day yield 0; the
// result is negative when to is on an earlier day than from.
func DayDiff(from, to time.Time, loc *time.Location) int {
	// Unix seconds rather than time.Duration, which saturates at ~292 years.
	return int((civil(to, loc).Unix() - civil(from, loc).Unix()) / secondsPerDay)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return civil(a, loc).Equal(civil(b, loc))
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	loc = location(loc)
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// NextMidnight returns the first midnight strictly after t in loc.
func NextMidnight(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1)
}

// ParseDate parses a YYYY-MM-DD string as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), location(loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", common.ErrInvalidDate, s)
	}
	return t, nil
}

// Duration is the length of a stay expressed as nights and days.
type Duration struct {
	Nights int
	Days   int
}

// ComputeDuration derives the stay length of a meeting. The boolean is false
// when end is nil: a single-day meeting without an end date has no duration.
// An end before start is clamped to "0박 1일".
func ComputeDuration(start time.Time, end *time.Time, loc *time.Location) (Duration, bool) {
	if end == nil {
		return Duration{}, false
	}
	diff := DayDiff(start, *end, loc)
	return Duration{Nights: max(0, diff), Days: max(1, diff+1)}, true
}

// Text formats the duration the way the app displays it, e.g. "2박 3일".
func (d Duration) Text() string {
	return fmt.Sprintf("%d박 %d일", d.Nights, d.Days)
}
