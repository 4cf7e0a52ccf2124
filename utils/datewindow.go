package utils

import (
	"math"
	"time"
)

// DayStart truncates t to local midnight. All calendar-day bookkeeping keys
// off this value.
func DayStart(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// SameCalendarDay reports whether a and b fall on the same local calendar
// day, ignoring time of day.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}

// DaysElapsed counts the calendar-day boundaries crossed between last and
// now: 0 on the same day, 1 after one midnight, N when N-1 whole days were
// skipped. Rounding absorbs DST days that are 23 or 25 hours long.
func DaysElapsed(last, now time.Time) int {
	d := DayStart(now).Sub(DayStart(last))
	return int(math.Round(d.Hours() / 24))
}

// IsHourActive reports whether hour falls inside the wake window [start,end).
// When start >= end the window wraps past midnight, e.g. 22..6 covers 23 and
// 5 but not 10. Total over hour in [0,23].
func IsHourActive(hour, start, end int) bool {
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}
