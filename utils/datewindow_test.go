package utils

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 30, 0, 0, time.Local)
}

func TestSameCalendarDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same moment", day(2025, 3, 10, 9), day(2025, 3, 10, 9), true},
		{"same day different hours", day(2025, 3, 10, 0), day(2025, 3, 10, 23), true},
		{"adjacent days", day(2025, 3, 10, 23), day(2025, 3, 11, 0), false},
		{"same day-of-month different month", day(2025, 3, 10, 9), day(2025, 4, 10, 9), false},
		{"same date different year", day(2024, 3, 10, 9), day(2025, 3, 10, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameCalendarDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameCalendarDay(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDaysElapsed(t *testing.T) {
	tests := []struct {
		name      string
		last, now time.Time
		want      int
	}{
		{"same day", day(2025, 3, 10, 8), day(2025, 3, 10, 22), 0},
		{"one midnight crossed", day(2025, 3, 10, 23), day(2025, 3, 11, 1), 1},
		{"two days skipped", day(2025, 3, 10, 12), day(2025, 3, 13, 12), 3},
		{"month boundary", day(2025, 3, 31, 20), day(2025, 4, 1, 4), 1},
		{"year boundary", day(2024, 12, 31, 23), day(2025, 1, 1, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysElapsed(tt.last, tt.now); got != tt.want {
				t.Errorf("DaysElapsed(%v, %v) = %d, want %d", tt.last, tt.now, got, tt.want)
			}
		})
	}
}

func TestIsHourActive(t *testing.T) {
	tests := []struct {
		name             string
		hour, start, end int
		want             bool
	}{
		{"simple window inside", 12, 7, 22, true},
		{"simple window start inclusive", 7, 7, 22, true},
		{"simple window end exclusive", 22, 7, 22, false},
		{"simple window before", 6, 7, 22, false},
		{"wrap window late evening", 23, 22, 6, true},
		{"wrap window midday", 10, 22, 6, false},
		{"wrap window early morning", 5, 22, 6, true},
		{"wrap window end exclusive", 6, 22, 6, false},
		{"wrap window start inclusive", 22, 22, 6, true},
		{"degenerate start==end covers all", 3, 8, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHourActive(tt.hour, tt.start, tt.end); got != tt.want {
				t.Errorf("IsHourActive(%d, %d, %d) = %v, want %v", tt.hour, tt.start, tt.end, got, tt.want)
			}
		})
	}

	// totality: every hour yields an answer without panicking
	for hour := 0; hour < 24; hour++ {
		_ = IsHourActive(hour, 22, 6)
	}
}

func TestDayStart(t *testing.T) {
	got := DayStart(day(2025, 6, 15, 18))
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("DayStart = %v, want %v", got, want)
	}
}
