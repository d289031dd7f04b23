package utils

import (
	"testing"
	"time"
)

func ts(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		name  string
		input *time.Time
		want  string
	}{
		{"nil input", nil, "N/A"},
		{"zero time", &time.Time{}, "N/A"},
		{"valid date", ts("2025-08-29T00:00:00Z"), "29 Aug 2025"},
		{"single digit day", ts("2025-01-05T10:00:00Z"), "5 Jan 2025"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDate(tc.input); got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		name  string
		input *time.Time
		want  string
	}{
		{"nil input", nil, ""},
		{"zero time", &time.Time{}, ""},
		{"afternoon", ts("2025-08-29T14:30:00Z"), "2:30 PM"},
		{"morning", ts("2025-08-29T09:05:00Z"), "9:05 AM"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatTime(tc.input); got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	cases := []struct {
		name        string
		input       *time.Time
		includeTime bool
		want        string
	}{
		{"nil input", nil, true, "N/A"},
		{"date and time", ts("2025-08-29T14:30:00Z"), true, "29 Aug 2025 at 2:30 PM"},
		{"time excluded", ts("2025-08-29T14:30:00Z"), false, "29 Aug 2025"},
		{"midnight still renders", ts("2025-08-29T00:00:00Z"), true, "29 Aug 2025 at 12:00 AM"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDateTime(tc.input, tc.includeTime); got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestFormatDateRange(t *testing.T) {
	start := ts("2025-08-29T14:30:00Z")
	end := ts("2025-08-29T15:15:00Z")

	if got := FormatDateRange(start, end); got != "2:30 PM - 3:15 PM" {
		t.Fatalf("expected %q got %q", "2:30 PM - 3:15 PM", got)
	}

	// Ordering is not validated
	if got := FormatDateRange(end, start); got != "3:15 PM - 2:30 PM" {
		t.Fatalf("expected %q got %q", "3:15 PM - 2:30 PM", got)
	}

	if got := FormatDateRange(nil, end); got != " - 3:15 PM" {
		t.Fatalf("expected %q got %q", " - 3:15 PM", got)
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 8, 27, 23, 50, 0, 0, time.UTC)
	end := time.Date(2025, 8, 29, 0, 10, 0, 0, time.UTC)

	if got := DaysBetween(start, end); got != 2 {
		t.Fatalf("expected 2 got %d", got)
	}
	if got := DaysBetween(end, end); got != 0 {
		t.Fatalf("expected 0 got %d", got)
	}
}
