// utils/dates.go
package utils

import "time"

// FormatDate renders t like "29 Aug 2025". Absent or zero dates come back
// as "N/A".
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.Format("2 Jan 2006")
}

// FormatTime renders t like "2:30 PM". Absent or zero times come back as an
// empty string, a deliberately different sentinel from FormatDate since a
// time is usually optional where a date is not.
func FormatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("3:04 PM")
}

// FormatDateTime renders date plus " at " plus time. Falls back to the date
// alone when includeTime is false or the time portion formats empty.
func FormatDateTime(t *time.Time, includeTime bool) string {
	date := FormatDate(t)
	if !includeTime || date == "N/A" {
		return date
	}
	clock := FormatTime(t)
	if clock == "" {
		return date
	}
	return date + " at " + clock
}

// FormatDateRange renders "<start time> - <end time>". Appointments are
// same-day, so only the clock portions are shown; ordering is not checked.
func FormatDateRange(start, end *time.Time) string {
	return FormatTime(start) + " - " + FormatTime(end)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
