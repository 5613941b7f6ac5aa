package dateutil

import (
	"fmt"
	"time"
)

// ISOLayout is the calendar date layout used by every boundary input
const ISOLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// FormatLong formats date for confirmation messages
// Example: June 10, 2025
func FormatLong(date time.Time) string {
	return date.Format("January 2, 2006")
}

// ParseLocalDate parses a YYYY-MM-DD string as a local calendar date.
// The components are taken as written; no UTC conversion happens, so the
// resulting day never shifts.
func ParseLocalDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(ISOLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}
