// Package calendar builds month grids for the date picker and decides which
// days are selectable.
//
// All values are local calendar dates compared by (year, month, day); there is
// no time-of-day and no timezone conversion anywhere in the package.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/date-picker/pkg/dateutil"
)

var (
	// ErrInvalidDate is returned when a string is not a YYYY-MM-DD calendar date
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvertedRange is returned when a range would end before it starts
	ErrInvertedRange = errors.New("range end is before its start")
)

// Date is a calendar date without time-of-day. The zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string as a local calendar date
func ParseDate(s string) (Date, error) {
	t, err := dateutil.ParseLocalDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals; it panics on malformed input
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns midnight of the date in the local zone
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d == other }

// AddDays returns the date n days later (n may be negative)
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of the week, Sunday = 0
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend returns true for Saturday and Sunday
func (d Date) IsWeekend() bool {
	return dateutil.IsWeekend(d.Time())
}

// MonthOf returns the month containing d
func (d Date) MonthOf() Month {
	return Month{Year: d.Year, Month: d.Month}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Month identifies one displayed month
type Month struct {
	Year  int
	Month time.Month
}

// First returns the first day of the month
func (m Month) First() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

// Last returns the last day of the month
func (m Month) Last() Date {
	return Date{Year: m.Year, Month: m.Month, Day: dateutil.DaysInMonth(m.Year, m.Month)}
}

// Prev returns the month before m
func (m Month) Prev() Month {
	return m.add(-1)
}

// Next returns the month after m
func (m Month) Next() Month {
	return m.add(1)
}

func (m Month) add(delta int) Month {
	t := time.Date(m.Year, m.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether d falls in m
func (m Month) Contains(d Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// Before reports whether m is earlier than other
func (m Month) Before(other Month) bool {
	return m.First().Before(other.First())
}

// Label returns "<FullMonthName> <Year>", e.g. "June 2025"
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// DateRange is an inclusive [Start, End] span of dates
type DateRange struct {
	Start Date
	End   Date
}

// NewDateRange validates start <= end
func NewDateRange(start, end Date) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvertedRange, start, end)
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether d lies within the range, bounds included
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Months returns every month overlapping the range, in order
func (r DateRange) Months() []Month {
	var months []Month
	last := r.End.MonthOf()
	for m := r.Start.MonthOf(); !last.Before(m); m = m.Next() {
		months = append(months, m)
	}
	return months
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start, r.End)
}
