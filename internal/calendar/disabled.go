package calendar

import (
	"sort"
	"strings"

	"github.com/username/date-picker/pkg/random"
)

// MaxDisabledPerMonth caps how many weekdays the generator blocks in one month
const MaxDisabledPerMonth = 5

// DisabledSet is a read-only set of non-selectable dates.
// The zero value is an empty set.
type DisabledSet struct {
	dates map[Date]struct{}
}

// NewDisabledSet builds a set from dates
func NewDisabledSet(dates ...Date) DisabledSet {
	s := DisabledSet{dates: make(map[Date]struct{}, len(dates))}
	for _, d := range dates {
		s.dates[d] = struct{}{}
	}
	return s
}

// Has reports membership
func (s DisabledSet) Has(d Date) bool {
	_, ok := s.dates[d]
	return ok
}

// Len returns the number of dates in the set
func (s DisabledSet) Len() int {
	return len(s.dates)
}

// Sorted returns the dates in ascending order
func (s DisabledSet) Sorted() []Date {
	dates := make([]Date, 0, len(s.dates))
	for d := range s.dates {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// Strings returns the dates as sorted ISO strings
func (s DisabledSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, d := range sorted {
		out[i] = d.String()
	}
	return out
}

// InMonth returns the dates of the set falling in m, sorted
func (s DisabledSet) InMonth(m Month) []Date {
	var out []Date
	for _, d := range s.Sorted() {
		if m.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

// ParseExcluded parses a comma-separated list of YYYY-MM-DD dates.
// Blank entries are ignored; malformed entries are skipped and reported.
func ParseExcluded(raw string) (DisabledSet, []error) {
	set := NewDisabledSet()
	var errs []error

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := ParseDate(part)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		set.dates[d] = struct{}{}
	}

	return set, errs
}

// GenerateDisabled simulates busy days: for every month overlapping rng it
// blocks up to MaxDisabledPerMonth weekdays inside the range, chosen uniformly
// without replacement. Months with five or fewer weekdays in range lose all of them.
func GenerateDisabled(rng DateRange, src random.Source) DisabledSet {
	set := NewDisabledSet()

	for _, m := range rng.Months() {
		minDay, maxDay := 1, m.Last().Day
		if m == rng.Start.MonthOf() {
			minDay = rng.Start.Day
		}
		if m == rng.End.MonthOf() {
			maxDay = rng.End.Day
		}

		var weekdays []Date
		for day := minDay; day <= maxDay; day++ {
			d := Date{Year: m.Year, Month: m.Month, Day: day}
			if !d.IsWeekend() {
				weekdays = append(weekdays, d)
			}
		}

		for _, d := range random.PickN(src, weekdays, MaxDisabledPerMonth) {
			set.dates[d] = struct{}{}
		}
	}

	return set
}
