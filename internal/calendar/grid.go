package calendar

import (
	"fmt"
	"strings"
)

// CSS-like tags attached to day cells
const (
	TagDay      = "day"
	TagAdjacent = "day-adjacent"
	TagDisabled = "day-disabled"
	TagToday    = "day-today"
	TagSelected = "day-selected"
)

// DaysPerWeek is the width of the grid; weeks are Sunday-first
const DaysPerWeek = 7

// DayCell is one rendered day. Cells are rebuilt on every grid build, never mutated.
type DayCell struct {
	Date     Date
	Label    int
	Disabled bool
	Selected bool
	Today    bool
	Adjacent bool // belongs to the previous or next month
	Tags     []string
}

// Class joins the tags for use as an HTML class attribute
func (c DayCell) Class() string {
	return strings.Join(c.Tags, " ")
}

// AriaSelected mirrors Selected for aria-selected
func (c DayCell) AriaSelected() string {
	return fmt.Sprint(c.Selected)
}

// AriaDisabled mirrors Disabled for aria-disabled
func (c DayCell) AriaDisabled() string {
	return fmt.Sprint(c.Disabled)
}

// Week is seven consecutive cells, Sunday first
type Week struct {
	ID   string
	Days [DaysPerWeek]DayCell
}

// Grid is everything a front-end needs to draw one month
type Grid struct {
	Month        Month
	MonthLabel   string
	Weeks        []Week
	PrevDisabled bool
	NextDisabled bool
}

// Cell returns the in-month cell for d, if the grid shows it
func (g Grid) Cell(d Date) (DayCell, bool) {
	if !g.Month.Contains(d) {
		return DayCell{}, false
	}
	for _, w := range g.Weeks {
		for _, c := range w.Days {
			if !c.Adjacent && c.Date == d {
				return c, true
			}
		}
	}
	return DayCell{}, false
}

// Selected returns the selected cell, if any
func (g Grid) Selected() (DayCell, bool) {
	for _, w := range g.Weeks {
		for _, c := range w.Days {
			if c.Selected {
				return c, true
			}
		}
	}
	return DayCell{}, false
}

// IsSelectable reports whether d is enabled under the range and disabled set.
// Weekends are never selectable.
func IsSelectable(d Date, rng DateRange, disabled DisabledSet) bool {
	return rng.Contains(d) && !d.IsWeekend() && !disabled.Has(d)
}

// BuildGrid lays out view as whole Sunday-first weeks.
//
// Leading and trailing days borrowed from the neighbouring months are always
// disabled. In-month days are disabled when outside rng, on a weekend or in
// disabled. A day is selected only when it equals selected and is enabled.
// Navigation is disabled at month granularity: viewing the month of rng.Start
// disables "previous" regardless of which day the range starts on.
func BuildGrid(view Month, rng DateRange, disabled DisabledSet, selected *Date, today Date) Grid {
	first := view.First()
	last := view.Last()

	leading := int(first.Weekday())
	trailing := DaysPerWeek - 1 - int(last.Weekday())

	cells := make([]DayCell, 0, leading+last.Day+trailing)

	for d := first.AddDays(-leading); d.Before(first); d = d.AddDays(1) {
		cells = append(cells, adjacentCell(d))
	}

	for day := 1; day <= last.Day; day++ {
		d := Date{Year: view.Year, Month: view.Month, Day: day}
		cell := DayCell{
			Date:     d,
			Label:    day,
			Disabled: !IsSelectable(d, rng, disabled),
			Today:    d == today,
			Tags:     []string{TagDay},
		}
		cell.Selected = selected != nil && *selected == d && !cell.Disabled

		if cell.Disabled {
			cell.Tags = append(cell.Tags, TagDisabled)
		}
		if cell.Today {
			cell.Tags = append(cell.Tags, TagToday)
		}
		if cell.Selected {
			cell.Tags = append(cell.Tags, TagSelected)
		}
		cells = append(cells, cell)
	}

	for i := 1; i <= trailing; i++ {
		cells = append(cells, adjacentCell(last.AddDays(i)))
	}

	weeks := make([]Week, 0, len(cells)/DaysPerWeek)
	for i := 0; i < len(cells); i += DaysPerWeek {
		var w Week
		copy(w.Days[:], cells[i:i+DaysPerWeek])
		w.ID = fmt.Sprintf("week-%d-%d-%s", view.Year, int(view.Month), w.Days[0].Date)
		weeks = append(weeks, w)
	}

	return Grid{
		Month:        view,
		MonthLabel:   view.Label(),
		Weeks:        weeks,
		PrevDisabled: view == rng.Start.MonthOf(),
		NextDisabled: view == rng.End.MonthOf(),
	}
}

func adjacentCell(d Date) DayCell {
	return DayCell{
		Date:     d,
		Label:    d.Day,
		Disabled: true,
		Adjacent: true,
		Tags:     []string{TagDay, TagAdjacent, TagDisabled},
	}
}
