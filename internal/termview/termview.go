// Package termview draws a calendar grid for the terminal.
package termview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/username/date-picker/internal/calendar"
)

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Styles controls how each kind of cell is drawn
type Styles struct {
	Header   lipgloss.Style
	Weekday  lipgloss.Style
	Day      lipgloss.Style
	Adjacent lipgloss.Style
	Disabled lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Nav      lipgloss.Style
	NavOff   lipgloss.Style
}

// DefaultStyles returns the colour scheme used by the render command
func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true),
		Weekday:  cell.Copy().Faint(true),
		Day:      cell.Copy(),
		Adjacent: cell.Copy().Foreground(lipgloss.Color("238")),
		Disabled: cell.Copy().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Today:    cell.Copy().Underline(true),
		Selected: cell.Copy().Reverse(true).Bold(true),
		Nav:      lipgloss.NewStyle().Bold(true),
		NavOff:   lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyles renders without any escape codes
func PlainStyles() Styles {
	cell := lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	return Styles{
		Header:   lipgloss.NewStyle(),
		Weekday:  cell,
		Day:      cell,
		Adjacent: cell,
		Disabled: cell,
		Today:    cell,
		Selected: cell,
		Nav:      lipgloss.NewStyle(),
		NavOff:   lipgloss.NewStyle(),
	}
}

// Render draws g as a header line, a weekday row and one row per week
func Render(g calendar.Grid, s Styles) string {
	var b strings.Builder

	prev, next := s.Nav.Render("<"), s.Nav.Render(">")
	if g.PrevDisabled {
		prev = s.NavOff.Render("-")
	}
	if g.NextDisabled {
		next = s.NavOff.Render("-")
	}
	fmt.Fprintf(&b, "%s %s %s\n", prev, s.Header.Render(g.MonthLabel), next)

	header := make([]string, len(weekdayHeader))
	for i, wd := range weekdayHeader {
		header[i] = s.Weekday.Render(wd)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteByte('\n')

	for _, w := range g.Weeks {
		row := make([]string, len(w.Days))
		for i, c := range w.Days {
			row[i] = cellStyle(c, s).Render(cellText(c))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteByte('\n')
	}

	return b.String()
}

func cellStyle(c calendar.DayCell, s Styles) lipgloss.Style {
	switch {
	case c.Adjacent:
		return s.Adjacent
	case c.Selected:
		return s.Selected
	case c.Disabled:
		return s.Disabled
	case c.Today:
		return s.Today
	default:
		return s.Day
	}
}

// cellText marks state with a suffix so plain output stays readable
func cellText(c calendar.DayCell) string {
	switch {
	case c.Adjacent:
		return fmt.Sprintf("%d ", c.Label)
	case c.Selected:
		return fmt.Sprintf("%d*", c.Label)
	case c.Disabled:
		return fmt.Sprintf("%dx", c.Label)
	default:
		return fmt.Sprintf("%d ", c.Label)
	}
}
