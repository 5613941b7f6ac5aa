// Package picker holds the state of one date-picker widget: the displayed
// month, the selected date and the boundary inputs. A Picker is driven by a
// single front-end event at a time and is not safe for concurrent use.
package picker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/username/date-picker/internal/calendar"
	"github.com/username/date-picker/pkg/dateutil"
	"github.com/username/date-picker/pkg/random"
	"go.uber.org/zap"
)

// DefaultSpanDays is how far past the start an absent end date lands
const DefaultSpanDays = 30

// NoSelectionMessage is shown when a confirm is attempted with nothing selected
const NoSelectionMessage = "Please select a date between Start & End Date range."

// ErrNoSelection is returned by Confirm when no date is selected
var ErrNoSelection = errors.New("no date selected")

// Options configures a new Picker. Every field is optional.
type Options struct {
	StartDate     string // YYYY-MM-DD; empty means today
	EndDate       string // YYYY-MM-DD; empty means start + DefaultSpanDays
	ExcludedDates string // comma-separated YYYY-MM-DD; empty means generate busy days
	ExclusionFile string // "YYYY-MM-DD [note]" lines, used when ExcludedDates is empty

	DefaultSpanDays int
	Clock           func() time.Time
	Random          random.Source
	Logger          *zap.Logger
}

// Confirmation is the result of a successful Confirm
type Confirmation struct {
	Date  calendar.Date
	Label string // e.g. "June 10, 2025"
}

// Picker is one widget instance
type Picker struct {
	clock  func() time.Time
	source calendar.Source
	logger *zap.Logger

	rng      calendar.DateRange
	disabled calendar.DisabledSet

	view     calendar.Month
	selected *calendar.Date

	// boundary inputs as last accepted; they become the range once ordered
	startInput calendar.Date
	endInput   calendar.Date
	endMin     calendar.Date
}

// New creates a picker for the boundaries in opts.
// Malformed boundaries are reported as errors rather than replaced by defaults.
func New(opts Options) (*Picker, error) {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.DefaultSpanDays <= 0 {
		opts.DefaultSpanDays = DefaultSpanDays
	}

	today := calendar.DateOf(dateutil.StartOfDay(opts.Clock()))

	start := today
	if opts.StartDate != "" {
		d, err := calendar.ParseDate(opts.StartDate)
		if err != nil {
			return nil, fmt.Errorf("start date: %w", err)
		}
		start = d
	}

	end := start.AddDays(opts.DefaultSpanDays)
	if opts.EndDate != "" {
		d, err := calendar.ParseDate(opts.EndDate)
		if err != nil {
			return nil, fmt.Errorf("end date: %w", err)
		}
		end = d
	}

	rng, err := calendar.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	p := &Picker{
		clock:      opts.Clock,
		source:     newSource(opts),
		logger:     opts.Logger,
		startInput: start,
		endInput:   end,
		endMin:     start,
	}

	if err := p.setRange(rng); err != nil {
		return nil, err
	}

	p.logger.Info("Picker initialized",
		zap.Stringer("range", rng),
		zap.Int("disabled_dates", p.disabled.Len()))

	return p, nil
}

// newSource picks the disabled-date source. A non-blank exclusion list is
// authoritative even when none of its entries parse; busy days are generated
// only without one, or when the exclusion file is missing or empty.
func newSource(opts Options) calendar.Source {
	if strings.TrimSpace(opts.ExcludedDates) != "" {
		return calendar.NewListSource(opts.ExcludedDates, opts.Logger)
	}

	generated := calendar.NewRandomSource(opts.Random, opts.Logger)

	switch {
	case opts.ExclusionFile != "":
		return calendar.NewCompositeSource(
			calendar.NewFileSource(opts.ExclusionFile, opts.Logger), generated, opts.Logger)
	default:
		return generated
	}
}

// setRange replaces the range wholesale and returns the widget to its initial state
func (p *Picker) setRange(rng calendar.DateRange) error {
	disabled, err := p.source.Disabled(rng)
	if err != nil {
		return fmt.Errorf("failed to load disabled dates: %w", err)
	}

	p.rng = rng
	p.disabled = disabled
	p.Reset()
	return nil
}

func (p *Picker) today() calendar.Date {
	return calendar.DateOf(p.clock())
}

// Range returns the selectable range
func (p *Picker) Range() calendar.DateRange {
	return p.rng
}

// Disabled returns the exclusion set in effect
func (p *Picker) Disabled() calendar.DisabledSet {
	return p.disabled
}

// Month returns the displayed month
func (p *Picker) Month() calendar.Month {
	return p.view
}

// Selected returns the selected date, if any
func (p *Picker) Selected() (calendar.Date, bool) {
	if p.selected == nil {
		return calendar.Date{}, false
	}
	return *p.selected, true
}

// View builds the grid for the current state
func (p *Picker) View() calendar.Grid {
	return calendar.BuildGrid(p.view, p.rng, p.disabled, p.selected, p.today())
}

// PreviousMonth moves the view back one month. It reports false and does
// nothing when the previous button is disabled.
func (p *Picker) PreviousMonth() bool {
	if p.View().PrevDisabled {
		return false
	}
	p.view = p.view.Prev()
	return true
}

// NextMonth moves the view forward one month. It reports false and does
// nothing when the next button is disabled.
func (p *Picker) NextMonth() bool {
	if p.View().NextDisabled {
		return false
	}
	p.view = p.view.Next()
	return true
}

// SelectDate selects d when its cell in the displayed month is enabled.
// Clicks on disabled cells, or dates not shown in this month, change nothing.
func (p *Picker) SelectDate(d calendar.Date) bool {
	cell, ok := p.View().Cell(d)
	if !ok || cell.Disabled {
		p.logger.Debug("Ignoring click on unavailable date", zap.Stringer("date", d))
		return false
	}

	p.selected = &d
	return true
}

// Confirm hands back the selection and resets the widget
func (p *Picker) Confirm() (Confirmation, error) {
	d, ok := p.Selected()
	if !ok {
		return Confirmation{}, ErrNoSelection
	}

	c := Confirmation{
		Date:  d,
		Label: dateutil.FormatLong(d.Time()),
	}

	p.logger.Info("Date confirmed", zap.Stringer("date", d))
	p.Reset()
	return c, nil
}

// Reset shows the start month again and clears the selection
func (p *Picker) Reset() {
	p.view = p.rng.Start.MonthOf()
	p.selected = nil
}

// StartMin is the earliest value the start input accepts
func (p *Picker) StartMin() calendar.Date {
	return p.today()
}

// EndMin is the earliest value the end input accepts: the accepted start,
// but never before today
func (p *Picker) EndMin() calendar.Date {
	if today := p.today(); p.endMin.Before(today) {
		return today
	}
	return p.endMin
}

// Boundaries returns the boundary inputs as last accepted
func (p *Picker) Boundaries() (start, end calendar.Date) {
	return p.startInput, p.endInput
}

// Note returns the annotation of a blocked day when its source keeps one
func (p *Picker) Note(d calendar.Date) string {
	if n, ok := p.source.(calendar.Noter); ok && p.disabled.Has(d) {
		return n.Note(d)
	}
	return ""
}

// SetBoundary validates a start or end input change and returns the message
// for the input's validity state ("" when accepted). An accepted start relaxes
// the end input's minimum to that start. Once both inputs are accepted and in
// order they replace the range, which resets the view, clears the selection
// and rebuilds the disabled dates.
func (p *Picker) SetBoundary(role calendar.Role, value string) string {
	var other *calendar.Date
	if role == calendar.RoleEnd {
		start := p.startInput
		other = &start
	}

	if msg := calendar.ValidateBoundary(value, role, other, p.today()); msg != "" {
		return msg
	}
	d, err := calendar.ParseDate(value)
	if err != nil {
		// empty input: nothing to apply
		return ""
	}

	switch role {
	case calendar.RoleStart:
		p.startInput = d
		p.endMin = d
	case calendar.RoleEnd:
		p.endInput = d
	}

	rng, err := calendar.NewDateRange(p.startInput, p.endInput)
	if err != nil {
		p.logger.Debug("Boundaries out of order, waiting for the other input",
			zap.Stringer("start", p.startInput),
			zap.Stringer("end", p.endInput))
		return ""
	}
	if rng == p.rng {
		return ""
	}

	if err := p.setRange(rng); err != nil {
		p.logger.Warn("Failed to apply new range, keeping previous", zap.Error(err))
		return ""
	}

	p.logger.Info("Range updated", zap.Stringer("range", rng))
	return ""
}
