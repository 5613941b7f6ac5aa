package server

import (
	"github.com/username/date-picker/internal/calendar"
)

type dayView struct {
	Date         string `json:"date"`
	Label        int    `json:"label"`
	Disabled     bool   `json:"disabled"`
	Selected     bool   `json:"selected"`
	Today        bool   `json:"today"`
	Adjacent     bool   `json:"adjacent"`
	Note         string `json:"note,omitempty"`
	Class        string `json:"class"`
	AriaSelected string `json:"ariaSelected"`
	AriaDisabled string `json:"ariaDisabled"`
}

type weekView struct {
	ID   string    `json:"id"`
	Days []dayView `json:"days"`
}

// pickerView is the state a front-end needs to draw one widget
type pickerView struct {
	ID           string     `json:"id"`
	MonthLabel   string     `json:"monthLabel"`
	PrevDisabled bool       `json:"prevDisabled"`
	NextDisabled bool       `json:"nextDisabled"`
	Weekdays     []string   `json:"weekdays"`
	Weeks        []weekView `json:"weeks"`

	SelectedDate string `json:"selectedDate,omitempty"`
	RangeStart   string `json:"rangeStart"`
	RangeEnd     string `json:"rangeEnd"`

	StartValue string `json:"startValue"`
	EndValue   string `json:"endValue"`
	StartMin   string `json:"startMin"`
	EndMin     string `json:"endMin"`
	StartError string `json:"startError,omitempty"`
	EndError   string `json:"endError,omitempty"`

	DateError string `json:"dateError,omitempty"`
	Confirmed string `json:"confirmed,omitempty"`
}

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// viewOf snapshots a session; the caller holds s.mu
func viewOf(s *session) pickerView {
	p := s.picker
	g := p.View()
	rng := p.Range()

	v := pickerView{
		ID:           s.id,
		MonthLabel:   g.MonthLabel,
		PrevDisabled: g.PrevDisabled,
		NextDisabled: g.NextDisabled,
		Weekdays:     weekdays,
		Weeks:        make([]weekView, len(g.Weeks)),
		RangeStart:   rng.Start.String(),
		RangeEnd:     rng.End.String(),
		StartValue:   s.startValue,
		EndValue:     s.endValue,
		StartMin:     p.StartMin().String(),
		EndMin:       p.EndMin().String(),
		StartError:   s.startError,
		EndError:     s.endError,
		DateError:    s.dateError,
		Confirmed:    s.confirmed,
	}

	if d, ok := p.Selected(); ok {
		v.SelectedDate = d.String()
	}
	// inputs nobody typed into show the boundaries last accepted
	start, end := p.Boundaries()
	if v.StartValue == "" {
		v.StartValue = start.String()
	}
	if v.EndValue == "" {
		v.EndValue = end.String()
	}

	for i, w := range g.Weeks {
		wv := weekView{ID: w.ID, Days: make([]dayView, len(w.Days))}
		for j, c := range w.Days {
			wv.Days[j] = dayViewOf(c)
			if c.Disabled && !c.Adjacent {
				wv.Days[j].Note = p.Note(c.Date)
			}
		}
		v.Weeks[i] = wv
	}

	return v
}

func dayViewOf(c calendar.DayCell) dayView {
	return dayView{
		Date:         c.Date.String(),
		Label:        c.Label,
		Disabled:     c.Disabled,
		Selected:     c.Selected,
		Today:        c.Today,
		Adjacent:     c.Adjacent,
		Class:        c.Class(),
		AriaSelected: c.AriaSelected(),
		AriaDisabled: c.AriaDisabled(),
	}
}
