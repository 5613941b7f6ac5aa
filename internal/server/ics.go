package server

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/username/date-picker/internal/calendar"
)

// ICSProductID identifies feeds produced by this server
const ICSProductID = "-//date-picker//Unavailable days//EN"

// disabledFeed renders the blocked days of a picker as all-day events
// and uses the day's note, when there is one, as summary and description
func disabledFeed(id string, disabled calendar.DisabledSet, note func(calendar.Date) string, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ICSProductID)
	cal.SetName("Unavailable days")

	for _, d := range disabled.Sorted() {
		event := cal.AddEvent(fmt.Sprintf("%s-%s@date-picker", d, id))
		event.SetDtStampTime(now)
		if n := note(d); n != "" {
			event.SetSummary("Unavailable: " + n)
			event.SetDescription(n)
		} else {
			event.SetSummary("Unavailable")
		}
		event.SetAllDayStartAt(d.Time())
		event.SetAllDayEndAt(d.AddDays(1).Time())
	}

	return cal.Serialize()
}
