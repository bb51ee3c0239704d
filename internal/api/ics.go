package api

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/zapponejosh/patro-api/internal/calendar"
)

const (
	icsVersion = "2.0"
	icsProdID  = "-//patro-api//Bikram Sambat//EN"
	icsDomain  = "patro-api"
)

// monthICS renders a BS month as an iCalendar feed with one all-day event
// per day. monthName is the (possibly localized) name used in summaries.
func monthICS(m calendar.Month, monthName string, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icsVersion)
	cal.Props.SetText(ical.PropProductID, icsProdID)
	cal.Props.SetText("X-WR-CALNAME", fmt.Sprintf("%s %d", monthName, m.Year))
	cal.Props.SetText("CALSCALE", "GREGORIAN")

	for _, d := range m.Dates {
		start, err := calendar.ParseDateString(d.ADDate)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", d.Day, err)
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("bs-%d-%02d-%02d@%s", m.Year, m.Month, d.Day, icsDomain))
		event.Props.SetText(ical.PropSummary, fmt.Sprintf("%d %s %d", d.Day, monthName, m.Year))

		stamp := ical.NewProp(ical.PropDateTimeStamp)
		stamp.SetDateTime(now.UTC())
		event.Props.Set(stamp)

		dtStart := ical.NewProp(ical.PropDateTimeStart)
		dtStart.SetDate(start)
		event.Props.Set(dtStart)

		dtEnd := ical.NewProp(ical.PropDateTimeEnd)
		dtEnd.SetDate(start.AddDate(0, 0, 1))
		event.Props.Set(dtEnd)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}
