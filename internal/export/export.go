// Package export builds third-party "add to calendar" payloads from an
// event record: a Google Calendar template URL and a minimal ICS document
// for Apple Calendar and other ICS consumers. All times are floating (no
// timezone designator), matching how the host stores them.
package export

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/ventolabs/ventocal/internal/event"
)

const googleBase = "https://calendar.google.com/calendar/render?action=TEMPLATE"

// prodID identifies this generator in ICS output.
const prodID = "-//ventolabs//ventocal//EN"

// GoogleLink builds a Google Calendar event-template URL. For all-day
// entries the end date is exclusive per Google's convention, so one day is
// added to the event's end date. Malformed event dates surface as an error.
func GoogleLink(ev event.Event) (string, error) {
	start, err := stampFor(ev.StartDate, ev.StartTime, false)
	if err != nil {
		return "", err
	}

	var end string
	switch {
	case ev.EndDate != "":
		// Timed end keeps its own date; a bare date range gets the
		// exclusive +1 day.
		end, err = stampFor(ev.EndDate, ev.EndTime, ev.EndTime == "")
	case ev.StartTime != "" && ev.EndTime != "":
		end, err = stampFor(ev.StartDate, ev.EndTime, false)
	default:
		end, err = stampFor(ev.StartDate, "", true)
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s&text=%s&dates=%s/%s",
		googleBase, url.QueryEscape(ev.Title), start, end), nil
}

// ICS builds a single-event VCALENDAR document. All-day events (no start or
// end time) use VALUE=DATE properties with an exclusive DTEND one day past
// the end date. now feeds DTSTAMP so output is reproducible in tests.
func ICS(ev event.Event, now time.Time) (string, error) {
	dtstart, err := stampFor(ev.StartDate, ev.StartTime, false)
	if err != nil {
		return "", err
	}

	var dtend string
	switch {
	case ev.EndDate != "":
		dtend, err = stampFor(ev.EndDate, ev.EndTime, ev.EndTime == "")
	case ev.StartTime != "" && ev.EndTime != "":
		dtend, err = stampFor(ev.StartDate, ev.EndTime, false)
	default:
		dtend, err = stampFor(ev.StartDate, "", true)
	}
	if err != nil {
		return "", err
	}

	allDay := ev.StartTime == "" && ev.EndTime == ""

	cal := ics.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetCalscale("GREGORIAN")

	ve := cal.AddEvent(fmt.Sprintf("%d@ventocal", ev.ID))
	ve.SetSummary(ev.Title)
	ve.SetDtStampTime(now.UTC())
	if allDay {
		dateParam := &ics.KeyValues{Key: "VALUE", Value: []string{"DATE"}}
		ve.SetProperty(ics.ComponentPropertyDtStart, dtstart, dateParam)
		ve.SetProperty(ics.ComponentPropertyDtEnd, dtend, dateParam)
	} else {
		ve.SetProperty(ics.ComponentPropertyDtStart, dtstart)
		ve.SetProperty(ics.ComponentPropertyDtEnd, dtend)
	}
	if ev.Permalink != "" {
		ve.SetURL(ev.Permalink)
	}

	return cal.Serialize(), nil
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename returns a safe ".ics" attachment name derived from the title.
func Filename(ev event.Event) string {
	name := unsafeFilename.ReplaceAllString(ev.Title, "_")
	if name == "" {
		name = fmt.Sprintf("event_%d", ev.ID)
	}
	return name + ".ics"
}

// stampFor renders "YYYYMMDD" or "YYYYMMDDTHHMMSS" from an ISO date and an
// optional "HH:MM[:SS]" time. addDay shifts the date forward one day, used
// for exclusive all-day end dates.
func stampFor(isoDate, clock string, addDay bool) (string, error) {
	t, err := time.Parse(event.ISODate, isoDate)
	if err != nil {
		return "", fmt.Errorf("malformed event date %q: %w", isoDate, err)
	}
	if addDay {
		t = t.AddDate(0, 0, 1)
	}
	if clock == "" {
		return t.Format("20060102"), nil
	}
	parts := strings.SplitN(clock, ":", 3)
	if len(parts) < 2 {
		return "", fmt.Errorf("malformed event time %q", clock)
	}
	hhmm, err := time.Parse("15:04", parts[0]+":"+parts[1])
	if err != nil {
		return "", fmt.Errorf("malformed event time %q: %w", clock, err)
	}
	return t.Format("20060102") + "T" + hhmm.Format("1504") + "00", nil
}
