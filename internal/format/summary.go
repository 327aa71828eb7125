package format

import (
	"strings"

	"github.com/ventolabs/ventocal/internal/event"
)

// SummaryOptions controls which event fields appear in the one-line
// date/time summary shown in list items and the day modal.
type SummaryOptions struct {
	ShowStartDate bool
	ShowEndDate   bool
	ShowStartTime bool
	ShowEndTime   bool
	DateFormat    string
	TimeFormat    string
}

// EventSummary assembles the display line for an event, e.g.
// "March 1, 2024 2:30 pm - March 3, 2024". The end date is shown only when
// it differs from the start date; for point events a configured end time is
// appended on its own.
func EventSummary(ev event.Event, o SummaryOptions) string {
	var parts []string

	if o.ShowStartDate || o.ShowStartTime {
		var start string
		if o.ShowStartDate {
			start = ISO(ev.StartDate, o.DateFormat)
		}
		if o.ShowStartTime && ev.StartTime != "" {
			if t := Clock(ev.StartTime, o.TimeFormat); t != "" {
				if start != "" {
					start += " " + t
				} else {
					start = t
				}
			}
		}
		if start != "" {
			parts = append(parts, start)
		}
	}

	if ev.EndDate != "" && (o.ShowEndDate || o.ShowEndTime) {
		var end string
		if o.ShowEndDate && ev.EndDate != ev.StartDate {
			end = ISO(ev.EndDate, o.DateFormat)
		}
		if o.ShowEndTime && ev.EndTime != "" {
			if t := Clock(ev.EndTime, o.TimeFormat); t != "" {
				if end != "" {
					end += " " + t
				} else {
					end = t
				}
			}
		}
		if end != "" {
			parts = append(parts, end)
		}
	}

	if ev.EndDate == "" && o.ShowEndTime && ev.EndTime != "" {
		if t := Clock(ev.EndTime, o.TimeFormat); t != "" {
			parts = append(parts, t)
		}
	}

	return strings.Join(parts, " - ")
}
