// Package event defines the event record served by the external provider
// and the in-memory index the calendar engine queries. Events are read-only
// to the engine; the provider owns them. All date math in this package works
// on ISO "YYYY-MM-DD" strings compared lexicographically, which is exact for
// that fixed-width zero-padded format.
package event

import "time"

// DefaultColor is used when the provider sends no color for an event.
const DefaultColor = "#2271b1"

// ISODate is the wire format for calendar dates.
const ISODate = "2006-01-02"

// Event is a single calendar entry as returned by the provider.
// EndDate empty means a point event: it renders as a dot on StartDate and
// never participates in bar layout. EndDate present (even when equal to
// StartDate) makes the event bar-eligible.
type Event struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Color     string `json:"color"`
	Permalink string `json:"permalink,omitempty"`
}

// IsBar reports whether the event renders as a horizontal bar.
func (e *Event) IsBar() bool {
	return e.EndDate != ""
}

// EffectiveEnd returns the end date, or the start date for point events.
func (e *Event) EffectiveEnd() string {
	if e.EndDate == "" {
		return e.StartDate
	}
	return e.EndDate
}

// DurationDays returns the inclusive number of days the event covers.
// Returns 0 when either bound fails to parse.
func (e *Event) DurationDays() int {
	start, err := time.Parse(ISODate, e.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(ISODate, e.EffectiveEnd())
	if err != nil {
		return 0
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 0
	}
	return days
}

// Range is an inclusive span of calendar dates, both bounds ISO strings.
// The data source uses it to track which window is currently cached.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether [start, end] lies fully inside the range.
func (r Range) Contains(start, end string) bool {
	return r.Start <= start && end <= r.End
}
