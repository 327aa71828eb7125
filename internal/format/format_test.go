package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ventolabs/ventocal/internal/event"
)

func TestDatePatterns(t *testing.T) {
	d := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		pattern string
		want    string
	}{
		{"F j, Y", "February 29, 2024"},
		{"M j", "Feb 29"},
		{"d/m/Y", "29/02/2024"},
		{"n-j-y", "2-29-24"},
		{"Y-m-d", "2024-02-29"},
		{`\Y Y`, "Y 2024"},               // escaped token stays literal
		{"j \\o\\f F", "29 of February"}, // escaped letters in "of"
		{"Q j", "Q 29"},                  // unknown rune passes through
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(d, tt.pattern))
		})
	}
}

func TestDateRoundTrip(t *testing.T) {
	// Formatting a parsed ISO string matches formatting the time directly.
	d := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	iso := d.Format("2006-01-02")
	for _, pattern := range []string{"F j, Y", "d.m.Y", "M y"} {
		assert.Equal(t, Date(d, pattern), ISO(iso, pattern))
	}
}

func TestISOMalformed(t *testing.T) {
	assert.Equal(t, "", ISO("not-a-date", "F j, Y"))
	assert.Equal(t, "", ISO("", "F j, Y"))
	assert.Equal(t, "", ISO("2024-13-40", "F j, Y"))
}

func TestClockPatterns(t *testing.T) {
	tests := []struct {
		clock   string
		pattern string
		want    string
	}{
		{"14:30", "g:i a", "2:30 pm"},
		{"14:30", "H:i", "14:30"},
		{"09:05", "G:i", "9:05"},
		{"00:15", "g:i A", "12:15 AM"},
		{"12:00", "g:i a", "12:00 pm"},
		{"23:59:07", "H:i:s", "23:59:07"},
		{"07:45", "h\\h i\\m", "07h 45m"},
		{"14:30", "", ""},
		{"", "H:i", ""},
		{"25:00", "H:i", ""},
		{"14", "H:i", ""},
		{"aa:bb", "H:i", ""},
	}
	for _, tt := range tests {
		t.Run(tt.clock+"/"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, Clock(tt.clock, tt.pattern))
		})
	}
}

func TestMonthTitle(t *testing.T) {
	assert.Equal(t, "March 2024", MonthTitle(2024, time.March))
	assert.Equal(t, "December 1999", MonthTitle(1999, time.December))
}

func TestEventSummary(t *testing.T) {
	defaults := SummaryOptions{
		ShowStartDate: true,
		ShowEndDate:   true,
		DateFormat:    "F j, Y",
		TimeFormat:    "g:i a",
	}

	multiDay := event.Event{StartDate: "2024-03-01", EndDate: "2024-03-03"}
	assert.Equal(t, "March 1, 2024 - March 3, 2024", EventSummary(multiDay, defaults))

	// Same-day bar: end date suppressed when equal to start.
	oneDay := event.Event{StartDate: "2024-03-01", EndDate: "2024-03-01"}
	assert.Equal(t, "March 1, 2024", EventSummary(oneDay, defaults))

	// Times appended when enabled.
	timed := defaults
	timed.ShowStartTime = true
	timed.ShowEndTime = true
	ev := event.Event{
		StartDate: "2024-03-01", EndDate: "2024-03-03",
		StartTime: "14:30", EndTime: "16:00",
	}
	assert.Equal(t, "March 1, 2024 2:30 pm - March 3, 2024 4:00 pm", EventSummary(ev, timed))

	// Point event with an end time and no end date.
	point := event.Event{StartDate: "2024-02-29", StartTime: "14:30", EndTime: "15:00"}
	assert.Equal(t, "February 29, 2024 2:30 pm - 3:00 pm", EventSummary(point, timed))

	// Everything disabled.
	assert.Equal(t, "", EventSummary(ev, SummaryOptions{DateFormat: "F j, Y", TimeFormat: "g:i a"}))

	// Malformed date drops silently, valid time still renders.
	broken := event.Event{StartDate: "soon", StartTime: "14:30"}
	assert.Equal(t, "2:30 pm", EventSummary(broken, timed))
}
