// Package grid builds the fixed 6x7 month grid the calendar renders into.
// The grid always holds 42 cells regardless of month length so the layout
// height stays constant; leading and trailing cells belong to the adjacent
// months and are flagged as such.
package grid

import "time"

// FirstDay selects which weekday starts the week.
type FirstDay string

const (
	Monday FirstDay = "monday"
	Sunday FirstDay = "sunday"
)

// Cell is a single day slot in the grid.
type Cell struct {
	Date         time.Time
	ISO          string
	CurrentMonth bool
}

// Week is one grid row of seven consecutive days.
type Week [7]Cell

// First returns the ISO date of the week's first day.
func (w Week) First() string { return w[0].ISO }

// Last returns the ISO date of the week's last day.
func (w Week) Last() string { return w[6].ISO }

// Grid is the full six-week month view.
type Grid [6]Week

// Build returns the grid for the given year/month. Month values outside
// 1..12 roll into adjacent years via time.Date normalization, so callers can
// pass year=2024, month=13 and get January 2025.
func Build(year int, month time.Month, firstDay FirstDay) Grid {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Offset of day 1 within the week row. Week starts on Monday by
	// default, so Sunday (weekday 0) wraps to the last column.
	offset := int(firstOfMonth.Weekday())
	if firstDay != Sunday {
		if offset == 0 {
			offset = 6
		} else {
			offset--
		}
	}

	var g Grid
	start := firstOfMonth.AddDate(0, 0, -offset)
	targetMonth := firstOfMonth.Month()
	for i := 0; i < 42; i++ {
		d := start.AddDate(0, 0, i)
		g[i/7][i%7] = Cell{
			Date:         d,
			ISO:          d.Format("2006-01-02"),
			CurrentMonth: d.Month() == targetMonth,
		}
	}
	return g
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the inclusive ISO bounds of a month.
func MonthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}
