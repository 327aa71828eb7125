// Package layout computes horizontal bar geometry for multi-day events
// within a single grid week: the starting column, the column span, and the
// vertical stack slot each bar occupies.
package layout

import (
	"sort"

	"github.com/ventolabs/ventocal/internal/event"
	"github.com/ventolabs/ventocal/internal/grid"
)

// StackRows is the number of vertical bar rows per week. Slots are handed
// out round-robin modulo this constant, matching the original presentation:
// more than StackRows simultaneously overlapping bars may visually collide.
const StackRows = 3

// Placement positions one event's bar segment within a week.
type Placement struct {
	Event    event.Event `json:"event"`
	StartCol int         `json:"start_col"`
	Span     int         `json:"span"`
	Slot     int         `json:"slot"`
}

// ForWeek computes bar placements for the given week. Only bar-eligible
// events are placed; callers normally pass the result of Index.InWeek.
// Events are ordered by start date then id before slots are assigned, so
// placement is deterministic regardless of provider ordering.
func ForWeek(week grid.Week, events []event.Event) []Placement {
	bars := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.IsBar() {
			bars = append(bars, e)
		}
	}

	sort.Slice(bars, func(i, j int) bool {
		if bars[i].StartDate != bars[j].StartDate {
			return bars[i].StartDate < bars[j].StartDate
		}
		return bars[i].ID < bars[j].ID
	})

	var placements []Placement
	for _, e := range bars {
		first, last := -1, -1
		for col, cell := range week {
			if e.StartDate <= cell.ISO && cell.ISO <= e.EndDate {
				if first == -1 {
					first = col
				}
				last = col
			}
		}
		if first == -1 {
			// Event does not touch this week at all.
			continue
		}
		placements = append(placements, Placement{
			Event:    e,
			StartCol: first,
			Span:     last - first + 1,
			Slot:     len(placements) % StackRows,
		})
	}
	return placements
}
