package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventolabs/ventocal/internal/event"
	"github.com/ventolabs/ventocal/internal/grid"
)

// Week of Mon 2024-02-26 .. Sun 2024-03-03.
func firstWeekMarch2024() grid.Week {
	return grid.Build(2024, time.March, grid.Monday)[0]
}

func TestForWeekSingleBar(t *testing.T) {
	week := firstWeekMarch2024()
	events := []event.Event{
		{ID: 1, StartDate: "2024-03-01", EndDate: "2024-03-03"},
	}

	got := ForWeek(week, events)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].StartCol) // Friday
	assert.Equal(t, 3, got[0].Span)
	assert.Equal(t, 0, got[0].Slot)
}

func TestForWeekClipsToWeek(t *testing.T) {
	week := firstWeekMarch2024()
	events := []event.Event{
		// Starts before the week, ends after it: spans the full row.
		{ID: 1, StartDate: "2024-02-20", EndDate: "2024-03-10"},
	}

	got := ForWeek(week, events)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].StartCol)
	assert.Equal(t, 7, got[0].Span)
}

func TestForWeekDeterministicOrdering(t *testing.T) {
	week := firstWeekMarch2024()
	shuffled := []event.Event{
		{ID: 9, StartDate: "2024-03-02", EndDate: "2024-03-03"},
		{ID: 2, StartDate: "2024-03-01", EndDate: "2024-03-02"},
		{ID: 1, StartDate: "2024-03-01", EndDate: "2024-03-03"},
	}

	got := ForWeek(week, shuffled)
	require.Len(t, got, 3)
	// Start date ascending, id breaks the tie.
	assert.Equal(t, int64(1), got[0].Event.ID)
	assert.Equal(t, int64(2), got[1].Event.ID)
	assert.Equal(t, int64(9), got[2].Event.ID)
	assert.Equal(t, []int{0, 1, 2}, []int{got[0].Slot, got[1].Slot, got[2].Slot})
}

func TestForWeekSlotWrapsAtStackRows(t *testing.T) {
	week := firstWeekMarch2024()
	events := []event.Event{
		{ID: 1, StartDate: "2024-02-26", EndDate: "2024-03-03"},
		{ID: 2, StartDate: "2024-02-26", EndDate: "2024-03-03"},
		{ID: 3, StartDate: "2024-02-26", EndDate: "2024-03-03"},
		{ID: 4, StartDate: "2024-02-26", EndDate: "2024-03-03"},
	}

	got := ForWeek(week, events)
	require.Len(t, got, 4)
	// Round-robin: the fourth bar reuses slot 0.
	assert.Equal(t, 0, got[3].Slot)
}

func TestForWeekIgnoresPointEventsAndMisses(t *testing.T) {
	week := firstWeekMarch2024()
	events := []event.Event{
		{ID: 1, StartDate: "2024-03-01"},                        // point event
		{ID: 2, StartDate: "2024-03-20", EndDate: "2024-03-22"}, // other week
		{ID: 3, StartDate: "2024-03-03", EndDate: "2024-03-03"}, // one-day bar
	}

	got := ForWeek(week, events)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].Event.ID)
	assert.Equal(t, 6, got[0].StartCol)
	assert.Equal(t, 1, got[0].Span)
}

func TestSpanConservationAcrossWeeks(t *testing.T) {
	// The sum of per-week spans equals the event's total day count.
	g := grid.Build(2024, time.March, grid.Monday)
	ev := event.Event{ID: 1, StartDate: "2024-03-06", EndDate: "2024-03-19"}

	total := 0
	for _, week := range g {
		for _, p := range ForWeek(week, []event.Event{ev}) {
			total += p.Span
		}
	}
	assert.Equal(t, ev.DurationDays(), total)
	assert.Equal(t, 14, total)
}
