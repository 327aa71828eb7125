package event

// Index answers range queries over the currently loaded events. It holds a
// plain slice: the loaded window is at most a year of events, so linear
// scans per cell/week are cheap and keep semantics identical to the
// provider's ordering.
type Index struct {
	events []Event
}

// NewIndex creates an Index over the given events. The slice is not copied;
// the caller must treat it as immutable once handed over.
func NewIndex(events []Event) *Index {
	return &Index{events: events}
}

// Events returns the underlying slice.
func (ix *Index) Events() []Event {
	return ix.events
}

// OnDay returns point events whose start date equals the given ISO day.
// Bar-eligible events are excluded: they render as bars and would otherwise
// show twice.
func (ix *Index) OnDay(iso string) []Event {
	var out []Event
	for _, e := range ix.events {
		if !e.IsBar() && e.StartDate == iso {
			out = append(out, e)
		}
	}
	return out
}

// CoveringDay returns every event, point or bar, whose inclusive date range
// contains the given ISO day. Used for day-cell selection.
func (ix *Index) CoveringDay(iso string) []Event {
	var out []Event
	for _, e := range ix.events {
		if e.EndDate == "" {
			if e.StartDate == iso {
				out = append(out, e)
			}
			continue
		}
		if e.StartDate <= iso && iso <= e.EndDate {
			out = append(out, e)
		}
	}
	return out
}

// InWeek returns bar-eligible events whose [start, end] intersects the
// inclusive week bounds.
func (ix *Index) InWeek(firstISO, lastISO string) []Event {
	var out []Event
	for _, e := range ix.events {
		if !e.IsBar() {
			continue
		}
		if e.StartDate <= lastISO && e.EndDate >= firstISO {
			out = append(out, e)
		}
	}
	return out
}

// InMonth returns events intersecting the inclusive month bounds, treating a
// missing end date as equal to the start date. Used by the list view.
func (ix *Index) InMonth(startISO, endISO string) []Event {
	var out []Event
	for _, e := range ix.events {
		if e.StartDate <= endISO && e.EffectiveEnd() >= startISO {
			out = append(out, e)
		}
	}
	return out
}

// ByID returns the event with the given id, or nil.
func (ix *Index) ByID(id int64) *Event {
	for i := range ix.events {
		if ix.events[i].ID == id {
			return &ix.events[i]
		}
	}
	return nil
}
