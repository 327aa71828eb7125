package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/ventolabs/ventocal/internal/config"
	"github.com/ventolabs/ventocal/internal/event"
	"github.com/ventolabs/ventocal/internal/export"
	"github.com/ventolabs/ventocal/internal/format"
	"github.com/ventolabs/ventocal/internal/grid"
	"github.com/ventolabs/ventocal/internal/layout"
)

// ViewModel is everything the rendering layer needs for one frame:
// the 6-week grid with per-day dots, per-week bar placements, the list-view
// events, and the loading/error/selection state. It is recomputed from
// controller state on demand; nothing in it is retained or mutated.
type ViewModel struct {
	State    State  `json:"state"`
	ViewType string `json:"view_type"`
	Layout   string `json:"layout"`

	Year  int    `json:"year"`
	Month int    `json:"month"`
	Title string `json:"title"`

	WeekdayHeader []string    `json:"weekday_header"`
	Weeks         []WeekView  `json:"weeks,omitempty"`
	ListEvents    []EventView `json:"list_events,omitempty"`

	Selection *SelectionView `json:"selection,omitempty"`
}

// WeekView is one grid row plus the bars laid across it.
type WeekView struct {
	Days []DayView `json:"days"`
	Bars []BarView `json:"bars,omitempty"`
}

// DayView is a single day cell.
type DayView struct {
	Date         string      `json:"date"`
	Day          int         `json:"day"`
	CurrentMonth bool        `json:"current_month"`
	Today        bool        `json:"today"`
	Events       []EventView `json:"events,omitempty"`
}

// BarView is a positioned multi-day bar segment.
type BarView struct {
	Event    EventView `json:"event"`
	StartCol int       `json:"start_col"`
	Span     int       `json:"span"`
	Slot     int       `json:"slot"`
}

// EventView is an event prepared for display: formatted times, the summary
// line, and export links when the matching toggles are enabled.
type EventView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Color     string `json:"color"`
	Permalink string `json:"permalink,omitempty"`
	Time      string `json:"time,omitempty"`
	Summary   string `json:"summary,omitempty"`
	GoogleURL string `json:"google_url,omitempty"`
	ICSPath   string `json:"ics_path,omitempty"`
}

// SelectionView is the open day modal state.
type SelectionView struct {
	Date   string      `json:"date"`
	Title  string      `json:"title"`
	Events []EventView `json:"events"`
}

// ViewModel derives the current view model. It is a pure function of the
// controller state: calling it twice without a state transition yields
// deep-equal results.
func (c *Controller) ViewModel() ViewModel {
	c.mu.Lock()
	defer c.mu.Unlock()

	vm := ViewModel{
		State:         c.state,
		ViewType:      c.opts.ViewType,
		Layout:        c.opts.Layout,
		Year:          c.year,
		Month:         int(c.month),
		Title:         format.MonthTitle(c.year, c.month),
		WeekdayHeader: weekdayHeader(grid.FirstDay(c.opts.FirstDayOfWeek)),
	}

	today := c.now().Format(event.ISODate)

	if c.opts.ViewType == config.ViewList {
		start, end := grid.MonthBounds(c.year, c.month)
		events := c.index.InMonth(start, end)
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].StartDate != events[j].StartDate {
				return events[i].StartDate < events[j].StartDate
			}
			return events[i].ID < events[j].ID
		})
		vm.ListEvents = c.eventViews(events, true)
	} else {
		g := grid.Build(c.year, c.month, grid.FirstDay(c.opts.FirstDayOfWeek))
		vm.Weeks = make([]WeekView, 0, len(g))
		for _, week := range g {
			wv := WeekView{Days: make([]DayView, 0, 7)}
			for _, cell := range week {
				wv.Days = append(wv.Days, DayView{
					Date:         cell.ISO,
					Day:          cell.Date.Day(),
					CurrentMonth: cell.CurrentMonth,
					Today:        cell.ISO == today,
					Events:       c.eventViews(c.index.OnDay(cell.ISO), false),
				})
			}
			for _, p := range layout.ForWeek(week, c.index.InWeek(week.First(), week.Last())) {
				wv.Bars = append(wv.Bars, BarView{
					Event:    c.eventView(p.Event, false),
					StartCol: p.StartCol,
					Span:     p.Span,
					Slot:     p.Slot,
				})
			}
			vm.Weeks = append(vm.Weeks, wv)
		}
	}

	if c.selection != nil {
		vm.Selection = &SelectionView{
			Date:   c.selection.Date,
			Title:  format.ISO(c.selection.Date, c.opts.DateFormat),
			Events: c.eventViews(c.selection.Events, true),
		}
	}

	return vm
}

// eventViews maps events to their display form. detailed adds the summary
// line and export links; day-cell dots only need title, color, and time.
func (c *Controller) eventViews(events []event.Event, detailed bool) []EventView {
	if len(events) == 0 {
		return nil
	}
	out := make([]EventView, 0, len(events))
	for _, e := range events {
		out = append(out, c.eventView(e, detailed))
	}
	return out
}

func (c *Controller) eventView(e event.Event, detailed bool) EventView {
	v := EventView{
		ID:        e.ID,
		Title:     e.Title,
		Color:     e.Color,
		Permalink: e.Permalink,
	}
	if e.StartTime != "" {
		v.Time = format.Clock(e.StartTime, c.opts.TimeFormat)
	}
	if !detailed {
		return v
	}
	v.Summary = format.EventSummary(e, format.SummaryOptions{
		ShowStartDate: *c.opts.ShowStartDate,
		ShowEndDate:   *c.opts.ShowEndDate,
		ShowStartTime: *c.opts.ShowStartTime,
		ShowEndTime:   *c.opts.ShowEndTime,
		DateFormat:    c.opts.DateFormat,
		TimeFormat:    c.opts.TimeFormat,
	})
	if c.opts.ShowAddToCalendarGoogle {
		if link, err := export.GoogleLink(e); err == nil {
			v.GoogleURL = link
		}
	}
	if c.opts.ShowAddToCalendarApple {
		v.ICSPath = fmt.Sprintf("/calendars/%s/events/%d/ics", c.name, e.ID)
	}
	return v
}

// weekdayHeader returns the one-letter column headers, rotated so the
// configured first day leads.
func weekdayHeader(firstDay grid.FirstDay) []string {
	start := time.Sunday
	if firstDay != grid.Sunday {
		start = time.Monday
	}
	header := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		name := format.DayName(time.Weekday((int(start) + i) % 7))
		header = append(header, name[:1])
	}
	return header
}
