// Package calendar owns the visible-month state machine: it drives
// navigation, orchestrates data loading through the source package, and
// derives the view model the rendering layer consumes. One Controller
// instance exists per configured calendar; there is no process-wide state.
package calendar

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ventolabs/ventocal/internal/config"
	"github.com/ventolabs/ventocal/internal/event"
	"github.com/ventolabs/ventocal/internal/source"
)

// State is the controller lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Direction is a navigation action.
type Direction string

const (
	DirPrev  Direction = "prev"
	DirNext  Direction = "next"
	DirToday Direction = "today"
)

// Selection holds the day the user clicked and the events on it, the
// modal-equivalent state. Empty days never produce a selection.
type Selection struct {
	Date   string
	Events []event.Event
}

// Controller is the calendar state machine. All methods are safe for
// concurrent use; the host serializes UI actions but HTTP handlers may not.
type Controller struct {
	name string
	opts config.Options
	src  *source.DataSource
	now  func() time.Time

	mu        sync.Mutex
	state     State
	year      int
	month     time.Month
	index     *event.Index
	selection *Selection
}

// New creates a Controller with the given options and data source. Options
// are normalized first, so invalid values fall back to defaults silently.
// The visible month starts at the configured initial month when it is a
// well-formed "YYYY-MM" with year 1900-2100; otherwise at the current month.
func New(name string, opts config.Options, src *source.DataSource) *Controller {
	opts.Normalize()
	c := &Controller{
		name:  name,
		opts:  opts,
		src:   src,
		now:   time.Now,
		state: StateIdle,
		index: event.NewIndex(nil),
	}
	c.year, c.month = c.initialMonth()
	return c
}

// initialMonth resolves the starting visible month.
func (c *Controller) initialMonth() (int, time.Month) {
	if c.opts.InitialMonth != "" {
		parts := strings.SplitN(c.opts.InitialMonth, "-", 2)
		year, yerr := strconv.Atoi(parts[0])
		month, merr := strconv.Atoi(parts[1])
		if yerr == nil && merr == nil &&
			year >= 1900 && year <= 2100 && month >= 1 && month <= 12 {
			return year, time.Month(month)
		}
	}
	now := c.now()
	return now.Year(), now.Month()
}

// Name returns the instance name this controller serves.
func (c *Controller) Name() string {
	return c.name
}

// Options returns the normalized options this controller was built with.
func (c *Controller) Options() config.Options {
	return c.opts
}

// Visible returns the currently visible year and month.
func (c *Controller) Visible() (int, time.Month) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.year, c.month
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Load performs the initial data load for the visible month. Idempotent:
// a month already inside the loaded window costs no fetch.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.state = StateLoading
	c.mu.Unlock()
	return c.refresh(ctx)
}

// Navigate moves the visible month and reloads data as needed. The month
// changes before the fetch runs, so the new grid is renderable immediately;
// event markers follow once data resolves. Any open selection closes.
func (c *Controller) Navigate(ctx context.Context, dir Direction) error {
	c.mu.Lock()
	switch dir {
	case DirPrev:
		c.year, c.month = normalizeMonth(c.year, c.month-1)
	case DirNext:
		c.year, c.month = normalizeMonth(c.year, c.month+1)
	case DirToday:
		now := c.now()
		c.year, c.month = now.Year(), now.Month()
	default:
		c.mu.Unlock()
		return fmt.Errorf("unknown navigation direction %q", dir)
	}
	c.state = StateLoading
	c.selection = nil
	c.mu.Unlock()

	return c.refresh(ctx)
}

// refresh loads events for the visible month and settles the state machine.
// A fetch failure yields an empty event set: the grid still renders, day
// cells just show no events. No automatic retry.
func (c *Controller) refresh(ctx context.Context) error {
	c.mu.Lock()
	year, month := c.year, c.month
	c.mu.Unlock()

	events, err := c.src.EnsureLoaded(ctx, year, month)

	c.mu.Lock()
	defer c.mu.Unlock()
	if year != c.year || month != c.month {
		// A later navigation already owns the state; leave it alone.
		return nil
	}
	if err != nil {
		c.state = StateError
		c.index = event.NewIndex(nil)
		return err
	}
	c.state = StateReady
	c.index = event.NewIndex(events)
	return nil
}

// SelectDay opens the day selection for the given ISO date when the day has
// any events (dots or bars). Clicking an empty day is a no-op and reports
// false.
func (c *Controller) SelectDay(iso string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	events := c.index.CoveringDay(iso)
	if len(events) == 0 {
		return false
	}
	c.selection = &Selection{Date: iso, Events: events}
	return true
}

// CloseSelection clears the day selection.
func (c *Controller) CloseSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection = nil
}

// EventByID returns a loaded event by id, or nil when it is not in the
// cached window.
func (c *Controller) EventByID(id int64) *event.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index.ByID(id)
}

// normalizeMonth rolls month overflow/underflow into the year.
func normalizeMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
