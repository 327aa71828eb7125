package source

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ventolabs/ventocal/internal/event"
)

// windowMonths is how far the fetch window extends on each side of the
// visible month, so nearby navigation is served from cache.
const windowMonths = 6

// DataSource caches a rolling window of events around the visible month.
// The cache and its loaded range are replaced atomically under one lock;
// readers never observe a half-applied fetch. Each fetch carries a token so
// a response that arrives after a newer navigation superseded it is dropped
// instead of overwriting the newer window.
type DataSource struct {
	provider Provider

	mu      sync.Mutex
	events  []event.Event
	loaded  *event.Range
	pending string
}

// New creates a DataSource over the given provider.
func New(provider Provider) *DataSource {
	return &DataSource{provider: provider}
}

// Window returns the inclusive fetch window centered on a month: the first
// day of the month windowMonths back through the last day of the month
// windowMonths ahead.
func Window(year int, month time.Month) (string, string) {
	start := time.Date(year, month-windowMonths, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month+windowMonths+1, 0, 0, 0, 0, 0, time.UTC)
	return start.Format(event.ISODate), end.Format(event.ISODate)
}

// EnsureLoaded returns events covering the given visible month, fetching a
// fresh window only when the month falls outside the loaded range. On fetch
// failure the cache and range are cleared and the error is returned; the
// caller retries by navigating again. A stale response (superseded by a
// newer call) is discarded and the current cache returned instead.
func (s *DataSource) EnsureLoaded(ctx context.Context, year int, month time.Month) ([]event.Event, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(event.ISODate)
	monthEnd := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Format(event.ISODate)

	s.mu.Lock()
	if s.loaded != nil && s.loaded.Contains(monthStart, monthEnd) {
		events := s.events
		s.mu.Unlock()
		return events, nil
	}

	winStart, winEnd := Window(year, month)
	token := uuid.NewString()
	s.pending = token
	s.mu.Unlock()

	events, err := s.provider.Events(ctx, winStart, winEnd)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != token {
		// A newer navigation owns the cache now; keep its view.
		slog.Debug("dropping stale fetch result",
			slog.String("start", winStart), slog.String("end", winEnd))
		return s.events, nil
	}
	s.pending = ""

	if err != nil {
		s.events = nil
		s.loaded = nil
		return nil, err
	}

	s.events = events
	s.loaded = &event.Range{Start: winStart, End: winEnd}
	return events, nil
}

// Loaded returns a copy of the currently loaded range, or nil when nothing
// is cached.
func (s *DataSource) Loaded() *event.Range {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded == nil {
		return nil
	}
	r := *s.loaded
	return &r
}
