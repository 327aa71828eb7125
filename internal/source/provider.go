// Package source manages event data loading: a client for the host's event
// provider endpoint and a windowed cache that avoids refetching on every
// month navigation.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ventolabs/ventocal/internal/event"
	"github.com/ventolabs/ventocal/internal/sanitize"
)

// Provider serves events overlapping an inclusive ISO date range. The
// provider performs the overlap filtering, including events spanning the
// entire queried range.
type Provider interface {
	Events(ctx context.Context, start, end string) ([]event.Event, error)
}

// HTTPProvider fetches events from the host's REST endpoint:
// GET {base}/events?start=YYYY-MM-DD&end=YYYY-MM-DD.
type HTTPProvider struct {
	client *resty.Client
}

// NewHTTPProvider creates a provider client for the given base URL.
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPProvider{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Events fetches all events overlapping [start, end]. Missing colors are
// filled with the default so downstream rendering never sees an empty one,
// and titles and permalinks are scrubbed before anything enters the cache.
func (p *HTTPProvider) Events(ctx context.Context, start, end string) ([]event.Event, error) {
	var events []event.Event
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("start", start).
		SetQueryParam("end", end).
		SetResult(&events).
		Get("/events")
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch events: provider returned %s", resp.Status())
	}

	for i := range events {
		events[i] = sanitize.Event(events[i])
		if events[i].Color == "" {
			events[i].Color = event.DefaultColor
		}
	}

	slog.Debug("fetched events",
		slog.String("start", start),
		slog.String("end", end),
		slog.Int("count", len(events)),
	)
	return events, nil
}
