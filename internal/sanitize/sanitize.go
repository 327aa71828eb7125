// Package sanitize scrubs event fields arriving from the upstream provider.
// Uses bluemonday to strip any HTML markup from titles before they reach the
// view layer, and rejects permalinks that are not plain http(s) URLs.
//
// Provider payloads are untrusted input. Every event MUST pass through Event
// before it enters the cache.
package sanitize

import (
	"html"
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/ventolabs/ventocal/internal/event"
)

// policy is the shared strip-everything policy. Titles are plain text; any
// markup the provider sends is removed, not escaped.
var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Title strips all HTML from a provider-supplied title and trims whitespace.
// Titles are plain text everywhere downstream (JSON, Google link, ICS
// SUMMARY), so the entity escaping bluemonday applies is undone: "Food &
// Wine" stays "Food & Wine".
func Title(input string) string {
	if input == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(getPolicy().Sanitize(input)))
}

// Permalink returns the URL unchanged when it parses as absolute http or
// https, and "" otherwise. javascript: and data: schemes never make it into
// a rendered link.
func Permalink(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "http", "https":
		return raw
	default:
		return ""
	}
}

// Event returns a copy of e with its untrusted fields scrubbed.
func Event(e event.Event) event.Event {
	e.Title = Title(e.Title)
	e.Permalink = Permalink(e.Permalink)
	return e
}
