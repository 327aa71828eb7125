package config

import "regexp"

// View selects which derived view model a calendar exposes.
const (
	ViewCalendar = "calendar"
	ViewList     = "list"
)

// Recognized layout hints. Presentation-only; no behavioral effect.
const (
	LayoutBasic   = "basic"
	LayoutCompact = "compact"
	LayoutClean   = "clean"
)

// Options are the per-calendar display settings supplied by the host.
// Invalid values are not errors: Normalize resets them to the documented
// defaults silently.
type Options struct {
	ViewType       string `yaml:"view_type" json:"view_type"`
	FirstDayOfWeek string `yaml:"first_day_of_week" json:"first_day_of_week"`
	InitialMonth   string `yaml:"initial_month" json:"initial_month"`
	Layout         string `yaml:"layout" json:"layout"`

	ShowStartDate *bool `yaml:"show_start_date" json:"show_start_date"`
	ShowEndDate   *bool `yaml:"show_end_date" json:"show_end_date"`
	ShowStartTime *bool `yaml:"show_start_time" json:"show_start_time"`
	ShowEndTime   *bool `yaml:"show_end_time" json:"show_end_time"`

	ShowAddToCalendarGoogle bool `yaml:"show_add_to_calendar_google" json:"show_add_to_calendar_google"`
	ShowAddToCalendarApple  bool `yaml:"show_add_to_calendar_apple" json:"show_add_to_calendar_apple"`

	DateFormat string `yaml:"date_format" json:"date_format"`
	TimeFormat string `yaml:"time_format" json:"time_format"`
}

// DefaultOptions returns Options with every field at its documented default.
func DefaultOptions() Options {
	o := Options{}
	o.Normalize()
	return o
}

var initialMonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Normalize resets unrecognized values to defaults in place. The show
// toggles use pointers so an absent YAML key is distinguishable from an
// explicit false; Normalize fills absent ones with their defaults
// (start/end date on, times off).
func (o *Options) Normalize() {
	if o.ViewType != ViewCalendar && o.ViewType != ViewList {
		o.ViewType = ViewCalendar
	}
	if o.FirstDayOfWeek != "monday" && o.FirstDayOfWeek != "sunday" {
		o.FirstDayOfWeek = "monday"
	}
	if o.InitialMonth != "" && !initialMonthPattern.MatchString(o.InitialMonth) {
		o.InitialMonth = ""
	}
	switch o.Layout {
	case LayoutBasic, LayoutCompact, LayoutClean:
	default:
		o.Layout = LayoutBasic
	}
	if o.ShowStartDate == nil {
		o.ShowStartDate = boolPtr(true)
	}
	if o.ShowEndDate == nil {
		o.ShowEndDate = boolPtr(true)
	}
	if o.ShowStartTime == nil {
		o.ShowStartTime = boolPtr(false)
	}
	if o.ShowEndTime == nil {
		o.ShowEndTime = boolPtr(false)
	}
	if o.DateFormat == "" {
		o.DateFormat = "F j, Y"
	}
	if o.TimeFormat == "" {
		o.TimeFormat = "g:i a"
	}
}

func boolPtr(b bool) *bool { return &b }
