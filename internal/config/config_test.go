package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Defaults only apply to unset keys, so shed anything the ambient
	// environment carries. t.Setenv snapshots the old value for restore.
	for _, key := range []string{
		"ENV", "PORT", "LOG_LEVEL", "CALENDARS_FILE",
		"PROVIDER_BASE_URL", "PROVIDER_TIMEOUT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:9090", cfg.Provider.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Provider.Timeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("PROVIDER_BASE_URL", "https://events.example.com/api/")
	t.Setenv("PROVIDER_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "https://events.example.com/api", cfg.Provider.BaseURL, "trailing slash trimmed")
	assert.Equal(t, 3*time.Second, cfg.Provider.Timeout)
	assert.False(t, cfg.IsDevelopment())
}

func TestOptionsNormalizeDefaults(t *testing.T) {
	o := Options{}
	o.Normalize()

	assert.Equal(t, ViewCalendar, o.ViewType)
	assert.Equal(t, "monday", o.FirstDayOfWeek)
	assert.Equal(t, LayoutBasic, o.Layout)
	assert.True(t, *o.ShowStartDate)
	assert.True(t, *o.ShowEndDate)
	assert.False(t, *o.ShowStartTime)
	assert.False(t, *o.ShowEndTime)
	assert.Equal(t, "F j, Y", o.DateFormat)
	assert.Equal(t, "g:i a", o.TimeFormat)
}

func TestOptionsNormalizeInvalidValues(t *testing.T) {
	o := Options{
		ViewType:       "agenda",
		FirstDayOfWeek: "wednesday",
		InitialMonth:   "March 2024",
		Layout:         "fancy",
	}
	o.Normalize()

	// Invalid input falls back silently, never errors.
	assert.Equal(t, ViewCalendar, o.ViewType)
	assert.Equal(t, "monday", o.FirstDayOfWeek)
	assert.Equal(t, "", o.InitialMonth)
	assert.Equal(t, LayoutBasic, o.Layout)
}

func TestOptionsNormalizeKeepsExplicitValues(t *testing.T) {
	off := false
	o := Options{
		ViewType:       ViewList,
		FirstDayOfWeek: "sunday",
		InitialMonth:   "2024-03",
		ShowStartDate:  &off,
		DateFormat:     "d/m/Y",
	}
	o.Normalize()

	assert.Equal(t, ViewList, o.ViewType)
	assert.Equal(t, "sunday", o.FirstDayOfWeek)
	assert.Equal(t, "2024-03", o.InitialMonth)
	assert.False(t, *o.ShowStartDate, "explicit false is not overwritten")
	assert.Equal(t, "d/m/Y", o.DateFormat)
}

func TestLoadInstancesMissingFile(t *testing.T) {
	instances, err := LoadInstances(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, "default", instances[0].Name)
	assert.Equal(t, ViewCalendar, instances[0].Options.ViewType)
}

func TestLoadInstancesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendars.yaml")
	doc := `
calendars:
  - name: community
    options:
      view_type: list
      first_day_of_week: sunday
      initial_month: "2024-03"
      show_add_to_calendar_google: true
      time_format: "H:i"
  - name: club
    options:
      view_type: nonsense
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	instances, err := LoadInstances(path)
	require.NoError(t, err)
	require.Len(t, instances, 2)

	community := instances[0]
	assert.Equal(t, "community", community.Name)
	assert.Equal(t, ViewList, community.Options.ViewType)
	assert.Equal(t, "sunday", community.Options.FirstDayOfWeek)
	assert.Equal(t, "2024-03", community.Options.InitialMonth)
	assert.True(t, community.Options.ShowAddToCalendarGoogle)
	assert.Equal(t, "H:i", community.Options.TimeFormat)
	assert.True(t, *community.Options.ShowStartDate, "unset toggle gets default")

	club := instances[1]
	assert.Equal(t, ViewCalendar, club.Options.ViewType, "invalid value normalized")
}

func TestLoadInstancesDuplicateName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendars.yaml")
	doc := "calendars:\n  - name: a\n  - name: a\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadInstances(path)
	assert.Error(t, err)
}
