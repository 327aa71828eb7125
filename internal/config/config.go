// Package config handles loading application configuration from environment
// variables and the calendar instance definitions from a YAML file. All
// config is centralized here so no other package reads env vars directly.
// Sensible defaults are provided for development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Populated from environment
// variables at startup and passed to other packages via dependency injection.
type Config struct {
	// Env is the runtime environment: "development" or "production".
	Env string

	// Port is the HTTP listen port (default: 8080).
	Port int

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	LogLevel string

	// Provider holds event provider connection settings.
	Provider ProviderConfig

	// CalendarsFile is the path to the YAML file defining calendar
	// instances (default: "calendars.yaml"). Missing file means a single
	// "default" instance with default options.
	CalendarsFile string
}

// ProviderConfig holds the event provider endpoint settings.
type ProviderConfig struct {
	// BaseURL is the provider root; events are fetched from
	// {BaseURL}/events?start=...&end=....
	BaseURL string

	// Timeout bounds a single fetch request.
	Timeout time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is applied first when
// present, so local development needs no exported variables.
func Load() (*Config, error) {
	// Missing .env is fine; exported env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		Env:           getEnv("ENV", "development"),
		Port:          getEnvInt("PORT", 8080),
		LogLevel:      getEnv("LOG_LEVEL", "debug"),
		CalendarsFile: getEnv("CALENDARS_FILE", "calendars.yaml"),

		Provider: ProviderConfig{
			BaseURL: getEnv("PROVIDER_BASE_URL", "http://localhost:9090"),
			Timeout: getEnvDuration("PROVIDER_TIMEOUT", 15*time.Second),
		},
	}

	if strings.TrimRight(cfg.Provider.BaseURL, "/") == "" {
		return nil, fmt.Errorf("PROVIDER_BASE_URL must not be empty")
	}
	cfg.Provider.BaseURL = strings.TrimRight(cfg.Provider.BaseURL, "/")

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Env)
	return env == "development" || env == "dev"
}

// Instance is one named calendar configuration, the YAML analogue of the
// original embed attributes.
type Instance struct {
	Name    string  `yaml:"name"`
	Options Options `yaml:"options"`
}

// instancesFile is the YAML document shape of CalendarsFile.
type instancesFile struct {
	Calendars []Instance `yaml:"calendars"`
}

// LoadInstances reads calendar instance definitions from the given YAML
// file. A missing file yields a single "default" instance. Option values
// are normalized: unrecognized values silently fall back to their defaults,
// never to an error.
func LoadInstances(path string) ([]Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Instance{{Name: "default", Options: DefaultOptions()}}, nil
		}
		return nil, fmt.Errorf("read calendars file: %w", err)
	}

	var f instancesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse calendars file: %w", err)
	}
	if len(f.Calendars) == 0 {
		return []Instance{{Name: "default", Options: DefaultOptions()}}, nil
	}

	seen := make(map[string]bool, len(f.Calendars))
	for i := range f.Calendars {
		if f.Calendars[i].Name == "" {
			return nil, fmt.Errorf("calendar %d: name is required", i+1)
		}
		if seen[f.Calendars[i].Name] {
			return nil, fmt.Errorf("calendar %q: duplicate name", f.Calendars[i].Name)
		}
		seen[f.Calendars[i].Name] = true
		f.Calendars[i].Options.Normalize()
	}
	return f.Calendars, nil
}

// --- Helper functions for reading environment variables ---

// getEnv reads a string env var or returns the default.
func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// getEnvInt reads an integer env var or returns the default.
func getEnvInt(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvDuration reads a duration env var (e.g., "15s") or returns the default.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
