// Package config handles loading and validation of user configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/grafana/grafana-plugin-sdk-go/backend/gtime"
	"gopkg.in/yaml.v3"
)

var (
	errInvalidTimezone    = errors.New("timezone cannot be loaded")
	errInvalidWeekStart   = errors.New("week_start must be a weekday name")
	errInvalidFiscalMonth = errors.New("fiscal_year_start_month must be between 1 and 12")
	errInvalidMinInterval = errors.New("min_interval is not a valid duration")
	errInvalidResolution  = errors.New("resolution must be greater than zero")
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Config represents the complete configuration for timerange.
type Config struct {
	Timezone             string `yaml:"timezone"`
	WeekStart            string `yaml:"week_start"`
	FiscalYearStartMonth int    `yaml:"fiscal_year_start_month"`
	MinInterval          string `yaml:"min_interval"`
	Resolution           int64  `yaml:"resolution"`
}

// Default returns the configuration used when no config file exists:
// UTC, Monday week start, January fiscal year, no minimum interval,
// 100 display buckets.
func Default() *Config {
	return &Config{
		Timezone:             "UTC",
		WeekStart:            "monday",
		FiscalYearStartMonth: 1,
		Resolution:           100,
	}
}

// Load reads and parses the configuration file from the user's home
// directory. A missing file is not an error: the defaults are returned
// so the tool works unconfigured.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "timerange", "config.yml")

	// #nosec G304 - Reading config from user's home directory is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks that all configuration fields are usable.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("%w: %q", errInvalidTimezone, c.Timezone)
	}

	if _, ok := weekdays[c.WeekStart]; !ok {
		return fmt.Errorf("%w: %q", errInvalidWeekStart, c.WeekStart)
	}

	if c.FiscalYearStartMonth < 1 || c.FiscalYearStartMonth > 12 {
		return fmt.Errorf("%w: %d", errInvalidFiscalMonth, c.FiscalYearStartMonth)
	}

	if c.MinInterval != "" {
		if _, err := gtime.ParseDuration(c.MinInterval); err != nil {
			return fmt.Errorf("%w: %q", errInvalidMinInterval, c.MinInterval)
		}
	}

	if c.Resolution <= 0 {
		return fmt.Errorf("%w: %d", errInvalidResolution, c.Resolution)
	}

	return nil
}

// Location returns the configured timezone. Validate must have passed.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// WeekStartDay returns the configured first day of the week.
func (c *Config) WeekStartDay() time.Weekday {
	return weekdays[c.WeekStart]
}

// FiscalStartMonth returns the configured fiscal year start month.
func (c *Config) FiscalStartMonth() time.Month {
	return time.Month(c.FiscalYearStartMonth)
}
