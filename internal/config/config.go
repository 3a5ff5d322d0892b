// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/rangecal/internal/dateutil"
)

// Selection modes.
const (
	ModeSingle = "single"
	ModeRange  = "range"
)

// MaxMonthsShown is the widest calendar the TUI lays out side by side.
const MaxMonthsShown = 3

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// CalendarConfig holds the month view settings.
type CalendarConfig struct {
	FirstDayOfWeek   string   `toml:"first_day_of_week"` // e.g., "monday"
	MinDate          string   `toml:"min_date"`          // YYYY-MM-DD (optional)
	MaxDate          string   `toml:"max_date"`          // YYYY-MM-DD (optional)
	DisabledWeekdays []string `toml:"disabled_weekdays"` // e.g., ["saturday", "sunday"]
	Mode             string   `toml:"mode"`              // "single" or "range"
	MonthsShown      int      `toml:"months_shown"`      // 1..3
	RTL              bool     `toml:"rtl"`
	ComparisonStart  string   `toml:"comparison_start"` // YYYY-MM-DD (optional)
	ComparisonEnd    string   `toml:"comparison_end"`   // YYYY-MM-DD (optional)
	LabelMinCells    int      `toml:"label_min_cells"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			FirstDayOfWeek: "sunday",
			Mode:           ModeRange,
			MonthsShown:    2,
			LabelMinCells:  3,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rangecal.db"
	}
	return filepath.Join(home, ".local", "share", "rangecal", "rangecal.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rangecal", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("RANGECAL_FIRST_DAY_OF_WEEK"); v != "" {
		cfg.Calendar.FirstDayOfWeek = v
	}
	if v := os.Getenv("RANGECAL_MIN_DATE"); v != "" {
		cfg.Calendar.MinDate = v
	}
	if v := os.Getenv("RANGECAL_MAX_DATE"); v != "" {
		cfg.Calendar.MaxDate = v
	}
	if v := os.Getenv("RANGECAL_DISABLED_WEEKDAYS"); v != "" {
		cfg.Calendar.DisabledWeekdays = strings.Split(v, ",")
	}
	if v := os.Getenv("RANGECAL_MODE"); v != "" {
		cfg.Calendar.Mode = v
	}
	if v := os.Getenv("RANGECAL_MONTHS_SHOWN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RANGECAL_MONTHS_SHOWN: %w", err)
		}
		cfg.Calendar.MonthsShown = n
	}
	if v := os.Getenv("RANGECAL_RTL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("RANGECAL_RTL: %w", err)
		}
		cfg.Calendar.RTL = b
	}

	if v := os.Getenv("RANGECAL_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("RANGECAL_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	cal := c.Calendar
	if _, err := dateutil.ParseWeekday(cal.FirstDayOfWeek); err != nil {
		return fmt.Errorf("first_day_of_week: %w", err)
	}
	if _, err := dateutil.ParseWeekdays(cal.DisabledWeekdays); err != nil {
		return fmt.Errorf("disabled_weekdays: %w", err)
	}
	if len(cal.DisabledWeekdays) >= 7 {
		return errors.New("disabled_weekdays cannot disable every day")
	}
	if cal.Mode != ModeSingle && cal.Mode != ModeRange {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeSingle, ModeRange, cal.Mode)
	}
	if cal.MonthsShown < 1 || cal.MonthsShown > MaxMonthsShown {
		return fmt.Errorf("months_shown must be between 1 and %d, got %d", MaxMonthsShown, cal.MonthsShown)
	}
	if cal.LabelMinCells < 0 || cal.LabelMinCells > 7 {
		return fmt.Errorf("label_min_cells must be between 0 and 7, got %d", cal.LabelMinCells)
	}

	minDate, maxDate, err := c.Bounds()
	if err != nil {
		return err
	}
	if minDate != nil && maxDate != nil && maxDate.Before(*minDate) {
		return errors.New("min_date must be on or before max_date")
	}
	if _, _, err := c.Comparison(); err != nil {
		return err
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// FirstWeekday returns the configured first day of the week.
func (c *Config) FirstWeekday() time.Weekday {
	d, err := dateutil.ParseWeekday(c.Calendar.FirstDayOfWeek)
	if err != nil {
		return time.Sunday
	}
	return d
}

// IsRange reports whether range selection is configured.
func (c *Config) IsRange() bool {
	return c.Calendar.Mode == ModeRange
}

// Bounds returns the optional min and max dates.
func (c *Config) Bounds() (minDate, maxDate *time.Time, err error) {
	if minDate, err = dateutil.ParseOptionalDate(c.Calendar.MinDate); err != nil {
		return nil, nil, fmt.Errorf("min_date: %w", err)
	}
	if maxDate, err = dateutil.ParseOptionalDate(c.Calendar.MaxDate); err != nil {
		return nil, nil, fmt.Errorf("max_date: %w", err)
	}
	return minDate, maxDate, nil
}

// Comparison returns the optional comparison range. Either bound may be
// unset on its own.
func (c *Config) Comparison() (start, end *time.Time, err error) {
	if start, err = dateutil.ParseOptionalDate(c.Calendar.ComparisonStart); err != nil {
		return nil, nil, fmt.Errorf("comparison_start: %w", err)
	}
	if end, err = dateutil.ParseOptionalDate(c.Calendar.ComparisonEnd); err != nil {
		return nil, nil, fmt.Errorf("comparison_end: %w", err)
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, fmt.Errorf("comparison range: %w", dateutil.ErrEndDateBeforeStart)
	}
	return start, end, nil
}

// DateFilter returns a filter rejecting the disabled weekdays, or nil when
// every day is selectable.
func (c *Config) DateFilter() func(time.Time) bool {
	days, err := dateutil.ParseWeekdays(c.Calendar.DisabledWeekdays)
	if err != nil || len(days) == 0 {
		return nil
	}
	disabled := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		disabled[d] = true
	}
	return func(t time.Time) bool {
		return !disabled[t.Weekday()]
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
