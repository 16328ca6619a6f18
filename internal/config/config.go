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

	"github.com/javiermolinar/foldcal/internal/dateutil"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// CalendarConfig holds the host calendar settings.
type CalendarConfig struct {
	FirstWeekday string `toml:"first_weekday"` // e.g., "monday"
	Location     string `toml:"location"`      // IANA name, or "Local"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme    string `toml:"theme"`     // "mocha", "macchiato", "frappe", "latte", "light"
	RowLines int    `toml:"row_lines"` // Terminal lines per grid row (1-3)
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			FirstWeekday: "monday",
			Location:     "Local",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme:    "mocha",
			RowLines: 1,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "foldcal.db"
	}
	return filepath.Join(home, ".local", "share", "foldcal", "foldcal.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "foldcal", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

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
			return nil
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
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FOLDCAL_FIRST_WEEKDAY"); v != "" {
		cfg.Calendar.FirstWeekday = v
	}
	if v := os.Getenv("FOLDCAL_LOCATION"); v != "" {
		cfg.Calendar.Location = v
	}
	if v := os.Getenv("FOLDCAL_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("FOLDCAL_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("FOLDCAL_UI_ROW_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UI.RowLines = n
		}
	}
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
	if _, err := dateutil.ParseWeekday(c.Calendar.FirstWeekday); err != nil {
		return fmt.Errorf("first_weekday %q: %w", c.Calendar.FirstWeekday, err)
	}
	if _, err := c.TimeLocation(); err != nil {
		return fmt.Errorf("location %q: %w", c.Calendar.Location, err)
	}
	if c.UI.RowLines < 1 || c.UI.RowLines > 3 {
		return fmt.Errorf("row_lines must be between 1 and 3, got %d", c.UI.RowLines)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// FirstWeekday returns the configured first day of the week, Monday if unset
// or invalid.
func (c *Config) FirstWeekday() time.Weekday {
	wd, err := dateutil.ParseWeekday(c.Calendar.FirstWeekday)
	if err != nil {
		return time.Monday
	}
	return wd
}

// TimeLocation resolves the configured location. Empty and "Local" mean
// the host's local time.
func (c *Config) TimeLocation() (*time.Location, error) {
	switch c.Calendar.Location {
	case "", "Local", "local":
		return time.Local, nil
	}
	return time.LoadLocation(c.Calendar.Location)
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
