package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user preferences
type Config struct {
	Session SessionConfig `toml:"session"`
	Chart   ChartConfig   `toml:"chart"`
	Log     LogConfig     `toml:"log"`
}

// SessionConfig controls how a new calculator session starts
type SessionConfig struct {
	InitialStages int `toml:"initial_stages"`
}

// ChartConfig controls the bar chart geometry
type ChartConfig struct {
	Height   int `toml:"height"`
	BarWidth int `toml:"bar_width"`
}

// LogConfig controls log file rotation
type LogConfig struct {
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size"`    // megabytes
	MaxBackups int    `toml:"max_backups"` // rotated files kept
	MaxAge     int    `toml:"max_age"`     // days
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			InitialStages: 1,
		},
		Chart: ChartConfig{
			Height:   12,
			BarWidth: 9,
		},
		Log: LogConfig{
			MaxSize:    1,
			MaxBackups: 2,
			MaxAge:     30,
		},
	}
}

// GetConfigPath returns the path of the config file.
// If DELTAV_CONFIG is set, uses that path.
// Otherwise, uses ~/.deltav/config.toml
func GetConfigPath() string {
	if customPath := os.Getenv("DELTAV_CONFIG"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "deltav.toml"
	}
	return filepath.Join(homeDir, ".deltav", "config.toml")
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config file at path, creating its directory
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// Validate checks that every value is usable
func (c *Config) Validate() error {
	if c.Session.InitialStages < 0 {
		return fmt.Errorf("session.initial_stages must not be negative")
	}
	if c.Chart.Height < 1 {
		return fmt.Errorf("chart.height must be at least 1")
	}
	if c.Chart.BarWidth < 1 {
		return fmt.Errorf("chart.bar_width must be at least 1")
	}
	if c.Log.MaxSize < 1 {
		return fmt.Errorf("log.max_size must be at least 1")
	}
	if c.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_backups must not be negative")
	}
	if c.Log.MaxAge < 1 {
		return fmt.Errorf("log.max_age must be at least 1")
	}
	return nil
}

// setting binds a dotted key to a config value
type setting struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

func intSetting(field func(c *Config) *int) setting {
	return setting{
		get: func(c *Config) string {
			return strconv.Itoa(*field(c))
		},
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%q is not an integer", v)
			}
			*field(c) = n
			return nil
		},
	}
}

var settings = map[string]setting{
	"session.initial_stages": intSetting(func(c *Config) *int { return &c.Session.InitialStages }),
	"chart.height":           intSetting(func(c *Config) *int { return &c.Chart.Height }),
	"chart.bar_width":        intSetting(func(c *Config) *int { return &c.Chart.BarWidth }),
	"log.max_size":           intSetting(func(c *Config) *int { return &c.Log.MaxSize }),
	"log.max_backups":        intSetting(func(c *Config) *int { return &c.Log.MaxBackups }),
	"log.max_age":            intSetting(func(c *Config) *int { return &c.Log.MaxAge }),
	"log.file": {
		get: func(c *Config) string { return c.Log.File },
		set: func(c *Config, v string) error {
			c.Log.File = v
			return nil
		},
	},
}

// Keys returns every settable key, sorted
func Keys() []string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key
func (c *Config) Get(key string) (string, error) {
	s, ok := settings[key]
	if !ok {
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
	return s.get(c), nil
}

// Set changes the value of a dotted key and validates the result
func (c *Config) Set(key, value string) error {
	s, ok := settings[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	updated := *c
	if err := s.set(&updated, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := updated.Validate(); err != nil {
		return err
	}
	*c = updated
	return nil
}
