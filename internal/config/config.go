// Package config holds the optional YAML settings file that tunes behaviour
// not stored alongside user data.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/studylit/internal/constants"
)

type Config struct {
	DailyGoalMin     int           `yaml:"daily_goal_min"`
	SaveDebounce     time.Duration `yaml:"save_debounce"` // 0 writes immediately
	TrayIdentifier   string        `yaml:"tray_identifier"`
	Debug            bool          `yaml:"debug"`
	ReminderLookback time.Duration `yaml:"reminder_lookback"` // how late a reminder may still be delivered
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DailyGoalMin:     constants.DefaultDailyGoalMin,
		SaveDebounce:     constants.DefaultSaveDebounce,
		TrayIdentifier:   constants.TrayAppIdentifier,
		ReminderLookback: 10 * time.Minute,
	}
}

// DailyGoal returns the daily study goal as a duration.
func (c *Config) DailyGoal() time.Duration {
	return time.Duration(c.DailyGoalMin) * time.Minute
}

// Validate rejects values that would break goal or reminder computations.
func (c *Config) Validate() error {
	if c.DailyGoalMin < 0 {
		return fmt.Errorf("daily_goal_min must not be negative (got %d)", c.DailyGoalMin)
	}
	if c.SaveDebounce < 0 {
		return fmt.Errorf("save_debounce must not be negative (got %s)", c.SaveDebounce)
	}
	if c.ReminderLookback < 0 {
		return fmt.Errorf("reminder_lookback must not be negative (got %s)", c.ReminderLookback)
	}
	return nil
}

// Load reads a YAML config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DefaultPath is the settings file inside the data directory dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, constants.SettingsFileName)
}
