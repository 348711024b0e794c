// Package config builds the focusring configuration from the config file and
// command-line flags
package config

import (
	"time"

	"github.com/ayoisaiah/focusring/internal/phase"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Work          PhaseConfig        `mapstructure:"work"`
		Rest          PhaseConfig        `mapstructure:"rest"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Timer         TimerConfig        `mapstructure:"timer"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// PhaseConfig holds the presentation of a single phase.
	PhaseConfig struct {
		Color   string `mapstructure:"color"`
		Message string `mapstructure:"message"`
	}

	// TimerConfig holds the timing of ticks, toggles and colour transitions.
	TimerConfig struct {
		TickInterval time.Duration `mapstructure:"tick_interval"`
		Debounce     time.Duration `mapstructure:"debounce"`
		ColorFade    time.Duration `mapstructure:"color_fade"`
	}

	// NotificationConfig holds phase-end alert settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
		Sound   bool `mapstructure:"sound"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		Cmd      string `mapstructure:"cmd"`
		LogLevel string `mapstructure:"log_level"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

// Phase lengths are fixed and cannot be changed from the config file or flags.
const (
	WorkDuration = 6 * time.Second
	RestDuration = 3 * time.Second
)

// New creates a new Config, applies options in order, and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Durations returns the nominal phase lengths.
func (c *Config) Durations() phase.Durations {
	return phase.Durations{
		Work: WorkDuration,
		Rest: RestDuration,
	}
}

// Colors maps each phase to its hex colour.
func (c *Config) Colors() map[phase.Phase]string {
	return map[phase.Phase]string{
		phase.Work: c.Work.Color,
		phase.Rest: c.Rest.Color,
	}
}

// Messages maps each phase to the message shown when it begins.
func (c *Config) Messages() map[phase.Phase]string {
	return map[phase.Phase]string{
		phase.Work: c.Work.Message,
		phase.Rest: c.Rest.Message,
	}
}
