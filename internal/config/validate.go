package config

import (
	"log/slog"
	"regexp"
	"strings"
	"time"
)

var (
	minTickInterval = 10 * time.Millisecond
	maxTickInterval = time.Second

	maxDebounce  = 2 * time.Second
	maxColorFade = 5 * time.Second

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validatePhaseConfig(c.Work, "work"); err != nil {
		return err
	}

	if err := c.validatePhaseConfig(c.Rest, "rest"); err != nil {
		return err
	}

	if err := c.validateTimer(); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Settings.LogLevel)); err != nil {
		return errInvalidLogLevel.Fmt(c.Settings.LogLevel)
	}

	return nil
}

// validatePhaseConfig validates an individual PhaseConfig.
func (c *Config) validatePhaseConfig(pc PhaseConfig, name string) error {
	if strings.TrimSpace(pc.Message) == "" {
		return errEmptyMsg.Fmt(name)
	}

	if !hexColorRegex.MatchString(pc.Color) {
		return errInvalidColor.Fmt(name, pc.Color)
	}

	return nil
}

func (c *Config) validateTimer() error {
	t := c.Timer

	if t.TickInterval < minTickInterval || t.TickInterval > maxTickInterval {
		return errInvalidTiming.Fmt(
			"tick interval",
			minTickInterval,
			maxTickInterval,
			t.TickInterval,
		)
	}

	if t.Debounce < 0 || t.Debounce > maxDebounce {
		return errInvalidTiming.Fmt("debounce", time.Duration(0), maxDebounce, t.Debounce)
	}

	if t.ColorFade < 0 || t.ColorFade > maxColorFade {
		return errInvalidTiming.Fmt(
			"color fade",
			time.Duration(0),
			maxColorFade,
			t.ColorFade,
		)
	}

	return nil
}
