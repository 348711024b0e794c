package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SessionCmd    string
	LogLevel      string
	DisableNotify bool
	DisableSound  bool
}

// WithCLIConfig returns an Option that applies command-line flags on top of
// the values loaded so far.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			SessionCmd:    ctx.String("session-cmd"),
			LogLevel:      ctx.String("log-level"),
			DisableNotify: ctx.Bool("disable-notification"),
			DisableSound:  ctx.Bool("no-sound"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.DisableSound {
		c.Notifications.Sound = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.LogLevel != "" {
		c.Settings.LogLevel = opts.LogLevel
	}
}
