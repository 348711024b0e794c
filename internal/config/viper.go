package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyWorkColor            = "work.color"
	keyWorkMessage          = "work.message"
	keyRestColor            = "rest.color"
	keyRestMessage          = "rest.message"
	keyTickInterval         = "timer.tick_interval"
	keyDebounce             = "timer.debounce"
	keyColorFade            = "timer.color_fade"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationSound    = "notifications.sound"
	keySessionCmd           = "settings.cmd"
	keyLogLevel             = "settings.log_level"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does not
// exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyWorkColor, "#FF3B30")
	v.SetDefault(keyWorkMessage, "Focus on your task")
	v.SetDefault(keyRestColor, "#34C759")
	v.SetDefault(keyRestMessage, "Take a breather")
	v.SetDefault(keyTickInterval, "50ms")
	v.SetDefault(keyDebounce, "300ms")
	v.SetDefault(keyColorFade, "300ms")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationSound, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyDarkTheme, true)
}

// loadViperConfig decodes the merged defaults and file values into c.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
