package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyGatewayMode   = "gateway.mode"
	keyGatewayURL    = "gateway.url"
	keyGatewayAPIKey = "gateway.api_key"
	keyGatewayToken  = "gateway.token"
	keyRestDuration  = "workout.rest_duration"
	keySessionCmd    = "workout.session_cmd"
	keyNotifyEnabled = "notifications.enabled"
	keyRestSound     = "notifications.rest_sound"
	keyDarkTheme     = "display.dark_theme"
	keyTwentyFour    = "display.24hr_clock"
)

// WithViperConfig returns an Option that loads configuration from the
// YAML file at configPath, writing one with defaults first if it does
// not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

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

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyGatewayMode, ModeLocal)
	v.SetDefault(keyGatewayURL, "")
	v.SetDefault(keyGatewayAPIKey, "")
	v.SetDefault(keyGatewayToken, "")
	v.SetDefault(keyRestDuration, "1m30s")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyNotifyEnabled, true)
	v.SetDefault(keyRestSound, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFour, false)
}

func loadViperConfig(v *viper.Viper, c *Config) error {
	c.Gateway.Mode = v.GetString(keyGatewayMode)
	c.Gateway.URL = v.GetString(keyGatewayURL)
	c.Gateway.APIKey = v.GetString(keyGatewayAPIKey)
	c.Gateway.Token = v.GetString(keyGatewayToken)
	c.Workout.SessionCmd = v.GetString(keySessionCmd)
	c.Notification.Enabled = v.GetBool(keyNotifyEnabled)
	c.Notification.RestSound = v.GetString(keyRestSound)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFour)

	dur, err := parseDuration(v.GetString(keyRestDuration))
	if err != nil {
		return err
	}

	c.Workout.RestDuration = dur

	return nil
}

// parseDuration accepts a duration string, falling back to treating a
// bare number as seconds.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	secs, err := time.ParseDuration(s + "s")
	if err != nil {
		return 0, errInvalidDuration.Fmt(s)
	}

	return secs, nil
}
