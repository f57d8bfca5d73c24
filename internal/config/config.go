// Package config handles rep's configuration: file paths, the viper
// loader for the YAML config, and command-line filter settings.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Gateway      GatewayConfig
		Workout      WorkoutConfig
		Display      DisplayConfig
		Notification NotificationConfig
		System       SystemConfig
	}

	// GatewayConfig selects and configures the row-store backend.
	GatewayConfig struct {
		// Mode is "local" (BoltDB) or "remote" (hosted row store).
		Mode   string
		URL    string
		APIKey string
		Token  string
	}

	// WorkoutConfig holds workout session settings.
	WorkoutConfig struct {
		SessionCmd   string
		RestDuration time.Duration
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool
		TwentyFourHour bool
	}

	// NotificationConfig holds rest-timer notification settings.
	NotificationConfig struct {
		RestSound string
		Enabled   bool
	}

	// SystemConfig holds file locations.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)

var (
	configDir      = "rep"
	configFileName = "config.yml"
	dbFileName     = "rep.db"
	logFileName    = "rep.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the config, database, and log file paths.
// REP_ENV switches to suffixed file names so test and dev setups do
// not clobber real data.
func InitializePaths() {
	repEnv := strings.TrimSpace(os.Getenv("REP_ENV"))
	if repEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", repEnv)
		dbFileName = fmt.Sprintf("rep_%s.db", repEnv)
		logFileName = fmt.Sprintf("rep_%s.log", repEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with defaults and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.System.ConfigPath = configFilePath
	cfg.System.DBPath = dbFilePath

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Gateway.Mode {
	case ModeLocal, ModeRemote:
	default:
		return errUnknownMode.Fmt(c.Gateway.Mode)
	}

	if c.Gateway.Mode == ModeRemote && c.Gateway.URL == "" {
		return errMissingGatewayURL
	}

	if c.Workout.RestDuration <= 0 {
		return errInvalidRestDuration.Fmt(c.Workout.RestDuration)
	}

	return nil
}
