// Package config contains everything related to configuration
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Record source kinds.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Default values
const (
	envPrefix       = "BIKESHARE"
	defaultDayFile  = "day_clean.csv"
	defaultHourFile = "hour_clean.csv"
	defaultLogLevel = "info"
	appDirName      = "bikeshare-tui"
)

// Config holds the application configuration.
type Config struct {
	Source       string `validate:"oneof=csv sqlite"`
	DayFile      string `validate:"required_if=Source csv"`
	HourFile     string `validate:"required_if=Source csv"`
	DatabasePath string `validate:"required_if=Source sqlite"`
	LogFile      string
	LogLevel     string `validate:"oneof=debug info warn warning error"`
}

// Flags are command-line overrides. Empty fields leave the configured value alone.
type Flags struct {
	DayFile      string
	HourFile     string
	DatabasePath string
}

// envKeys maps struct fields to the variables that set them, for error messages.
var envKeys = map[string]string{
	"Source":       "BIKESHARE_SOURCE",
	"DayFile":      "BIKESHARE_DAY_FILE",
	"HourFile":     "BIKESHARE_HOUR_FILE",
	"DatabasePath": "BIKESHARE_DATABASE_PATH",
	"LogLevel":     "BIKESHARE_LOG_LEVEL",
}

var validate = validator.New()

// Load reads configuration from .env files and environment variables, then applies
// flag overrides. Passing a database path selects the sqlite source.
func Load(flags Flags) (*Config, error) {
	// Try loading .env from multiple locations
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("source", SourceCSV)
	v.SetDefault("day_file", defaultDayFile)
	v.SetDefault("hour_file", defaultHourFile)
	v.SetDefault("database_path", "")
	v.SetDefault("log_file", getDefaultLogPath())
	v.SetDefault("log_level", defaultLogLevel)

	cfg := &Config{
		Source:       strings.ToLower(strings.TrimSpace(v.GetString("source"))),
		DayFile:      strings.TrimSpace(v.GetString("day_file")),
		HourFile:     strings.TrimSpace(v.GetString("hour_file")),
		DatabasePath: strings.TrimSpace(v.GetString("database_path")),
		LogFile:      strings.TrimSpace(v.GetString("log_file")),
		LogLevel:     strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
	}
	cfg.apply(flags)

	if err := validate.Struct(cfg); err != nil {
		return nil, describeValidation(err)
	}
	return cfg, nil
}

func (c *Config) apply(flags Flags) {
	if flags.DayFile != "" {
		c.DayFile = flags.DayFile
		c.Source = SourceCSV
	}
	if flags.HourFile != "" {
		c.HourFile = flags.HourFile
		c.Source = SourceCSV
	}
	if flags.DatabasePath != "" {
		c.DatabasePath = flags.DatabasePath
		c.Source = SourceSQLite
	}
}

// describeValidation turns validator output into messages naming the variables.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := envKeys[fe.StructField()]
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value()))
		case "required_if":
			msgs = append(msgs, fmt.Sprintf("%s is required when %s", key, strings.Replace(fe.Param(), " ", "=", 1)))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", key, fe.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory location
	if dir := getAppDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, ".env"))
	}

	// Parent directory (useful for development)
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(cwd), ".env"))
	}

	return paths
}

// getAppDir returns the per-user configuration directory, or "" without a home.
func getAppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appDirName)
}

// getDefaultLogPath returns the default log file path.
func getDefaultLogPath() string {
	dir := getAppDir()
	if dir == "" {
		return "bikeshare.log"
	}
	return filepath.Join(dir, "bikeshare.log")
}
