package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Picker PickerConfig `mapstructure:"picker"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// PickerConfig holds the defaults applied when a host supplies no boundaries
type PickerConfig struct {
	StartDate       string `mapstructure:"start_date"`     // YYYY-MM-DD, empty = today
	EndDate         string `mapstructure:"end_date"`       // YYYY-MM-DD, empty = start + default_span_days
	ExcludedDates   string `mapstructure:"excluded_dates"` // comma-separated, empty = generate busy days
	ExclusionFile   string `mapstructure:"exclusion_file"` // optional "YYYY-MM-DD [note]" file
	DefaultSpanDays int    `mapstructure:"default_span_days"`
	RandomSeed      int64  `mapstructure:"random_seed"` // 0 = seed from clock
}

// ServerConfig represents HTTP front-end configuration
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	SessionTTL      string `mapstructure:"session_ttl"`
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing file is not an error when
// no explicit path was given; defaults and DATEPICKER_* env vars still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("picker.default_span_days", 30)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.session_ttl", "30m")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.date-picker")
		v.AddConfigPath("/etc/date-picker")
	}

	// Read environment variables
	v.SetEnvPrefix("DATEPICKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate Picker config
	for key, value := range map[string]string{
		"picker.start_date": c.Picker.StartDate,
		"picker.end_date":   c.Picker.EndDate,
	} {
		if value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Errorf("%s must be YYYY-MM-DD, got '%s'", key, value)
		}
	}
	if c.Picker.DefaultSpanDays <= 0 {
		return fmt.Errorf("picker.default_span_days must be positive")
	}

	// Validate Server config
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	for key, value := range map[string]string{
		"server.session_ttl":      c.Server.SessionTTL,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if value == "" {
			continue
		}
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			return fmt.Errorf("%s must be a positive duration, got '%s'", key, value)
		}
	}

	return nil
}

// GetSessionTTL returns how long an idle picker session is kept
func (c *ServerConfig) GetSessionTTL() time.Duration {
	if c.SessionTTL == "" {
		return 30 * time.Minute
	}
	duration, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return 30 * time.Minute
	}
	return duration
}

// GetShutdownTimeout returns the graceful shutdown deadline
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Picker.ExclusionFile = os.ExpandEnv(c.Picker.ExclusionFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
