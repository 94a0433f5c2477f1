package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/username/date-period/pkg/period"
)

// Config represents application configuration
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig controls how the CLI renders periods and dates
type OutputConfig struct {
	Granularity string `mapstructure:"granularity"` // Default granularity for range/report commands
	DateLayout  string `mapstructure:"date_layout"` // Go time layout used when printing dates
}

// LogConfig controls CLI logging
type LogConfig struct {
	File  string `mapstructure:"file"`  // Empty means console logging
	Level string `mapstructure:"level"` // zap level: debug, info, warn, error
}

// Load loads configuration from file. When path is empty and no config
// file is found in the search paths, the defaults are used.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output.granularity", "month")
	v.SetDefault("output.date_layout", "2006-01-02")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.date-period")
		v.AddConfigPath("/etc/date-period")
	}

	// Read environment variables
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// An explicitly requested file must exist; otherwise defaults apply.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := period.ParseGranularity(c.Output.Granularity); err != nil {
		return fmt.Errorf("output.granularity: %w", err)
	}
	if c.Output.DateLayout == "" {
		return fmt.Errorf("output.date_layout must not be empty")
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level must be a zap level, got %q", c.Log.Level)
	}

	return nil
}

// DefaultGranularity returns the configured default granularity.
func (c *OutputConfig) DefaultGranularity() period.Granularity {
	g, err := period.ParseGranularity(c.Granularity)
	if err != nil {
		return period.Month
	}
	return g
}
