package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFormat selects the zap encoder
type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"
	LogFormatConsole LogFormat = "console"
)

// ConfigSource indicates where the configuration came from
type ConfigSource string

const (
	ConfigSourceEnvVar  ConfigSource = "environment_variable"
	ConfigSourceDefault ConfigSource = "default"
)

// Environment variables read by LoadConfig
const (
	EnvLogLevel        = "INTERACTIONS_LOG_LEVEL"
	EnvLogFormat       = "INTERACTIONS_LOG_FORMAT"
	EnvFoldOptionNames = "INTERACTIONS_FOLD_OPTION_NAMES"
)

// Config holds resolver and logging configuration
type Config struct {
	LogLevel        zapcore.Level
	LogFormat       LogFormat
	FoldOptionNames bool
	Source          ConfigSource
}

// Default returns the configuration used when nothing is set in the environment
func Default() *Config {
	return &Config{
		LogLevel:  zapcore.InfoLevel,
		LogFormat: LogFormatJSON,
		Source:    ConfigSourceDefault,
	}
}

// LoadConfig loads configuration with priority: env vars > defaults.
// Unparseable values fall back to the default for that setting.
func LoadConfig() *Config {
	config := Default()

	if level := getEnv(EnvLogLevel, ""); level != "" {
		var parsed zapcore.Level
		if err := parsed.UnmarshalText([]byte(strings.ToLower(level))); err == nil {
			config.LogLevel = parsed
			config.Source = ConfigSourceEnvVar
		}
	}

	if format := getEnv(EnvLogFormat, ""); format != "" {
		switch LogFormat(strings.ToLower(format)) {
		case LogFormatJSON:
			config.LogFormat = LogFormatJSON
			config.Source = ConfigSourceEnvVar
		case LogFormatConsole:
			config.LogFormat = LogFormatConsole
			config.Source = ConfigSourceEnvVar
		}
	}

	if fold, ok := getEnvBool(EnvFoldOptionNames); ok {
		config.FoldOptionNames = fold
		config.Source = ConfigSourceEnvVar
	}

	return config
}

// NewLogger builds a zap logger for the configured level and format
func (c *Config) NewLogger() (*zap.Logger, error) {
	var zc zap.Config
	if c.LogFormat == LogFormatConsole {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// String returns a formatted string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{LogLevel: %s, LogFormat: %s, FoldOptionNames: %t, Source: %s}",
		c.LogLevel,
		c.LogFormat,
		c.FoldOptionNames,
		c.Source,
	)
}

// getEnv retrieves a string from environment variable with default fallback
func getEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean from environment variable; ok is false when unset or unparseable
func getEnvBool(key string) (value bool, ok bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return parsed, true
}
