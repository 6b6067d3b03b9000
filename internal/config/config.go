package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	App     AppConfig
	Logging LoggingConfig
}

type AppConfig struct {
	Environment string
	// DataFile is the default target for export and the default source for
	// import; individual menu actions may override it.
	DataFile string
}

type LoggingConfig struct {
	Level     string
	AddSource bool
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			DataFile:    getEnv("FINANCE_DATA_FILE", "finance_data.json"),
		},
		Logging: LoggingConfig{
			Level:     getEnv("LOG_LEVEL", "info"),
			AddSource: getBoolEnv("LOG_ADD_SOURCE", false),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// SlogLevel maps the configured level name to a slog.Level, defaulting to
// info for unknown values.
func (c *LoggingConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
