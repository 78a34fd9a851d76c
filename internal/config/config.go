// Package config centralises configuration parsing for the fitstats tool.
package config

import (
	"os"
	"strconv"
)

// Config captures runtime configuration values for a single analysis run.
type Config struct {
	CSVPath       string // path to the Apple Watch workout export
	ChartDir      string // directory for rendered chart PNGs
	ChartsEnabled bool
	LogLevel      string
}

// Load reads environment variables into Config, applying sensible defaults.
func Load() Config {
	return Config{
		CSVPath:       getEnv("CSV_PATH", "health.csv"),
		ChartDir:      getEnv("CHART_DIR", "charts"),
		ChartsEnabled: getBoolEnv("CHARTS_ENABLED", true),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
