// Package config loads the CLI configuration from the environment. A .env
// file is honored via godotenv/autoload in cmd/planner.
package config

import (
	"os"
	"strings"
)

// Config holds the runtime configuration for the planner CLI.
type Config struct {
	Env       string // local | staging | prod
	LogLevel  string // debug | info | warn | error
	OutputDir string // where exported reports are written

	// ReportFormats is the default set of formats exported when the
	// -formats flag is not given.
	ReportFormats []string
}

// Load reads configuration from the environment with local-friendly
// defaults. Never fails: unknown values fall back to defaults.
func Load() *Config {
	return &Config{
		Env:           envString("APP_ENV", "local"),
		LogLevel:      envString("LOG_LEVEL", "info"),
		OutputDir:     envString("OUTPUT_DIR", "."),
		ReportFormats: envList("REPORT_FORMATS", []string{"txt", "csv"}),
	}
}

func envString(key, defaultVal string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	return v
}

// envList reads a comma-separated env var, trimming blanks.
func envList(key string, defaultVal []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultVal
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
