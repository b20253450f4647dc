package config

import (
	"os"
	"strings"
	"time"
)

// Config keeps runtime settings for the planner.
type Config struct {
	DatabasePath    string
	DefaultUser     string
	DefaultPassword string
	RemindInterval  time.Duration
}

// Load reads configuration from environment variables with sane defaults.
// Nothing is required; an empty environment yields a working local setup.
func Load() Config {
	cfg := Config{
		DatabasePath:    strings.TrimSpace(os.Getenv("PLANPAL_DB")),
		DefaultUser:     strings.TrimSpace(os.Getenv("PLANPAL_USER")),
		DefaultPassword: os.Getenv("PLANPAL_DEFAULT_PASSWORD"),
		RemindInterval:  parseInterval(strings.TrimSpace(os.Getenv("PLANPAL_REMIND_INTERVAL_HOURS"))),
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "planpal.sqlite3"
	}
	if cfg.DefaultUser == "" {
		cfg.DefaultUser = "default"
	}
	if cfg.DefaultPassword == "" {
		cfg.DefaultPassword = "password"
	}
	if cfg.RemindInterval == 0 {
		cfg.RemindInterval = 5 * time.Hour
	}

	return cfg
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
