// Package config loads application settings from a .env file and environment
// variables. Environment variables always take precedence over .env values.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// FeedBaseURL overrides the season data release host (for tests and
	// mirrors); empty selects the default.
	FeedBaseURL string

	// Season is the season end year (2026 for the 2025-26 season).
	Season int

	// FeedTimeout bounds the startup data load.
	FeedTimeout time.Duration

	// Debug lowers the log level to debug.
	Debug bool
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	v.SetDefault("PORT", "8080")
	v.SetDefault("FEED_BASE_URL", "")
	v.SetDefault("SEASON", 2026)
	v.SetDefault("FEED_TIMEOUT", "10m")
	v.SetDefault("DEBUG", false)

	return &Config{
		Port:        v.GetString("PORT"),
		FeedBaseURL: v.GetString("FEED_BASE_URL"),
		Season:      v.GetInt("SEASON"),
		FeedTimeout: v.GetDuration("FEED_TIMEOUT"),
		Debug:       v.GetBool("DEBUG"),
	}
}

func newViper() *viper.Viper {
	// Missing .env is fine; the defaults and environment cover it.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return v
}
