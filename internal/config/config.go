package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"casetracker/internal/feed"
	"casetracker/internal/models"
	"casetracker/internal/validation"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Feed
	FeedURL     string
	FeedFile    string        // Read the feed from disk instead of FeedURL
	FeedTimeout time.Duration // 0 = no timeout

	// Dashboard defaults
	DefaultForm   string
	DefaultCenter string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// CORS
	CORSOrigins string // Comma-separated allowed origins for the JSON API

	// Rate limiting
	RateLimitMax int    // Requests per minute per IP
	RedisURL     string // Shared limiter storage, e.g. "redis://localhost:6379/0"

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // console, json, auto

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "USCIS case progress tracker"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER

	// Settings from the optional YAML file
	File *YAMLConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:           getEnv("ENV", "development"),
		ServerAddr:    getEnv("SERVER_ADDR", ":3000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:3000"),
		FeedURL:       getEnv("FEED_URL", feed.DefaultURL),
		FeedFile:      getEnv("FEED_FILE", ""),
		FeedTimeout:   getDuration("FEED_TIMEOUT", 0),
		DefaultForm:   getEnv("DEFAULT_FORM", models.DefaultForm),
		DefaultCenter: getEnv("DEFAULT_CENTER", models.DefaultCenter),
		TLSEnabled:    getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:   getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:    getEnv("TLS_KEY_FILE", ""),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),
		RateLimitMax:  getInt("RATE_LIMIT_MAX", 100),
		RedisURL:      getEnv("REDIS_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "auto"),

		SiteTitle:   getEnv("SITE_TITLE", "USCIS case progress tracker"),
		SiteTagline: getEnv("SITE_TAGLINE", "Case status counts by queue position"),
		SiteFooter:  getEnv("SITE_FOOTER", "Data: github.com/vicdus/uscis-case-statistics"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// DefaultSelection returns the dashboard selection used when a request sets none.
func (c *Config) DefaultSelection() models.Selection {
	return models.Selection{Form: c.DefaultForm, Center: c.DefaultCenter}
}

// Validate checks settings that would otherwise fail at runtime.
func (c *Config) Validate() error {
	if c.FeedFile == "" {
		if valid, msg := validation.ValidateFeedURL(c.FeedURL); !valid {
			return fmt.Errorf("FEED_URL: %s", msg)
		}
	}
	if !validation.ValidateSelectionValue(c.DefaultForm) {
		return fmt.Errorf("DEFAULT_FORM: invalid value %q", c.DefaultForm)
	}
	if !validation.ValidateSelectionValue(c.DefaultCenter) {
		return fmt.Errorf("DEFAULT_CENTER: invalid value %q", c.DefaultCenter)
	}
	if c.TLSEnabled && (c.TLSCertFile == "" || c.TLSKeyFile == "") {
		return fmt.Errorf("TLS_ENABLED requires TLS_CERT_FILE and TLS_KEY_FILE")
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", c.RateLimitMax)
	}
	for status, color := range c.File.GetStatusColors() {
		if !validation.ValidateStatusColor(color) {
			return fmt.Errorf("status_colors: %q has invalid color %q", status, color)
		}
	}
	return nil
}
