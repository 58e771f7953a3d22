// Package config loads the demo command's settings from the environment.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

// Default values for optional settings.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "info"
)

// Config holds the runtime settings for the demo command.
type Config struct {
	// DevKey is the Pastebin developer key every API call carries.
	DevKey string
	// Username and Password are the account credentials for Login.
	Username string
	Password string

	// BaseURL overrides the public service endpoint; empty means the
	// client default.
	BaseURL string
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from PASTEBIN_* environment variables.
func Load() (Config, error) {
	cfg := Config{
		DevKey:   os.Getenv("PASTEBIN_DEVELOPER_KEY"),
		Username: os.Getenv("PASTEBIN_USERNAME"),
		Password: os.Getenv("PASTEBIN_PASSWORD"),
		BaseURL:  os.Getenv("PASTEBIN_BASE_URL"),
		LogLevel: getEnv("PASTEBIN_LOG_LEVEL", DefaultLogLevel),
	}

	timeout, err := getDuration("PASTEBIN_TIMEOUT", DefaultTimeout)
	if err != nil {
		return cfg, err
	}
	cfg.Timeout = timeout

	if cfg.DevKey == "" {
		return cfg, errors.New("PASTEBIN_DEVELOPER_KEY is required")
	}
	if cfg.Username == "" {
		return cfg, errors.New("PASTEBIN_USERNAME is required")
	}
	if cfg.Password == "" {
		return cfg, errors.New("PASTEBIN_PASSWORD is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid duration for %s", key)
	}
	return d, nil
}
