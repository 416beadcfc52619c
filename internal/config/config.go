// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"qualitybuilt/internal/nav"

	"github.com/caarlos0/env/v11"
)

// ErrInvalid marks a configuration that parsed but cannot be used.
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of the site browser.
type Config struct {
	StartView          string        `env:"QUALITYBUILT_START_VIEW"           envDefault:"home"`
	AnchorDelay        time.Duration `env:"QUALITYBUILT_ANCHOR_DELAY"         envDefault:"100ms"`
	AnchorPollInterval time.Duration `env:"QUALITYBUILT_ANCHOR_POLL_INTERVAL" envDefault:"50ms"`
	AnchorMaxPolls     int           `env:"QUALITYBUILT_ANCHOR_MAX_POLLS"     envDefault:"5"`
	LogFile            string        `env:"QUALITYBUILT_LOG_FILE"`
	LogLevel           string        `env:"QUALITYBUILT_LOG_LEVEL"            envDefault:"info"`
	OTLPEndpoint       string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName        string        `env:"OTEL_SERVICE_NAME"                 envDefault:"qualitybuilt"`
}

// Parse reads the environment without validating, so callers can apply
// overrides first and call Validate once.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the navigator cannot run with.
func (c Config) Validate() error {
	if _, err := nav.ParseView(c.StartView); err != nil {
		return fmt.Errorf("%w: start view: %w", ErrInvalid, err)
	}
	if c.AnchorDelay <= 0 {
		return fmt.Errorf("%w: anchor delay must be positive, got %s", ErrInvalid, c.AnchorDelay)
	}
	if c.AnchorPollInterval <= 0 {
		return fmt.Errorf("%w: anchor poll interval must be positive, got %s", ErrInvalid, c.AnchorPollInterval)
	}
	if c.AnchorMaxPolls < 0 {
		return fmt.Errorf("%w: anchor max polls must not be negative, got %d", ErrInvalid, c.AnchorMaxPolls)
	}
	return nil
}

// InitialView returns the parsed start view, falling back to Home.
func (c Config) InitialView() nav.View {
	v, err := nav.ParseView(c.StartView)
	if err != nil {
		return nav.Home
	}
	return v
}

// NavConfig converts the anchor settings for the selector.
func (c Config) NavConfig() nav.Config {
	return nav.Config{
		AnchorDelay:  c.AnchorDelay,
		PollInterval: c.AnchorPollInterval,
		MaxPolls:     c.AnchorMaxPolls,
	}
}
