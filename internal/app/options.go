package app

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

type appConfig struct {
	logger  *slog.Logger
	now     func() time.Time
	version string
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock sets the time source used for seed dates
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}

// WithVersion sets the version reported to MCP clients
func WithVersion(version string) Option {
	return func(cfg *appConfig) {
		cfg.version = version
	}
}
