package session

import (
	"log/slog"
	"time"
)

const (
	// DefaultDuration is the session lifetime applied when no option
	// overrides it.
	DefaultDuration = 30 * 24 * time.Hour
	// DefaultRenewalThreshold is the time-before-expiry window in which a
	// validated session gets its expiry extended.
	DefaultRenewalThreshold = 15 * 24 * time.Hour
)

// Config provides environment-based configuration for the session manager.
// Durations are expressed in days to match common deployment knobs.
type Config struct {
	DurationDays         int `env:"SESSION_DURATION_DAYS" envDefault:"30"`
	RenewalThresholdDays int `env:"SESSION_RENEWAL_THRESHOLD_DAYS" envDefault:"15"`
}

// Option is a functional option for configuring the session manager.
type Option func(*Manager)

// WithDuration sets the session lifetime.
func WithDuration(d time.Duration) Option {
	return func(m *Manager) {
		m.duration = d
	}
}

// WithRenewalThreshold sets how long before expiry a validated session is
// renewed. Must be shorter than the session duration.
func WithRenewalThreshold(d time.Duration) Option {
	return func(m *Manager) {
		m.renewalThreshold = d
	}
}

// WithLogger sets the logger used for best-effort failure reporting
// (renewal writes, lazy expiry reaping).
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManagerFromConfig creates a manager from environment configuration.
// Additional options are applied after the config values.
func NewManagerFromConfig(cfg Config, store Store, opts ...Option) (*Manager, error) {
	base := []Option{
		WithDuration(time.Duration(cfg.DurationDays) * 24 * time.Hour),
		WithRenewalThreshold(time.Duration(cfg.RenewalThresholdDays) * 24 * time.Hour),
	}
	return NewManager(store, append(base, opts...)...)
}
