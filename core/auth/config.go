package auth

import (
	"log/slog"

	"github.com/dmitrymomot/authkit/pkg/password"
)

// Config provides environment-based configuration for the auth service.
// The hashing knobs map directly onto password.Params.
type Config struct {
	HashMemoryKiB   uint32 `env:"AUTH_HASH_MEMORY_KIB" envDefault:"19456"`
	HashIterations  uint32 `env:"AUTH_HASH_ITERATIONS" envDefault:"2"`
	HashParallelism uint8  `env:"AUTH_HASH_PARALLELISM" envDefault:"1"`
	HashKeyLength   uint32 `env:"AUTH_HASH_KEY_LENGTH" envDefault:"32"`
}

// Option is a functional option for configuring the auth service.
type Option func(*Service)

// WithPasswordParams overrides the argon2id cost parameters.
func WithPasswordParams(p password.Params) Option {
	return func(s *Service) {
		s.hashParams = p
	}
}

// WithLogger sets the logger for non-fatal anomalies.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewServiceFromConfig creates an auth service from environment
// configuration. Additional options are applied after the config values.
func NewServiceFromConfig(cfg Config, users UserStore, sessions SessionManager, opts ...Option) (*Service, error) {
	base := []Option{WithPasswordParams(password.Params{
		MemoryKiB:   cfg.HashMemoryKiB,
		Iterations:  cfg.HashIterations,
		Parallelism: cfg.HashParallelism,
		KeyLength:   cfg.HashKeyLength,
	})}
	return NewService(users, sessions, append(base, opts...)...)
}
