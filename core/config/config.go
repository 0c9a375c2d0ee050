package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> loaded config value
)

// Load parses environment variables into cfg. The result is cached per
// concrete type, so repeated calls are cheap and consistent across the
// process lifetime. cfg must be a non-nil pointer to a struct.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil target")
	}

	// Missing .env files are expected outside local development.
	dotenvOnce.Do(func() { _ = godotenv.Load() })

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}

	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on failure. Intended for application startup
// where a missing required variable should abort the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
