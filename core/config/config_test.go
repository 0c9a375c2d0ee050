package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/config"
)

type serverConfig struct {
	Host string `env:"TEST_CFG_HOST" envDefault:"localhost"`
	Port int    `env:"TEST_CFG_PORT" envDefault:"8080"`
}

type requiredConfig struct {
	Secret string `env:"TEST_CFG_SECRET_MISSING,required"`
}

// Env mutation prevents t.Parallel here; the cache is per-type so subtests
// stay independent.
func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("caches per type", func(t *testing.T) {
		// The value was cached by the previous subtest; changing the
		// environment afterwards must not change the loaded config.
		t.Setenv("TEST_CFG_HOST", "example.com")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "localhost", cfg.Host)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		assert.Error(t, config.Load(&cfg))
	})

	t.Run("nil target fails", func(t *testing.T) {
		assert.Error(t, config.Load[serverConfig](nil))
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}
