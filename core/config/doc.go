// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	type DatabaseConfig struct {
//		Host     string `env:"DB_HOST" envDefault:"localhost"`
//		Port     int    `env:"DB_PORT" envDefault:"5432"`
//		Username string `env:"DB_USER,required"`
//		Password string `env:"DB_PASS,required"`
//	}
//
//	var db DatabaseConfig
//	if err := config.Load(&db); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	config.MustLoad(&db)
//
// Each configuration type is loaded only once per process; later Load calls
// for the same type return the cached value. Different types are cached
// independently.
package config
