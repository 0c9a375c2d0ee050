package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
)

// Connect creates a connection pool with retry logic and verifies connectivity
// with a ping before returning. Exponential backoff between attempts avoids
// thundering-herd reconnects when multiple services restart at once.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	if cfg.ConnectionString == "" {
		return nil, ErrEmptyConnectionString
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}

	poolCfg.MaxConns = cfg.MaxOpenConns
	poolCfg.MinConns = cfg.MaxIdleConns
	poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	var pool *pgxpool.Pool
	backoff := retry.WithMaxRetries(cfg.RetryAttempts, retry.NewExponential(cfg.RetryInterval))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return retry.RetryableError(err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenDBConnection, err)
	}

	return pool, nil
}

// Healthcheck returns a probe function suitable for readiness endpoints.
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
