package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
)

// Connect creates a Redis client from Config and verifies connectivity with
// a ping before returning. Connection attempts retry with exponential
// backoff within the configured ConnectTimeout.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(opts)
	backoff := retry.WithMaxRetries(cfg.RetryAttempts, retry.NewExponential(cfg.RetryInterval))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrRedisNotReady, err)
	}

	return client, nil
}

// Healthcheck returns a probe function suitable for readiness endpoints.
func Healthcheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
