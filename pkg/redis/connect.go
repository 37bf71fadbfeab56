package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect establishes a connection to the Redis server, retrying up to
// cfg.Retry.Attempts times with cfg.Retry.Interval between attempts. The whole
// sequence is bounded by cfg.Retry.ConnectTimeout on top of the caller's context.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, ErrEmptyHost
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Retry.ConnectTimeout)
	defer cancel()

	for attempt := 0; attempt < cfg.Retry.Attempts; attempt++ {
		client := redis.NewClient(cfg.Options())

		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}

		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.Retry.Interval):
		}
	}

	return nil, ErrRedisNotReady
}

// Healthcheck returns a function suitable for readiness checks.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if _, err := client.Ping(ctx).Result(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
