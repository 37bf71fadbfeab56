package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashumeet/markettrader/pkg/config"
	"github.com/ashumeet/markettrader/pkg/redis"
)

// clearRetryEnv makes sure the retry knob variables are absent so tests see
// the built-in defaults. t.Setenv registers the restore; Unsetenv removes.
func clearRetryEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"REDIS_RETRY_ATTEMPTS", "REDIS_RETRY_INTERVAL", "REDIS_CONNECT_TIMEOUT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestConfig_Addr(t *testing.T) {
	cfg := redis.Config{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", cfg.Addr())
}

func TestConfig_Options(t *testing.T) {
	cfg := redis.Config{
		Host:     "localhost",
		Port:     6379,
		Password: "hunter2",
		DB:       2,
	}

	opts := cfg.Options()

	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, "hunter2", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Nil(t, opts.TLSConfig)
}

func TestConfig_OptionsTLS(t *testing.T) {
	cfg := redis.Config{Host: "localhost", Port: 6379, UseTLS: true}
	assert.NotNil(t, cfg.Options().TLSConfig)
}

func TestFromResolved(t *testing.T) {
	clearRetryEnv(t)

	trading := &config.Config{
		RedisHost:     "redis.prod",
		RedisPort:     6380,
		RedisPassword: "secret-pass",
		RedisDB:       1,
		RedisUseSSL:   config.Flag(true),
	}

	cfg, err := redis.FromResolved(trading)

	require.NoError(t, err)
	assert.Equal(t, "redis.prod", cfg.Host)
	assert.Equal(t, 6380, cfg.Port)
	assert.Equal(t, "secret-pass", cfg.Password)
	assert.Equal(t, 1, cfg.DB)
	assert.True(t, cfg.UseTLS)
	assert.Equal(t, 3, cfg.Retry.Attempts)
	assert.Equal(t, 5*time.Second, cfg.Retry.Interval)
	assert.Equal(t, 30*time.Second, cfg.Retry.ConnectTimeout)
}

func TestFromResolved_RetryKnobsFromEnvironment(t *testing.T) {
	clearRetryEnv(t)
	t.Setenv("REDIS_RETRY_ATTEMPTS", "7")
	t.Setenv("REDIS_RETRY_INTERVAL", "250ms")
	t.Setenv("REDIS_CONNECT_TIMEOUT", "10s")

	cfg, err := redis.FromResolved(&config.Config{RedisHost: "localhost", RedisPort: 6379})

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Retry.Attempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Retry.Interval)
	assert.Equal(t, 10*time.Second, cfg.Retry.ConnectTimeout)
}

func TestFromResolved_MalformedRetryKnob(t *testing.T) {
	clearRetryEnv(t)
	t.Setenv("REDIS_RETRY_INTERVAL", "soon")

	_, err := redis.FromResolved(&config.Config{RedisHost: "localhost", RedisPort: 6379})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Interval")
}

func TestConnect_EmptyHost(t *testing.T) {
	_, err := redis.Connect(context.Background(), redis.Config{
		Retry: redis.Retry{
			Attempts:       1,
			Interval:       time.Millisecond,
			ConnectTimeout: time.Second,
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrEmptyHost)
}

func TestConnect_UnreachableServer(t *testing.T) {
	// Port 1 on localhost refuses connections immediately.
	cfg := redis.Config{
		Host: "127.0.0.1",
		Port: 1,
		Retry: redis.Retry{
			Attempts:       2,
			Interval:       10 * time.Millisecond,
			ConnectTimeout: 2 * time.Second,
		},
	}

	_, err := redis.Connect(context.Background(), cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}
