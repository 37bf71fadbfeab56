package redis

import (
	"crypto/tls"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	"github.com/ashumeet/markettrader/pkg/config"
)

// Retry holds the connection retry and timeout knobs. They have their own
// environment variables because they are deployment concerns, not trading
// concerns, and so live outside the resolved env-file configuration.
type Retry struct {
	Attempts       int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	Interval       time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// Config describes a Redis connection. The credential fields come from the
// resolved trading configuration; the Retry knobs from the process
// environment.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	UseTLS   bool

	Retry Retry
}

// FromResolved builds a Config from an already-validated trading
// configuration. The Retry knobs are read from the process environment,
// falling back to their defaults when unset; a malformed knob value is an
// error rather than a silent default.
func FromResolved(cfg *config.Config) (Config, error) {
	var retry Retry
	if err := env.Parse(&retry); err != nil {
		return Config{}, err
	}
	return Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		UseTLS:   cfg.RedisUseSSL.Bool(),
		Retry:    retry,
	}, nil
}

// Addr returns the host:port pair for the client.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Options converts the configuration into go-redis client options.
func (c Config) Options() *redis.Options {
	opts := &redis.Options{
		Addr:     c.Addr(),
		Password: c.Password,
		DB:       c.DB,
	}
	if c.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return opts
}
