package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	TokenStoreCookie = "cookie"
	TokenStoreRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig

	ReferenceTTL time.Duration `env:"REFERENCE_TTL, default=30s"`
}

// APIConfig points at the upstream PDAM REST API.
type APIConfig struct {
	BaseURL  string        `env:"BASE_API_URL, required"`
	AppKey   string        `env:"APP_KEY"`
	AuthPath string        `env:"AUTH_PATH,    default=/auth"`
	Timeout  time.Duration `env:"API_TIMEOUT,  default=0s"`
}

// SessionConfig selects and configures the token store.
type SessionConfig struct {
	Store        string `env:"TOKEN_STORE,   default=cookie"`
	CookieSecret string `env:"COOKIE_SECRET"`
	CookieSecure bool   `env:"COOKIE_SECURE, default=false"`
}

// RedisConfig is optional; an empty Addr disables redis.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// IsDevelopment reports whether the console runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(ctx context.Context) *Config {
	cfg, err := Load(ctx)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Session.Store {
	case TokenStoreCookie:
		if c.Session.CookieSecret == "" && !c.IsDevelopment() {
			return errors.New("COOKIE_SECRET must be set outside development")
		}
	case TokenStoreRedis:
		if c.Redis.Addr == "" {
			return errors.New("TOKEN_STORE=redis requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("unknown TOKEN_STORE %q", c.Session.Store)
	}
	if c.ReferenceTTL < 0 {
		return errors.New("REFERENCE_TTL must not be negative")
	}
	return nil
}
