package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	IdentitySourceStatic = "static"
	IdentitySourceMongo  = "mongo"

	SessionBackendFile   = "file"
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

type Config struct {
	Port     string `env:"PORT, default=8080"`
	Env      string `env:"ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	HTTP    HTTPConfig
	Auth    AuthConfig
	Catalog CatalogConfig
	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type HTTPConfig struct {
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:5173"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`
}

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET"`
	TokenTTL       time.Duration `env:"TOKEN_TTL, default=24h"`
	LoginDelay     time.Duration `env:"LOGIN_DELAY, default=800ms"`
	LoginRate      float64       `env:"LOGIN_RATE, default=5"`
	LoginBurst     int           `env:"LOGIN_BURST, default=10"`
	IdentitySource string        `env:"IDENTITY_SOURCE, default=static"`
}

type CatalogConfig struct {
	LowStockThreshold int `env:"LOW_STOCK_THRESHOLD, default=100"`
}

type SessionConfig struct {
	Backend string `env:"SESSION_BACKEND, default=file"`
	Dir     string `env:"SESSION_DIR, default=.commodities"`
	Key     string `env:"SESSION_KEY, default=user"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB, default=commodities"`
	Seed     bool   `env:"MONGO_SEED, default=false"`
}

type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR, default=localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB, default=0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX, default=commodities:slot:"`
}

// Option adjusts the environment values before validation, e.g. from
// command-line flags.
type Option func(*Config)

// WithSessionBackend overrides SESSION_BACKEND when backend is not empty.
func WithSessionBackend(backend string) Option {
	return func(c *Config) {
		if backend != "" {
			c.Session.Backend = backend
		}
	}
}

// WithSessionDir overrides SESSION_DIR when dir is not empty.
func WithSessionDir(dir string) Option {
	return func(c *Config) {
		if dir != "" {
			c.Session.Dir = dir
		}
	}
}

// Load reads configuration from environment variables using go-envconfig,
// applies opts and validates the result.
func Load(ctx context.Context, opts ...Option) (*Config, error) {
	return load(ctx, envconfig.OsLookuper(), opts...)
}

func load(ctx context.Context, lookuper envconfig.Lookuper, opts ...Option) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether human-friendly output should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// CheckTokenSecret fails when tokens would be signed with a per-process
// secret outside development. Only processes that issue tokens call it.
func (c *Config) CheckTokenSecret() error {
	if c.Auth.JWTSecret == "" && !c.IsDevelopment() {
		return fmt.Errorf("config: JWT_SECRET is required outside development")
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Auth.IdentitySource {
	case IdentitySourceStatic, IdentitySourceMongo:
	default:
		return fmt.Errorf("IDENTITY_SOURCE must be %q or %q, got %q", IdentitySourceStatic, IdentitySourceMongo, c.Auth.IdentitySource)
	}
	switch c.Session.Backend {
	case SessionBackendFile, SessionBackendRedis, SessionBackendMemory:
	default:
		return fmt.Errorf("SESSION_BACKEND must be file, redis or memory, got %q", c.Session.Backend)
	}
	if c.Auth.LoginDelay < 0 {
		return fmt.Errorf("LOGIN_DELAY must not be negative")
	}
	return nil
}
