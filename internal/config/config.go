// Package config loads algoviz settings from file, environment and defaults.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendRedis  = "redis"
)

// Defaults.
const (
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultRateLimit       = 20.0
	DefaultRateBurst       = 40
	DefaultBackend         = BackendMemory
	DefaultFilePath        = ".algoviz/sessions"
	DefaultBoltPath        = ".algoviz/sessions.db"
	DefaultRedisAddr       = "localhost:6379"
	DefaultRedisPrefix     = "algoviz:session:"
	DefaultMaxArrayLength  = 200
)

// Config is the top-level configuration.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Limits LimitsConfig `mapstructure:"limits"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// ServerConfig holds the HTTP listener knobs.
type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
	// MetricsAddr serves /metrics on a separate listener when set.
	MetricsAddr     string        `mapstructure:"metrics_addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	// RateLimit is requests per second per client; zero disables limiting.
	RateLimit float64 `mapstructure:"rate_limit" validate:"gte=0"`
	RateBurst int     `mapstructure:"rate_burst" validate:"gte=0"`
}

// StoreConfig selects where linked list sessions live.
type StoreConfig struct {
	Backend string      `mapstructure:"backend" validate:"oneof=memory file bolt redis"`
	Path    string      `mapstructure:"path"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db" validate:"gte=0"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl" validate:"gte=0"`
	// Lock enables distributed session locking through redis.
	Lock bool `mapstructure:"lock"`
}

// LimitsConfig bounds generator inputs.
type LimitsConfig struct {
	MaxArrayLength int `mapstructure:"max_array_length" validate:"gte=0"`
}

var validate = validator.New()

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Store.Backend == BackendRedis && c.Store.Redis.Addr == "" {
		return fmt.Errorf("store.redis.addr is required for the redis backend")
	}
	if c.Store.Redis.Lock && c.Store.Backend != BackendRedis {
		return fmt.Errorf("store.redis.lock requires the redis backend")
	}
	return nil
}

// StorePath returns the configured path, or the backend default.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	if c.Store.Backend == BackendBolt {
		return DefaultBoltPath
	}
	return DefaultFilePath
}
