// Package config loads the server configuration from defaults, an optional
// YAML file and the environment, in that order of precedence.
package config

import (
	"fmt"
	"time"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/logging"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/validation"
)

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Session   SessionConfig   `koanf:"session"`
	Store     StoreConfig     `koanf:"store"`
	Logging   LoggingConfig   `koanf:"logging"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	CORS      CORSConfig      `koanf:"cors"`
	Advisor   AdvisorConfig   `koanf:"advisor"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	MaxUploadMB     int64         `koanf:"max_upload_mb" validate:"min=1,max=64"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c ServerConfig) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

type SessionConfig struct {
	CookieName    string        `koanf:"cookie_name" validate:"required"`
	TTL           time.Duration `koanf:"ttl" validate:"gt=0"`
	SweepInterval time.Duration `koanf:"sweep_interval" validate:"gt=0"`
	// Secure marks the cookie Secure; enable behind TLS.
	Secure bool `koanf:"secure"`
}

type StoreConfig struct {
	Driver        string `koanf:"driver" validate:"oneof=memory redis badger"`
	RedisAddr     string `koanf:"redis_addr" validate:"required_if=Driver redis"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db" validate:"min=0"`
	KeyPrefix     string `koanf:"key_prefix"`
	BadgerPath    string `koanf:"badger_path" validate:"required_if=Driver badger"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

func (c LoggingConfig) ToLogging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Level
	cfg.Format = c.Format
	cfg.Caller = c.Caller
	return cfg
}

type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path" validate:"startswith=/"`
}

// RateLimitConfig limits state-changing requests per client IP.
type RateLimitConfig struct {
	Enabled           bool `koanf:"enabled"`
	RequestsPerMinute int  `koanf:"requests_per_minute" validate:"min=1"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

type AdvisorConfig struct {
	Enabled bool          `koanf:"enabled"`
	APIKey  string        `koanf:"api_key" validate:"required_if=Enabled true"`
	Model   string        `koanf:"model" validate:"required"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxUploadMB:     10,
		},
		Session: SessionConfig{
			CookieName:    "clazzy_session",
			TTL:           24 * time.Hour,
			SweepInterval: 5 * time.Minute,
		},
		Store: StoreConfig{
			Driver:     "memory",
			RedisAddr:  "localhost:6379",
			KeyPrefix:  "clazzy:selection:",
			BadgerPath: "data/sessions",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 120,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Advisor: AdvisorConfig{
			Model:   "gemini-2.5-flash",
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	return nil
}
