package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultJWTSecret is only accepted in dev mode
const DefaultJWTSecret = "carrental-dev-secret"

// Config holds all configuration for the application
type Config struct {
	AppMode        string         `env:"APP_MODE" envDefault:"dev"`
	Port           string         `env:"PORT" envDefault:"3000"`
	AllowedOrigins string         `env:"ALLOWED_ORIGINS"`
	Database       DatabaseConfig `envPrefix:"DB_"`
	JWT            JWTConfig      `envPrefix:"JWT_"`
	RateLimit      RateLimitConfig
	Seed           SeedConfig `envPrefix:"SEED_MANAGER_"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string `env:"DRIVER" envDefault:"mysql"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"3306"`
	User     string `env:"USER" envDefault:"root"`
	Password string `env:"PASS"`
	DBName   string `env:"NAME" envDefault:"carrental"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
	Path     string `env:"PATH" envDefault:"carrental.db"`
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret     string `env:"SECRET" envDefault:"carrental-dev-secret"`
	TTLMinutes int    `env:"TTL_MINUTES" envDefault:"0"`
}

// TTL returns the token lifetime; zero means tokens never expire
func (j JWTConfig) TTL() time.Duration {
	return time.Duration(j.TTLMinutes) * time.Minute
}

// RateLimitConfig holds per-IP request limits per minute. Zero disables a limiter.
type RateLimitConfig struct {
	Max     int `env:"RATE_LIMIT_MAX" envDefault:"100"`
	AuthMax int `env:"AUTH_RATE_LIMIT_MAX" envDefault:"5"`
}

// SeedConfig describes the manager created on first start
type SeedConfig struct {
	Name     string `env:"NAME" envDefault:"Manager"`
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
}

// Load reads an optional .env file, then the process environment
func Load() (*Config, error) {
	// .env is optional; production passes real environment variables
	_ = godotenv.Load()

	return parse(env.Options{})
}

// LoadFrom builds a config from the given variables only
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.AppMode = strings.TrimSpace(cfg.AppMode)
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.AppMode != "dev" && c.AppMode != "prod" {
		return fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", c.AppMode)
	}

	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mysql', 'postgres' or 'sqlite')", c.Database.Driver)
	}

	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.IsProd() && c.JWT.Secret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be set in prod mode")
	}
	if c.JWT.TTLMinutes < 0 {
		return errors.New("JWT_TTL_MINUTES must not be negative")
	}
	if c.RateLimit.Max < 0 || c.RateLimit.AuthMax < 0 {
		return errors.New("rate limits must not be negative")
	}

	return nil
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	if c.AllowedOrigins == "" {
		return "*"
	}
	return c.AllowedOrigins
}
