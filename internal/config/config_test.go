package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.True(t, cfg.IsDev())
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, DefaultJWTSecret, cfg.JWT.Secret)
	assert.Zero(t, cfg.JWT.TTL())
	assert.Equal(t, 100, cfg.RateLimit.Max)
	assert.Equal(t, 5, cfg.RateLimit.AuthMax)
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
	assert.Empty(t, cfg.Seed.Email)
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"APP_MODE":            "prod",
		"PORT":                "8080",
		"DB_DRIVER":           "Postgres",
		"DB_HOST":             "db",
		"DB_PORT":             "5432",
		"DB_PASS":             "secret",
		"JWT_SECRET":          "real-secret",
		"JWT_TTL_MINUTES":     "90",
		"AUTH_RATE_LIMIT_MAX": "0",
		"ALLOWED_ORIGINS":     "https://rent.example.com",
		"SEED_MANAGER_EMAIL":  "boss@example.com",
	})
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 90*time.Minute, cfg.JWT.TTL())
	assert.Zero(t, cfg.RateLimit.AuthMax)
	assert.Equal(t, "https://rent.example.com", cfg.GetAllowedOrigins())
	assert.Equal(t, "boss@example.com", cfg.Seed.Email)
	assert.Equal(t, "Manager", cfg.Seed.Name)
}

func TestLoadFromRejects(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{name: "unknown mode", environ: map[string]string{"APP_MODE": "staging"}},
		{name: "unknown driver", environ: map[string]string{"DB_DRIVER": "oracle"}},
		{name: "default secret in prod", environ: map[string]string{"APP_MODE": "prod"}},
		{name: "negative ttl", environ: map[string]string{"JWT_TTL_MINUTES": "-1"}},
		{name: "negative limit", environ: map[string]string{"RATE_LIMIT_MAX": "-5"}},
		{name: "non numeric ttl", environ: map[string]string{"JWT_TTL_MINUTES": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.environ)
			assert.Error(t, err)
		})
	}
}

func TestBuildDSN(t *testing.T) {
	db := DatabaseConfig{Host: "h", Port: "1", User: "u", Password: "p", DBName: "n", SSLMode: "disable", Path: "x.db"}

	tests := []struct {
		driver string
		want   string
	}{
		{driver: "mysql", want: "u:p@tcp(h:1)/n?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true"},
		{driver: "postgres", want: "host=h port=1 user=u password=p dbname=n sslmode=disable TimeZone=UTC"},
		{driver: "sqlite", want: "x.db"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			db.Driver = tt.driver
			assert.Equal(t, tt.want, buildDSN(db))
		})
	}
}
