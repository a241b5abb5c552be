package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"signalsite/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HTTP_ADDR", "PORT", "DATABASE_URL", "REDIS_URL", "DEFAULT_LOCALE", "SUBMISSION_TTL", "URGENCY_WINDOW", "LOG_LEVEL", "AUTO_MIGRATE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/signalsite?sslmode=disable")
	t.Setenv("DEFAULT_LOCALE", "en")
	t.Setenv("SUBMISSION_TTL", "10m")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("AUTO_MIGRATE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, domain.LocaleEN, cfg.Locale)
	assert.Equal(t, 10*time.Minute, cfg.SubmissionTTL)
	assert.Equal(t, zapcore.InfoLevel, cfg.Level)
	assert.True(t, cfg.AutoMigrate)
	assert.Zero(t, cfg.UrgencyWindow)
}

func validConfig() *Config {
	return &Config{
		HTTPAddr:      ":8080",
		DatabaseURL:   "postgres://localhost:5432/signalsite",
		DefaultLocale: "en",
		SubmissionTTL: time.Minute,
		LogLevel:      "info",
	}
}

func TestValidate_PortOverridesAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "3000"

	require.NoError(t, cfg.validate())
	assert.Equal(t, ":3000", cfg.HTTPAddr)
}

func TestValidate_Accepts(t *testing.T) {
	cases := map[string]func(*Config){
		"spanish locale":  func(c *Config) { c.DefaultLocale = "es-MX" },
		"sqlite database": func(c *Config) { c.DatabaseURL = "sqlite:leads.db" },
		"redis":           func(c *Config) { c.RedisURL = "redis://localhost:6379/0" },
		"debug logging":   func(c *Config) { c.LogLevel = "debug" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(cfg)
			assert.NoError(t, cfg.validate())
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"non numeric port":   func(c *Config) { c.Port = "80a" },
		"empty addr":         func(c *Config) { c.HTTPAddr = " " },
		"unsupported locale": func(c *Config) { c.DefaultLocale = "fr" },
		"empty database":     func(c *Config) { c.DatabaseURL = "" },
		"database no host":   func(c *Config) { c.DatabaseURL = "postgres:///db" },
		"sqlite no path":     func(c *Config) { c.DatabaseURL = "sqlite:" },
		"redis bad scheme":   func(c *Config) { c.RedisURL = "http://localhost" },
		"zero ttl":           func(c *Config) { c.SubmissionTTL = 0 },
		"negative window":    func(c *Config) { c.UrgencyWindow = -time.Hour },
		"bad log level":      func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(cfg)
			assert.Error(t, cfg.validate())
		})
	}
}
