package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"signalsite/internal/domain"
	"signalsite/internal/infrastructure/sqlite"
)

type Config struct {
	HTTPAddr      string        `env:"HTTP_ADDR" envDefault:":8080"`
	Port          string        `env:"PORT"`
	DatabaseURL   string        `env:"DATABASE_URL" envDefault:"postgres://localhost:5432/signalsite?sslmode=disable"`
	RedisURL      string        `env:"REDIS_URL"`
	DefaultLocale string        `env:"DEFAULT_LOCALE" envDefault:"en"`
	SubmissionTTL time.Duration `env:"SUBMISSION_TTL" envDefault:"10m"`
	UrgencyWindow time.Duration `env:"URGENCY_WINDOW"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	AutoMigrate   bool          `env:"AUTO_MIGRATE" envDefault:"true"`

	Locale domain.Locale
	Level  zapcore.Level
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate applies every rule to the loaded configuration.
func (c *Config) validate() error {
	if port := strings.TrimSpace(c.Port); port != "" {
		for _, r := range port {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: PORT must be numeric, got %q", c.Port)
			}
		}
		c.HTTPAddr = ":" + port
	}
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("config: HTTP_ADDR cannot be empty")
	}

	locale, ok := domain.ParseLocale(c.DefaultLocale)
	if !ok {
		return fmt.Errorf("config: DEFAULT_LOCALE %q is not supported (en, es)", c.DefaultLocale)
	}
	c.Locale = locale

	if err := validateDatabaseURL(c.DatabaseURL); err != nil {
		return err
	}

	if c.RedisURL != "" {
		parsed, err := url.Parse(c.RedisURL)
		if err != nil || (parsed.Scheme != "redis" && parsed.Scheme != "rediss") {
			return fmt.Errorf("config: REDIS_URL invalid (%q): expected redis:// or rediss://", c.RedisURL)
		}
	}

	if c.SubmissionTTL <= 0 {
		return fmt.Errorf("config: SUBMISSION_TTL must be positive, got %s", c.SubmissionTTL)
	}
	if c.UrgencyWindow < 0 {
		return fmt.Errorf("config: URGENCY_WINDOW must not be negative, got %s", c.UrgencyWindow)
	}

	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("config: LOG_LEVEL invalid (%q): %w", c.LogLevel, err)
	}
	c.Level = level

	return nil
}

func validateDatabaseURL(dsn string) error {
	if strings.TrimSpace(dsn) == "" {
		return fmt.Errorf("config: DATABASE_URL cannot be empty")
	}
	if sqlite.IsSQLiteURL(dsn) {
		if strings.TrimPrefix(dsn, sqlite.Scheme) == "" {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): missing sqlite path", dsn)
		}
		return nil
	}
	parsed, err := url.Parse(dsn)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", dsn, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", dsn)
	}
	return nil
}
