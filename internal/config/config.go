package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

var knownWeakSecrets = []string{
	"change-me", "dev-secret-change-me", "secret", "admin", "password", "ecodive",
}

type Config struct {
	Port               int           `env:"PORT" envDefault:"5001"`
	DatabaseURL        string        `env:"DATABASE_URL,required,notEmpty"`
	RedisURL           string        `env:"REDIS_URL"`
	SessionSecret      string        `env:"SESSION_SECRET" envDefault:"dev-secret-change-me"`
	SessionTTL         time.Duration `env:"SESSION_TTL" envDefault:"0s"`
	SessionIssuer      string        `env:"SESSION_ISSUER" envDefault:"ecodive-backoffice"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"console"`
	StaticDir          string        `env:"STATIC_DIR" envDefault:"static"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	AutoMigrate        bool          `env:"AUTO_MIGRATE" envDefault:"true"`
	LoginRateLimit     int           `env:"LOGIN_RATE_LIMIT" envDefault:"10"`
	LoginRateWindow    time.Duration `env:"LOGIN_RATE_WINDOW" envDefault:"15m"`
	AppEnv             string        `env:"APP_ENV" envDefault:"development"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Validate checks what the server needs on top of Load. Tools that only
// touch Postgres, such as seed-admin, skip it.
func (c *Config) Validate() error {
	if c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}
	if c.LoginRateLimit <= 0 {
		return fmt.Errorf("LOGIN_RATE_LIMIT must be positive, got %d", c.LoginRateLimit)
	}
	if c.LoginRateWindow < time.Second {
		return fmt.Errorf("LOGIN_RATE_WINDOW must be at least 1s, got %s", c.LoginRateWindow)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL must not be negative")
	}

	if c.IsProduction() {
		if err := validateSecret("SESSION_SECRET", c.SessionSecret); err != nil {
			return err
		}
		if strings.HasPrefix(c.RedisURL, "redis://") {
			log.Warn().Msg("REDIS_URL uses redis:// (not TLS) in production: consider using rediss://")
		}
		if c.SessionTTL == 0 {
			log.Warn().Msg("SESSION_TTL is 0 in production: session tokens never expire until logout")
		}
	}

	return nil
}

func validateSecret(name, value string) error {
	if len(value) < 32 {
		return fmt.Errorf("%s must be at least 32 characters in production (generate with: openssl rand -base64 32)", name)
	}
	for _, weak := range knownWeakSecrets {
		if value == weak {
			return fmt.Errorf("%s is a known weak default; set a strong secret in production", name)
		}
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
