package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Backends soportados para persistir el modo de tema.
const (
	ThemeStoreMemory   = "memory"
	ThemeStoreRedis    = "redis"
	ThemeStorePostgres = "postgres"
	ThemeStoreSQLite   = "sqlite"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	AppEnv     string `env:"APP_ENV" envDefault:"production"`
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:5000/api"`

	ThemeStore    string `env:"THEME_STORE" envDefault:"memory"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	DatabaseURL   string `env:"DATABASE_URL"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"portfolio.db"`
	SessionCookie string `env:"SESSION_COOKIE" envDefault:"portfolio_session"`

	ClockInterval time.Duration `env:"CLOCK_INTERVAL" envDefault:"1s"`
	ClockFormat   string        `env:"CLOCK_FORMAT" envDefault:"Mon 15:04:05"`
	GeocodeURL    string        `env:"GEOCODE_URL" envDefault:"https://api.bigdatacloud.net/data/reverse-geocode-client"`

	NoticeDismissAfter time.Duration `env:"NOTICE_DISMISS_AFTER" envDefault:"5s"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`
	OwnerEmail   string `env:"OWNER_EMAIL"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate revisa combinaciones que env no puede expresar con tags.
func (c *Config) Validate() error {
	switch c.ThemeStore {
	case ThemeStoreMemory, ThemeStoreSQLite:
	case ThemeStoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("THEME_STORE=redis requires REDIS_ADDR")
		}
	case ThemeStorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("THEME_STORE=postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown THEME_STORE %q", c.ThemeStore)
	}
	if c.ClockInterval <= 0 {
		return fmt.Errorf("CLOCK_INTERVAL must be positive")
	}
	return nil
}

// IsDevelopment indica si el servicio corre en modo desarrollo.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
