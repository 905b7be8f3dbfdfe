package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the environment driven configuration for the survey service
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"symptom-survey"`
	Port            string        `env:"PORT" envDefault:"8080"`
	DatabasePath    string        `env:"DATABASE_PATH" envDefault:"database.db"`
	TemplatesDir    string        `env:"TEMPLATES_DIR" envDefault:"templates"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"static"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"` // "console" or "json"
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`
}

// Load reads an optional .env file and parses environment variables into Config
func Load(envFiles ...string) (*Config, error) {
	// A missing .env is fine; real environments set variables directly
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Port), ":")

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}
	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH must not be empty")
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be console or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}
