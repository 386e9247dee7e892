package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config del servicio, todo por env vars.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"kaupapa-calendar"`

	// Si viene, usa Postgres. Si no, in-memory.
	DBDSN string `env:"DB_DSN"`

	// SeedFile es un YAML con entidades/eventos; vacío = seed demo embebido.
	SeedFile       string `env:"SEED_FILE"`
	SeedDemoEvents bool   `env:"SEED_DEMO_EVENTS" envDefault:"true"`

	// AuthVerifyURL activa el modo Bearer token; vacío = modo dev (X-Entity-ID).
	AuthVerifyURL    string        `env:"AUTH_VERIFY_URL"`
	AuthAPIKey       string        `env:"AUTH_API_KEY"`
	AuthAPIKeyHeader string        `env:"AUTH_API_KEY_HEADER" envDefault:"X-Api-Key"`
	AuthTimeout      time.Duration `env:"AUTH_TIMEOUT" envDefault:"5s"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Addr es la dirección de escucha del http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
