package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr          string        `env:"PARADISE_ADDR"            envDefault:":8080"`
	MaxBodyBytes  int           `env:"PARADISE_MAX_BODY_BYTES"  envDefault:"65536"`
	ReadTimeout   time.Duration `env:"PARADISE_READ_TIMEOUT"    envDefault:"10s"`
	WriteTimeout  time.Duration `env:"PARADISE_WRITE_TIMEOUT"   envDefault:"10s"`
	MaxSweepSteps int           `env:"PARADISE_MAX_SWEEP_STEPS" envDefault:"200"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerConfig reads the server settings from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.MaxBodyBytes <= 0 {
		return cfg, &ValidationError{Field: "PARADISE_MAX_BODY_BYTES", Message: "must be positive"}
	}
	if cfg.MaxSweepSteps < 1 {
		return cfg, &ValidationError{Field: "PARADISE_MAX_SWEEP_STEPS", Message: "must be at least 1"}
	}
	return cfg, nil
}
