// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds all runtime settings.
type Config struct {
	DBPath      string `env:"AKSHARA_DB"`
	LogLevel    string `env:"AKSHARA_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
	LogFile     string `env:"AKSHARA_LOG_FILE"`
	ReviewLimit int    `env:"AKSHARA_REVIEW_LIMIT" envDefault:"20" validate:"gte=1,lte=20"`
	Curriculum  string `env:"AKSHARA_CURRICULUM"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration.
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
