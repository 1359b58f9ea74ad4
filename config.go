package main

import (
	"fmt"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration, read from the environment
type Config struct {
	Port          int    `env:"PORT" envDefault:"3000"`
	Host          string `env:"ARENA_HOST"`
	PublicDir     string `env:"ARENA_PUBLIC_DIR" envDefault:"public"`
	AnalyticsDB   string `env:"ARENA_ANALYTICS_DB"`
	MaxConnsPerIP int    `env:"ARENA_MAX_CONNS_PER_IP" envDefault:"5"`
	MaxConns      int    `env:"ARENA_MAX_CONNS" envDefault:"1000"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadConfig parses and validates the environment configuration
func LoadConfig() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.MaxConnsPerIP <= 0 || cfg.MaxConns <= 0 {
		return Config{}, fmt.Errorf("connection limits must be positive")
	}
	return cfg, nil
}

// Addr is the HTTP listen address
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
