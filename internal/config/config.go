package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/alexanderramin/gesta/internal/llm"
)

// Config is the process configuration read from GESTA_* variables.
type Config struct {
	DBPath      string `env:"GESTA_DB"`
	Seed        uint64 `env:"GESTA_SEED"`
	LogUseCases bool   `env:"GESTA_LOG_USE_CASES" envDefault:"false"`

	LLM llm.LLMConfig
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and fills in defaults that depend on the host.
// An empty DBPath resolves to ~/.gesta/gesta.db.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".gesta", "gesta.db")
	}
	cfg.LLM = cfg.LLM.Sanitize()
	return cfg, nil
}
