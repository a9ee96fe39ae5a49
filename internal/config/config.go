// Package config loads skylark's environment configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultOperator is recorded in the assignment log when no operator is known.
const DefaultOperator = "operator"

// Config is the runtime configuration.
type Config struct {
	Home     string `env:"SKYLARK_HOME"`
	DBPath   string `env:"SKYLARK_DB_PATH"`
	LogFile  string `env:"SKYLARK_LOG_FILE"`
	Operator string `env:"SKYLARK_OPERATOR"`
	NoColor  bool   `env:"SKYLARK_NO_COLOR"`
}

// Load reads .env files (default: ./.env) into the environment and parses the
// configuration. A missing .env file is not an error; variables already set
// in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv parses the configuration from the current environment and fills
// in defaults for anything unset.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		c.Home = filepath.Join(home, ".skylark")
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.Home, "skylark.db")
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(c.Home, "skylark.log")
	}
	if c.Operator == "" {
		c.Operator = os.Getenv("USER")
	}
	if c.Operator == "" {
		c.Operator = DefaultOperator
	}
	return nil
}
