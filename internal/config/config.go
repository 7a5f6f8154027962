package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store backends
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// Config represents the flat electa configuration
type Config struct {
	Version     string `json:"version"`
	Actor       string `json:"actor,omitempty"`        // default caller identity
	Store       string `json:"store,omitempty"`        // sqlite, postgres or memory
	DBPath      string `json:"db_path,omitempty"`      // sqlite file
	PostgresDSN string `json:"postgres_dsn,omitempty"` // postgres connection string
	LogLevel    string `json:"log_level,omitempty"`    // debug, info, warn or error
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:  CurrentVersion,
		Store:    StoreSQLite,
		LogLevel: "warn",
	}
}

// LoadConfig reads .electa/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".electa", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Load reads the config in dir, falling back to Default when the file
// does not exist, then applies environment overrides. It does not validate,
// so callers can layer flags on top first.
func Load(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// Resolve is Load followed by Validate.
func Resolve(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	electaDir := filepath.Join(dir, ".electa")
	if err := os.MkdirAll(electaDir, 0755); err != nil {
		return fmt.Errorf("failed to create .electa dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(electaDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ApplyEnv overrides fields from ELECTA_* environment variables.
func (c *Config) ApplyEnv() {
	c.Actor = envOr("ELECTA_ACTOR", c.Actor)
	c.Store = envOr("ELECTA_STORE", c.Store)
	c.DBPath = envOr("ELECTA_DB", c.DBPath)
	c.PostgresDSN = envOr("ELECTA_POSTGRES_DSN", c.PostgresDSN)
	c.LogLevel = envOr("ELECTA_LOG_LEVEL", c.LogLevel)
}

// Validate checks the store backend and its connection settings.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreMemory:
		return nil
	case StorePostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return errors.New("postgres store requires a dsn (--dsn or ELECTA_POSTGRES_DSN)")
		}
		return nil
	default:
		return fmt.Errorf("unknown store %q (want sqlite, postgres or memory)", c.Store)
	}
}

// DefaultDBPath returns ~/.electa/electa.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".electa", "electa.db"), nil
}

func envOr(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}
