// Package config loads the cubecore settings file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubecore/pkg/cube"
	"github.com/SeamusWaldron/cubecore/pkg/optimizer"
	"github.com/SeamusWaldron/cubecore/pkg/scramble"
)

// dirName is the per-user directory holding the config file and database.
const dirName = ".cubecore"

// Config holds every setting the command-line tool reads. The library
// packages never see it; callers turn it into functional options.
type Config struct {
	DBPath         string   `json:"db_path,omitempty"`
	HistoryCap     int      `json:"history_cap,omitempty"`
	PassBudget     int      `json:"pass_budget,omitempty"`
	ScrambleLength int      `json:"scramble_length,omitempty"`
	SolverCommand  []string `json:"solver_command,omitempty"`
	LogLevel       string   `json:"log_level,omitempty"`
}

// Default returns the built-in settings. DBPath is left empty and resolved
// by the storage package.
func Default() Config {
	return Config{
		HistoryCap:     cube.DefaultHistoryCap,
		PassBudget:     optimizer.DefaultPassBudget,
		ScrambleLength: scramble.DefaultLength,
		LogLevel:       logrus.InfoLevel.String(),
	}
}

// Dir returns ~/.cubecore, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, dirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return dir, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file at path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects values no component can work with.
func (c Config) Validate() error {
	if c.HistoryCap < 1 {
		return fmt.Errorf("config: history_cap must be at least 1, got %d", c.HistoryCap)
	}
	if c.PassBudget < 1 {
		return fmt.Errorf("config: pass_budget must be at least 1, got %d", c.PassBudget)
	}
	if c.ScrambleLength < 0 {
		return fmt.Errorf("config: scramble_length must not be negative, got %d", c.ScrambleLength)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
