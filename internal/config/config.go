// Package config loads the tool's YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings. Everything has a working
// default; the config file is optional.
type Config struct {
	// DataDir is where the database lives. Environment variables in the
	// value are expanded ("$HOME/cnc" works).
	DataDir string `yaml:"data_dir"`
	// DatabaseFile is the database file name inside DataDir, or an
	// absolute path that overrides DataDir entirely.
	DatabaseFile string `yaml:"database_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:      defaultDataDir(),
		DatabaseFile: "sheets.db",
	}
}

// Load reads the config file at path, falling back to defaults for any
// unset field. A missing file is not an error: defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.DataDir = os.ExpandEnv(cfg.DataDir)
	cfg.DatabaseFile = os.ExpandEnv(cfg.DatabaseFile)
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.DatabaseFile == "" {
		cfg.DatabaseFile = "sheets.db"
	}
	return cfg, nil
}

// DatabasePath resolves the full database file path.
func (c Config) DatabasePath() string {
	if filepath.IsAbs(c.DatabaseFile) {
		return c.DatabaseFile
	}
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// DefaultPath returns the default config file location:
// $XDG_CONFIG_HOME/setupsheets/config.yaml, or ~/.config/setupsheets/config.yaml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".setupsheets", "config.yaml")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "setupsheets", "config.yaml")
}

// defaultDataDir returns ~/.setupsheets, or .setupsheets when the home
// directory cannot be determined.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".setupsheets"
	}
	return filepath.Join(home, ".setupsheets")
}
