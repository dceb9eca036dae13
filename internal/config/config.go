// Package config resolves the fixed paths decker operates on.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default path values, relative to the working tree root.
const (
	DefaultDeckDir      = "boards"
	DefaultOverviewFile = "overview.md"
	DefaultOutputFile   = "deck.md"
)

// ConfigFileName is the optional per-tree config file, read from the root.
const ConfigFileName = ".decker.yml"

// Environment variable overrides. Values from the environment take
// precedence over the config file but lose to explicit flags.
const (
	EnvRoot         = "DECKER_ROOT"
	EnvDeckDir      = "DECKER_DECK_DIR"
	EnvOverviewFile = "DECKER_OVERVIEW_FILE"
	EnvOutputFile   = "DECKER_OUTPUT_FILE"
)

// Config holds the paths for one decker run. Root is absolute or
// CWD-relative; the other fields are relative to Root.
type Config struct {
	Root         string `yaml:"-"`
	DeckDir      string `yaml:"deck_dir"`
	OverviewFile string `yaml:"overview"`
	OutputFile   string `yaml:"output"`
}

// Default returns a Config with default paths under the given root.
func Default(root string) Config {
	return Config{
		Root:         root,
		DeckDir:      DefaultDeckDir,
		OverviewFile: DefaultOverviewFile,
		OutputFile:   DefaultOutputFile,
	}
}

// ResolveRoot determines the working tree root.
// Precedence: the flag value, then $DECKER_ROOT, then the current directory.
func ResolveRoot(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if root := os.Getenv(EnvRoot); root != "" {
		return root
	}
	return "."
}

// Load builds the effective Config for a root by layering, lowest
// precedence first: defaults, .decker.yml in the root, then DECKER_*
// environment variables. Flag overrides are applied by the caller.
func Load(root string) (Config, error) {
	cfg := Default(root)

	if err := loadFile(&cfg, filepath.Join(root, ConfigFileName)); err != nil {
		return Config{}, err
	}
	loadEnv(&cfg)

	return cfg, nil
}

// loadFile merges values from a .decker.yml file, if present.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fileCfg.DeckDir != "" {
		cfg.DeckDir = fileCfg.DeckDir
	}
	if fileCfg.OverviewFile != "" {
		cfg.OverviewFile = fileCfg.OverviewFile
	}
	if fileCfg.OutputFile != "" {
		cfg.OutputFile = fileCfg.OutputFile
	}
	return nil
}

// loadEnv merges values from DECKER_* environment variables.
func loadEnv(cfg *Config) {
	if v := os.Getenv(EnvDeckDir); v != "" {
		cfg.DeckDir = v
	}
	if v := os.Getenv(EnvOverviewFile); v != "" {
		cfg.OverviewFile = v
	}
	if v := os.Getenv(EnvOutputFile); v != "" {
		cfg.OutputFile = v
	}
}

// DeckPath returns the directory holding the board directories.
func (c Config) DeckPath() string {
	return filepath.Join(c.Root, c.DeckDir)
}

// OverviewPath returns the path of the optional overview preamble file.
func (c Config) OverviewPath() string {
	return filepath.Join(c.Root, c.OverviewFile)
}

// OutputPath returns the path of the rendered deck document.
func (c Config) OutputPath() string {
	return filepath.Join(c.Root, c.OutputFile)
}
