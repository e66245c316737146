package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the optional serve and output settings read from
// ~/.healthsnap.yaml. Classification thresholds are fixed and deliberately
// not configurable.
type Config struct {
	OutputPath     string `yaml:"output_path"`
	ListenAddr     string `yaml:"listen_addr"`
	RefreshSeconds int    `yaml:"refresh_seconds"`
	AuthSecret     string `yaml:"auth_secret"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ListenAddr:     "localhost:8080",
		RefreshSeconds: 2,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".healthsnap.yaml")
}

// Load reads the config file at path, falling back to the per-user default
// location when path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "localhost:8080"
	}
	if cfg.RefreshSeconds <= 0 {
		cfg.RefreshSeconds = 2
	}

	return cfg, nil
}

// ExpandHome resolves a leading "~" against the user's home directory.
func ExpandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
