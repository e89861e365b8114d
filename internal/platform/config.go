package platform

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultListenAddr is where the serve command binds when nothing else is
// configured. Loopback only: the API is a private channel to the GUI.
const DefaultListenAddr = "127.0.0.1:7887"

// Config is the on-disk configuration for the serve command.
type Config struct {
	Listen   string `yaml:"listen"`
	DataRoot string `yaml:"data_root"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Listen:   DefaultListenAddr,
		LogLevel: "info",
	}
}

// LoadConfig reads a yaml config file, filling unset fields with defaults.
// A missing file is not an error; it yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Listen == "" {
		cfg.Listen = DefaultListenAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// Level maps the configured log level onto a slog.Level.
// Unknown values fall back to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
