// Package config loads the carbontrack configuration file.
//
// Configuration lives in YAML under ~/.carbontrack/config.yaml by default.
// A missing file is not an error: built-in defaults apply, and individual
// values can be overridden by environment variables and CLI flags (flags
// win, then environment, then file, then defaults).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variable overrides.
const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "CARBONTRACK_CONFIG"

	// EnvLogLevel overrides logging.level.
	EnvLogLevel = "CARBONTRACK_LOG_LEVEL"
)

// LoggingConfig controls structured log output.
type LoggingConfig struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`

	// File, when set, appends logs to this path in addition to stderr.
	File string `yaml:"file,omitempty"`
}

// GeoConfig points the distance provider at its geocoding and routing
// services.
type GeoConfig struct {
	// GeocodeURL is the Nominatim-compatible base URL.
	GeocodeURL string `yaml:"geocode_url,omitempty"`

	// RouteURL is the OSRM-compatible base URL.
	RouteURL string `yaml:"route_url,omitempty"`

	// TimeoutSeconds bounds a full distance lookup. Zero keeps the
	// provider default.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// Config is the full carbontrack configuration.
type Config struct {
	// Factors is the path of the emission factor JSON document.
	Factors string `yaml:"factors"`

	// History is the path of the saved-results history file.
	History string `yaml:"history"`

	Logging LoggingConfig `yaml:"logging"`
	Geo     GeoConfig     `yaml:"geo"`
}

// DefaultDir returns the carbontrack data directory, ~/.carbontrack.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(homeDir, ".carbontrack"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// defaults returns a Config populated with built-in values rooted at dir.
func defaults(dir string) *Config {
	return &Config{
		Factors: filepath.Join(dir, "emission_factors.json"),
		History: filepath.Join(dir, "history.json"),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the configuration from path, falling back to defaults when the
// file does not exist. An empty path resolves via CARBONTRACK_CONFIG and
// then the default location. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	cfg := defaults(dir)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		// Missing config is fine: defaults apply.
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides layers environment variables on top of file values.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
}
