// Package config manages horcrux's CLI default settings. It holds nothing
// related to secret material: split/reconstruct always take their inputs
// from flags, files, and the oracle, never from a persisted config file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the CLI's persisted default settings: the encoding the
// split command falls back to when --type is not given, plus a field width
// and a log level that are stored and loaded but not read by any command.
type Config struct {
	// DefaultWidth is a GF(2^n) bit width (one of 8,16,32,64,128,256). It
	// is stored and loaded only: split has no --width flag and always
	// selects the width from the secret's byte length.
	DefaultWidth int `json:"default_width,omitempty"`

	// DefaultEncoding is "compact" or "random", used when --type is not
	// passed to split.
	DefaultEncoding string `json:"default_encoding,omitempty"`

	// LogLevel is the zap level name ("debug", "info", "warn", "error").
	// The CLI does not apply it: its logger always starts at info level.
	LogLevel string `json:"log_level,omitempty"`

	// ConfigDir is not serialized; it is set at runtime to the directory
	// the config was loaded from (or will be saved to).
	ConfigDir string `json:"-"`
}

// DefaultConfigDir returns the default config directory, ~/.horcrux.
func DefaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".horcrux")
}

// Default returns the built-in configuration used when no config file
// exists: 256-bit width, compact encoding, info-level logging.
func Default() *Config {
	return &Config{
		DefaultWidth:    256,
		DefaultEncoding: "compact",
		LogLevel:        "info",
	}
}

// Load loads configuration from configDir/config.json, falling back to
// Default() if no config file exists yet.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	configPath := filepath.Join(configDir, "config.json")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.ConfigDir = configDir
			return cfg, nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.ConfigDir = configDir
	return cfg, nil
}

// Exists reports whether a config file exists in configDir.
func Exists(configDir string) bool {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	_, err := os.Stat(filepath.Join(configDir, "config.json"))
	return err == nil
}

// Save writes the configuration to c.ConfigDir/config.json, creating the
// directory if necessary.
func (c *Config) Save() error {
	if c.ConfigDir == "" {
		c.ConfigDir = DefaultConfigDir()
	}
	if err := os.MkdirAll(c.ConfigDir, 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	configPath := filepath.Join(c.ConfigDir, "config.json")
	return os.WriteFile(configPath, data, 0o600)
}
