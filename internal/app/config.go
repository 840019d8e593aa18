package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"signus/internal/crypto"
	"signus/internal/domain"
	"signus/internal/logging"
)

// Environment variables that override file settings.
const (
	EnvLogLevel    = "SIGNUS_LOG_LEVEL"
	EnvLogFormat   = "SIGNUS_LOG_FORMAT"
	EnvCryptoTypes = "SIGNUS_CRYPTO_TYPES"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Crypto CryptoConfig `yaml:"crypto"`
	Log    LogConfig    `yaml:"log"`
}

// CryptoConfig restricts which crypto types the registry exposes.
type CryptoConfig struct {
	Enabled []string `yaml:"enabled"`
}

// LogConfig selects the logger's level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig enables every built-in crypto type and logs at info.
func DefaultConfig() Config {
	return Config{
		Crypto: CryptoConfig{Enabled: crypto.BuiltinTypes()},
		Log:    LogConfig{Level: "info", Format: logging.FormatConsole},
	}
}

// LoadConfig reads path over DefaultConfig and applies env overrides.
// An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		var parsed Config
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		Merge(&cfg, parsed)
	}
	ApplyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Merge copies the fields set in src onto dst.
func Merge(dst *Config, src Config) {
	if src.Crypto.Enabled != nil {
		dst.Crypto.Enabled = src.Crypto.Enabled
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.Format != "" {
		dst.Log.Format = src.Log.Format
	}
}

// ApplyEnvOverrides overlays SIGNUS_* variables on cfg.
func ApplyEnvOverrides(cfg *Config) {
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		cfg.Log.Level = level
	}
	if format := strings.TrimSpace(os.Getenv(EnvLogFormat)); format != "" {
		cfg.Log.Format = format
	}
	if raw := strings.TrimSpace(os.Getenv(EnvCryptoTypes)); raw != "" {
		var types []string
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
		cfg.Crypto.Enabled = types
	}
}

// Validate checks that every enabled type is built in and that the default
// type is among them.
func (c Config) Validate() error {
	if len(c.Crypto.Enabled) == 0 {
		return errors.New("config: crypto.enabled is empty")
	}
	builtin := crypto.BuiltinTypes()
	hasDefault := false
	for _, t := range c.Crypto.Enabled {
		if !contains(builtin, t) {
			return fmt.Errorf("config: unknown crypto type %q", t)
		}
		if t == domain.DefaultCryptoType {
			hasDefault = true
		}
	}
	if !hasDefault {
		return fmt.Errorf("config: crypto.enabled must include %q", domain.DefaultCryptoType)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
