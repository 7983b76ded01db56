// Package config loads the mapnav server configuration from a YAML file
// and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file values.
const (
	EnvAddr     = "MAPNAV_ADDR"
	EnvMapsDir  = "MAPNAV_MAPS_DIR"
	EnvLogLevel = "MAPNAV_LOG_LEVEL"
)

// Default configuration values
const (
	DefaultAddr         = ":8080"
	DefaultMapsDir      = "maps"
	DefaultLogLevel     = "info"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// validate is a singleton validator instance
var validate = validator.New()

// Config holds the server configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr" validate:"required"`

	// MapsDir holds the *.yaml, *.yml and *.json map documents loaded at startup.
	MapsDir string `yaml:"maps_dir" validate:"required"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gt=0"`

	// Prefetch fetches every map of a chain concurrently.
	Prefetch bool `yaml:"prefetch"`

	// MetricsEnabled exposes /metrics.
	MetricsEnabled bool `yaml:"metrics_enabled"`

	// MaxChainHops caps the number of gateway hops in a route; 0 is unlimited.
	MaxChainHops int `yaml:"max_chain_hops" validate:"gte=0"`

	// ClosedMaps are maps no route may pass through or end on.
	ClosedMaps []string `yaml:"closed_maps" validate:"dive,required"`
}

// Default returns a Config with every field at its default.
func Default() Config {
	return Config{
		Addr:           DefaultAddr,
		MapsDir:        DefaultMapsDir,
		LogLevel:       DefaultLogLevel,
		ReadTimeout:    DefaultReadTimeout,
		WriteTimeout:   DefaultWriteTimeout,
		MetricsEnabled: true,
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := Parse(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document leaves out.
// Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from the environment. lookup is usually
// os.LookupEnv; empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup(EnvMapsDir); ok && v != "" {
		c.MapsDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

// Validate checks the struct constraints of c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// SlogLevel converts LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// formatValidationError converts validator errors to a readable message
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", e.Field(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
}
