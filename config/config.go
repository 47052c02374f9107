// SPDX-License-Identifier: MIT

// Package config loads socialgraph settings from a YAML file, an optional
// .env file and SOCIALGRAPH_* environment variables, in that order of
// increasing precedence. Command-line flags are applied by the caller last.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SOCIALGRAPH_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full runtime configuration.
type Config struct {
	// Input is the edge-list path (".gz" is decompressed).
	Input string `yaml:"input"`
	// SearchRoot is the raw node label the reachability search starts from.
	SearchRoot int64 `yaml:"search_root"`
	// MaxPaths caps geodesic enumeration per pair; 0 means unlimited.
	MaxPaths int `yaml:"max_paths" validate:"gte=0"`
	// Workers bounds parallel betweenness aggregation; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`
	// Strategy selects the shortest-path node selection ("linear" or "heap").
	Strategy string `yaml:"strategy" validate:"oneof=linear heap"`
	// Output selects the result format ("table" or "json").
	Output string `yaml:"output" validate:"oneof=table json"`

	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// ServerConfig configures the HTTP query service.
type ServerConfig struct {
	Addr           string   `yaml:"addr" validate:"required"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:      "facebook_combined.txt",
		SearchRoot: 107,
		MaxPaths:   0,
		Workers:    0,
		Strategy:   "linear",
		Output:     "table",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load builds a Config from Default, the YAML file at path (skipped when path
// is empty), the given .env files (".env" when none is given; a missing file
// is not an error) and finally SOCIALGRAPH_* variables. The result is
// validated.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: env file %s: %w", f, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv overrides fields from SOCIALGRAPH_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	num := func(name string, set func(int64)) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, name, v, err)
		}
		set(n)
		return nil
	}

	str("INPUT", &c.Input)
	str("STRATEGY", &c.Strategy)
	str("OUTPUT", &c.Output)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("SERVER_ADDR", &c.Server.Addr)
	if v, ok := lookup(EnvPrefix + "ALLOWED_ORIGINS"); ok {
		c.Server.AllowedOrigins = splitList(v)
	}

	if err := num("SEARCH_ROOT", func(n int64) { c.SearchRoot = n }); err != nil {
		return err
	}
	if err := num("MAX_PATHS", func(n int64) { c.MaxPaths = int(n) }); err != nil {
		return err
	}

	return num("WORKERS", func(n int64) { c.Workers = int(n) })
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and wraps failures in ErrInvalid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// NewLogger builds a slog.Logger writing to w according to c.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// level maps the configured name onto a slog.Level, defaulting to info.
func (c LogConfig) level() slog.Level {
	switch strings.ToLower(c.Level) {
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
