// Package config loads service configuration in three layers: built-in
// defaults, an optional YAML file, then CASEBOARD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"caseboard/pkg/platform/validation"
)

const (
	// EnvPrefix prefixes every environment override: CASEBOARD_SERVER_ADDR -> server.addr.
	EnvPrefix = "CASEBOARD_"
	// PathEnvVar overrides the config file location.
	PathEnvVar = "CASEBOARD_CONFIG"
	// DefaultPath is read when present and PathEnvVar is unset.
	DefaultPath = "config.yaml"
)

// Config is the full service configuration.
type Config struct {
	Server   Server   `koanf:"server" validate:"required"`
	Dataset  Dataset  `koanf:"dataset" validate:"required"`
	Render   Render   `koanf:"render" validate:"required"`
	Security Security `koanf:"security"`
	Logging  Logging  `koanf:"logging" validate:"required"`
	Metrics  Metrics  `koanf:"metrics"`
	Limits   Limits   `koanf:"limits" validate:"required"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr              string        `koanf:"addr" validate:"required"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout" validate:"min=0"`
	WriteTimeout      time.Duration `koanf:"write_timeout" validate:"min=0"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"min=0"`
}

// Dataset locates the case-count file and names its columns.
type Dataset struct {
	Path            string `koanf:"path" validate:"required"`
	Sheet           string `koanf:"sheet"`
	RegionColumn    string `koanf:"region_column" validate:"required"`
	ActiveColumn    string `koanf:"active_column" validate:"required"`
	DeceasedColumn  string `koanf:"deceased_column" validate:"required"`
	RecoveredColumn string `koanf:"recovered_column" validate:"required"`
}

// Render selects chart output defaults.
type Render struct {
	DefaultFormat string `koanf:"default_format" validate:"oneof=json png svg base64"`
	ImageEngine   string `koanf:"image_engine" validate:"oneof=mixed gochart gonum"`
	Width         int    `koanf:"width" validate:"min=0,max=8192"`
	Height        int    `koanf:"height" validate:"min=0,max=8192"`
}

// Security holds the CORS and rate limit settings.
type Security struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"min=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"min=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Logging configures the slog handler.
type Logging struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// Metrics toggles the Prometheus endpoint.
type Metrics struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path" validate:"required_if=Enabled true"`
}

// Limits bounds request sizes.
type Limits struct {
	MaxSelection  int   `koanf:"max_selection" validate:"min=1"`
	MaxNameLength int   `koanf:"max_name_length" validate:"min=1"`
	MaxBodyBytes  int64 `koanf:"max_body_bytes" validate:"min=1"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Dataset: Dataset{
			Path:            "data/districts.csv",
			RegionColumn:    "District",
			ActiveColumn:    "Active",
			DeceasedColumn:  "Deceased",
			RecoveredColumn: "Recovered",
		},
		Render: Render{
			DefaultFormat: "json",
			ImageEngine:   "mixed",
			Width:         1024,
			Height:        512,
		},
		Security: Security{
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
		},
		Logging: Logging{Level: "info", Format: "json"},
		Metrics: Metrics{Enabled: true, Path: "/metrics"},
		Limits: Limits{
			MaxSelection:  500,
			MaxNameLength: 200,
			MaxBodyBytes:  1 << 20,
		},
	}
}

// Load reads the file named by CASEBOARD_CONFIG, else config.yaml when it exists.
func Load() (*Config, error) {
	path := os.Getenv(PathEnvVar)
	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}
	return LoadFrom(path)
}

// LoadFrom layers defaults, the YAML file at path (skipped when empty) and
// the environment, then validates the result.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := splitLists(k, "security.cors_origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the struct tags and cross-field rules.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	if !c.Security.RateLimitDisabled && (c.Security.RateLimitRequests == 0 || c.Security.RateLimitWindow == 0) {
		return errors.New("security.rate_limit_requests and security.rate_limit_window must be positive unless rate limiting is disabled")
	}
	return nil
}

// envKey maps CASEBOARD_SECTION_SOME_KEY to section.some_key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok {
		return key
	}
	return section + "." + rest
}

// splitLists turns comma-separated env values into string slices.
func splitLists(k *koanf.Koanf, paths ...string) error {
	for _, path := range paths {
		raw, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if err := k.Set(path, out); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
	}
	return nil
}
