package config

import (
	"fmt"
	"os"
	"strings"

	"motherboard/internal/dotenv"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultPath is read when present and MOBO_CONFIG is unset.
	DefaultPath = "config/viewer.yaml"
	// DotEnvPath holds optional MOBO_* variables; the real environment wins.
	DotEnvPath = ".env"
	envPrefix  = "MOBO_"
	envPathKey = envPrefix + "CONFIG"
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New)
//  2. YAML file at $MOBO_CONFIG, else DefaultPath if it exists
//  3. env (prefix MOBO_), e.g. MOBO_WIDTH=1600, including MOBO_* lines from DotEnvPath
func Load() (*Config, error) {
	if _, err := dotenv.Load(DotEnvPath, envPrefix); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, DotEnvPath, err)
	}
	path := os.Getenv(envPathKey)
	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit file path. An empty path skips the file layer.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// MOBO_ORBIT_RADIUS -> orbit_radius. MOBO_CONFIG names the file and is not a key.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		if s == envPathKey {
			return ""
		}
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.TargetFPS < 0 {
		return fmt.Errorf("%w: target_fps must not be negative", ErrInvalidConfig)
	}
	if c.OrbitRadius <= 0 {
		return fmt.Errorf("%w: orbit_radius must be positive", ErrInvalidConfig)
	}
	if c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		return fmt.Errorf("%w: fov must be in (0, 180)", ErrInvalidConfig)
	}
	return nil
}
