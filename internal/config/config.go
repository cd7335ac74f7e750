// Package config loads CLI and server settings from defaults, an optional
// YAML file and LABYRINTH_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/labyrinth/pathfind"
	"github.com/katalvlaran/labyrinth/weight"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LABYRINTH_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// MaxSide bounds width and height.
const MaxSide = 1000

// Config holds every tunable. Field tags name the YAML keys; the matching
// environment variable is EnvPrefix plus the upper-cased key.
type Config struct {
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	Policy      string `mapstructure:"policy"`
	Mode        string `mapstructure:"mode"`
	Seed        int64  `mapstructure:"seed"`
	LogLevel    string `mapstructure:"log_level"`
	Color       string `mapstructure:"color"`
	MetricsFile string `mapstructure:"metrics_file"`
	Listen      string `mapstructure:"listen"`
}

// Default returns the built-in settings: a 20×20 uniform maze solved
// breadth-first, time-seeded (Seed 0), info logging, automatic color.
func Default() Config {
	return Config{
		Width:    20,
		Height:   20,
		Policy:   weight.Uniform.String(),
		Mode:     "bfs",
		LogLevel: "info",
		Color:    "auto",
		Listen:   "127.0.0.1:8080",
	}
}

// keys lists the settable keys, shared by the file and environment layers.
var keys = []string{"width", "height", "policy", "mode", "seed", "log_level", "color", "metrics_file", "listen"}

// Load layers path (skipped when empty or missing) and the environment over
// Default, then validates. lookup is os.LookupEnv in production.
func Load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err = yaml.Unmarshal(data, &raw); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, k := range keys {
		if v, ok := lookup(EnvPrefix + strings.ToUpper(k)); ok {
			raw[k] = v
		}
	}

	if err := decode(raw, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err = dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Width < 1 || c.Width > MaxSide || c.Height < 1 || c.Height > MaxSide {
		return fmt.Errorf("%w: size %d×%d outside 1..%d", ErrInvalid, c.Width, c.Height, MaxSide)
	}
	if _, err := weight.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := pathfind.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color %q, want auto|always|never", ErrInvalid, c.Color)
	}

	return nil
}

// WeightPolicy returns the parsed policy. Call after Validate.
func (c Config) WeightPolicy() weight.Policy {
	p, _ := weight.ParsePolicy(c.Policy)

	return p
}

// SearchMode returns the parsed traversal mode. Call after Validate.
func (c Config) SearchMode() pathfind.Mode {
	m, _ := pathfind.ParseMode(c.Mode)

	return m
}
