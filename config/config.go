// Package config loads graphtutor settings from defaults, an optional TOML
// file, GRAPHTUTOR_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/graphtutor/connectivity"
	"github.com/katalvlaran/graphtutor/hamiltonian"
	"github.com/katalvlaran/graphtutor/logging"
)

const (
	// DefaultFile is read from the working directory when present.
	DefaultFile = "graphtutor.toml"

	// EnvPrefix marks environment overrides, e.g. GRAPHTUTOR_LOG_LEVEL=debug.
	EnvPrefix = "GRAPHTUTOR_"

	// FlagConfig names the flag that points at an explicit config file.
	FlagConfig = "config"
)

// Report formats accepted by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ErrInvalid is wrapped by Validate for every rejected setting.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds all runtime settings.
type Config struct {
	MaxHamiltonian int    `koanf:"max-hamiltonian"`
	Articulation   string `koanf:"articulation"`
	Format         string `koanf:"format"`
	LogLevel       string `koanf:"log-level"`
	LogFormat      string `koanf:"log-format"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"max-hamiltonian": hamiltonian.DefaultMaxVertices,
		"articulation":    connectivity.BruteForce.String(),
		"format":          FormatText,
		"log-level":       "info",
		"log-format":      logging.FormatCompact,
	}
}

// Load merges configuration sources.
// Priority: Flags > Env > Config File > Defaults.
//
// The file named by the --config flag must exist; the implicit
// graphtutor.toml is skipped when missing.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(makeMapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	explicit := ""
	if f != nil {
		if fl := f.Lookup(FlagConfig); fl != nil && fl.Changed {
			explicit = fl.Value.String()
		}
	}
	if explicit != "" {
		if err := k.Load(file.Provider(explicit), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %q: %w", explicit, err)
		}
	} else {
		_ = k.Load(file.Provider(DefaultFile), toml.Parser())
	}

	// GRAPHTUTOR_MAX_HAMILTONIAN -> max-hamiltonian
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the engine or the CLI cannot honour.
func (c *Config) Validate() error {
	if c.MaxHamiltonian < 1 {
		return fmt.Errorf("max-hamiltonian=%d must be >= 1: %w", c.MaxHamiltonian, ErrInvalid)
	}
	if _, err := connectivity.ParseMethod(c.Articulation); err != nil {
		return fmt.Errorf("articulation=%q: %w: %w", c.Articulation, ErrInvalid, err)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatDOT:
	default:
		return fmt.Errorf("format=%q: %w", c.Format, ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level=%q: %w: %w", c.LogLevel, ErrInvalid, err)
	}
	switch c.LogFormat {
	case logging.FormatCompact, logging.FormatJSON:
	default:
		return fmt.Errorf("log-format=%q: %w", c.LogFormat, ErrInvalid)
	}

	return nil
}

// Method returns the parsed articulation method.
func (c *Config) Method() connectivity.Method {
	m, _ := connectivity.ParseMethod(c.Articulation)
	return m
}

type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
