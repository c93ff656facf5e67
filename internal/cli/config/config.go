// Package config loads iqrcap settings from defaults, an optional YAML file,
// IQRCAP_ environment variables and command-line flags.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-outlier/stats/outlier"
)

// Defaults.
const (
	DefaultOutput = OutputText
	DefaultFill   = FillNone
	DefaultText   = FillTextNone
	EnvPrefix     = "IQRCAP_"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputCSV  = "csv"
)

// Missing-value strategies applied before capping.
const (
	FillNone = "none"
	FillMean = "mean"
	FillZero = "zero"
)

// Missing-value strategies for text columns.
const (
	FillTextNone = "none"
	FillTextMode = "mode"
)

var configFileNames = []string{"iqrcap.yaml", "iqrcap.yml"}

// Config holds all CLI options.
type Config struct {
	Multiplier float64  `koanf:"multiplier"`
	Output     string   `koanf:"output"`
	Fill       string   `koanf:"fill"`
	FillText   string   `koanf:"fill_text"`
	Dedupe     bool     `koanf:"dedupe"`
	Columns    []string `koanf:"columns"`
	Verbose    bool     `koanf:"verbose"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// Options returns the capper options derived from c.
func (c *Config) Options() []outlier.Option {
	return []outlier.Option{outlier.WithMultiplier(c.Multiplier)}
}

// Validate checks enumerated values and the multiplier.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputCSV:
	default:
		return fmt.Errorf("unknown output format %q (want text, json or csv)", c.Output)
	}
	switch c.Fill {
	case FillNone, FillMean, FillZero:
	default:
		return fmt.Errorf("unknown fill strategy %q (want none, mean or zero)", c.Fill)
	}
	switch c.FillText {
	case FillTextNone, FillTextMode:
	default:
		return fmt.Errorf("unknown text fill strategy %q (want none or mode)", c.FillText)
	}
	if math.IsNaN(c.Multiplier) || math.IsInf(c.Multiplier, 0) || c.Multiplier < 0 {
		return fmt.Errorf("multiplier must be a finite value >= 0: %v", c.Multiplier)
	}
	return nil
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"multiplier": outlier.DefaultMultiplier,
		"output":     DefaultOutput,
		"fill":       DefaultFill,
		"fill_text":  DefaultText,
		"dedupe":     false,
		"columns":    []string{},
		"verbose":    false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// IQRCAP_MULTIPLIER -> multiplier
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.Fill = strings.ToLower(strings.TrimSpace(cfg.Fill))
	cfg.FillText = strings.ToLower(strings.TrimSpace(cfg.FillText))
	cfg.Columns = splitColumns(cfg.Columns)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// splitColumns flattens comma-separated entries, as produced by
// IQRCAP_COLUMNS=a,b, and drops blanks.
func splitColumns(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

type configKey struct{}

type loggerKey struct{}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored in ctx.
func FromContext(ctx context.Context) (*Config, error) {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c, nil
	}
	return nil, errors.New("configuration not loaded")
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger retrieves the logger from ctx, or a discarding logger.
func Logger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
