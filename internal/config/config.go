package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/feierabend/internal/clock"
	"github.com/feierabend/internal/work"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ColorMode controls colored terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds the user's work rules and output preferences. Every duration
// is written as HH:MM.
type Config struct {
	WeeklyTarget    string `yaml:"WeeklyTarget" toml:"weekly_target"`
	DailyTarget     string `yaml:"DailyTarget,omitempty" toml:"daily_target,omitempty"`
	WorkDaysPerWeek int    `yaml:"WorkDaysPerWeek" toml:"work_days_per_week"`

	// Break rules
	BreakSmall string `yaml:"BreakSmall" toml:"break_small"`
	BreakLarge string `yaml:"BreakLarge" toml:"break_large"`
	SoftLimit  string `yaml:"SoftLimit" toml:"soft_limit"`
	HardLimit  string `yaml:"HardLimit" toml:"hard_limit"`

	// Output
	Color  ColorMode `yaml:"Color" toml:"color"`
	Output string    `yaml:"Output" toml:"output"`
}

// Path returns the config file in use: $FEIERABEND_CONFIG or ~/.feierabend.yaml.
func Path() string {
	if p := os.Getenv("FEIERABEND_CONFIG"); p != "" {
		return expandHome(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".feierabend.yaml"
	}
	return filepath.Join(home, ".feierabend.yaml")
}

func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads path over the defaults and applies environment overrides.
// A missing file is not an error. Files ending in .toml are read as TOML,
// everything else as YAML.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := unmarshal(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	// Apply defaults for values the file cleared
	def := Default()
	if cfg.WorkDaysPerWeek == 0 {
		cfg.WorkDaysPerWeek = def.WorkDaysPerWeek
	}
	if cfg.Color == "" {
		cfg.Color = def.Color
	}
	if cfg.Output == "" {
		cfg.Output = def.Output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in the format its extension implies.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func Default() *Config {
	return &Config{
		WeeklyTarget:    work.DefaultWeeklyTarget,
		WorkDaysPerWeek: work.WorkDaysPerWeek,
		BreakSmall:      clock.FromDuration(work.DefaultBreakSmall).String(),
		BreakLarge:      clock.FromDuration(work.DefaultBreakLarge).String(),
		SoftLimit:       clock.FromDuration(work.DefaultSoftLimit).String(),
		HardLimit:       clock.FromDuration(work.DefaultHardLimit).String(),
		Color:           ColorAuto,
		Output:          "text",
	}
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty file keeps the defaults.
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnvOverrides lets the environment win over the file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FEIERABEND_WEEKLY"); v != "" {
		cfg.WeeklyTarget = v
	}
	if v := os.Getenv("FEIERABEND_DAILY"); v != "" {
		cfg.DailyTarget = v
	}
	if v := os.Getenv("FEIERABEND_COLOR"); v != "" {
		cfg.Color = ColorMode(strings.ToLower(v))
	}
	if v := os.Getenv("FEIERABEND_OUTPUT"); v != "" {
		cfg.Output = strings.ToLower(v)
	}
}

// DefaultTarget returns the daily and weekly strings to fall back on when
// no target flag was given. Only one of them is non-empty.
func (c *Config) DefaultTarget() (daily, weekly string) {
	if strings.TrimSpace(c.DailyTarget) != "" {
		return c.DailyTarget, ""
	}
	return "", c.WeeklyTarget
}

// Rules converts the break and limit settings into work.Rules.
func (c *Config) Rules() (work.Rules, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"BreakSmall", c.BreakSmall},
		{"BreakLarge", c.BreakLarge},
		{"SoftLimit", c.SoftLimit},
		{"HardLimit", c.HardLimit},
	}
	parsed := make([]clock.Clock, len(fields))
	for i, f := range fields {
		v, err := clock.Parse(f.value)
		if err != nil {
			return work.Rules{}, &ValidationError{Field: f.name, Message: err.Error()}
		}
		parsed[i] = v
	}
	return work.Rules{
		BreakSmall:      parsed[0].Duration(),
		BreakLarge:      parsed[1].Duration(),
		SoftLimit:       parsed[2].Duration(),
		HardLimit:       parsed[3].Duration(),
		WorkDaysPerWeek: c.WorkDaysPerWeek,
	}, nil
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s - %s", e.Field, e.Message)
}

// Validate checks the configuration for common issues
func (c *Config) Validate() error {
	rules, err := c.Rules()
	if err != nil {
		return err
	}
	if rules.BreakSmall > rules.BreakLarge {
		return &ValidationError{Field: "BreakSmall", Message: "small break must not be longer than the large break"}
	}
	if rules.SoftLimit <= 0 || rules.HardLimit < rules.SoftLimit {
		return &ValidationError{Field: "HardLimit", Message: "limits must be positive and the hard limit at least the soft limit"}
	}

	if c.WorkDaysPerWeek < 1 || c.WorkDaysPerWeek > 7 {
		return &ValidationError{Field: "WorkDaysPerWeek", Message: "must be between 1 and 7"}
	}

	if _, err := clock.Parse(c.WeeklyTarget); err != nil {
		return &ValidationError{Field: "WeeklyTarget", Message: err.Error()}
	}
	if c.DailyTarget != "" {
		if _, err := clock.Parse(c.DailyTarget); err != nil {
			return &ValidationError{Field: "DailyTarget", Message: err.Error()}
		}
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &ValidationError{Field: "Color", Message: "must be auto, always or never"}
	}

	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, p[2:])
	}
	return p
}
