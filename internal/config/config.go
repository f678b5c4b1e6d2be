package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/liarsbid/internal/bid"
	"github.com/thenoetrevino/liarsbid/internal/feedback"
	"github.com/thenoetrevino/liarsbid/internal/icons"
	"github.com/thenoetrevino/liarsbid/internal/layout"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme"`
	Layout      LayoutConfig   `yaml:"layout"`
	Numerals    NumeralsConfig `yaml:"numerals"`
	Feedback    FeedbackConfig `yaml:"feedback"`
	Glyphs      string         `yaml:"glyphs"`
	LogLevel    string         `yaml:"log_level"`
}

// LayoutConfig holds the spacing constants and the orientation preference.
type LayoutConfig struct {
	Gutter         float64 `yaml:"gutter"`
	MinTouchTarget float64 `yaml:"min_touch_target"`
	UnitsPerColumn float64 `yaml:"units_per_column"`
	UnitsPerRow    float64 `yaml:"units_per_row"`
	Orientation    string  `yaml:"orientation"`
}

// NumeralsConfig selects the ceiling policy of the numeral strip.
type NumeralsConfig struct {
	Policy          string `yaml:"policy"`
	InitialCeiling  int    `yaml:"initial_ceiling"`
	ExtendThreshold *int   `yaml:"extend_threshold"`
	ExtendBy        int    `yaml:"extend_by"`
	FixedCeiling    int    `yaml:"fixed_ceiling"`
}

// FeedbackConfig selects how impacts are played.
type FeedbackConfig struct {
	Haptics string `yaml:"haptics"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}

	configPath, err := Path()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		default:
			config = &Config{}
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", configPath, err)
			}
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "liarsbid", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "liarsbid", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if c.Layout.Gutter <= 0 {
		c.Layout.Gutter = layout.DefaultGutter
	}
	if c.Layout.MinTouchTarget <= 0 {
		c.Layout.MinTouchTarget = layout.MinTouchTarget
	}
	if c.Layout.UnitsPerColumn <= 0 {
		c.Layout.UnitsPerColumn = layout.DefaultUnitsPerColumn
	}
	if c.Layout.UnitsPerRow <= 0 {
		c.Layout.UnitsPerRow = layout.DefaultUnitsPerRow
	}
	if c.Layout.Orientation == "" {
		c.Layout.Orientation = string(layout.ModeAuto)
	}

	def := bid.DefaultRangeOptions()
	if c.Numerals.Policy == "" {
		c.Numerals.Policy = string(def.Policy)
	}
	if c.Numerals.InitialCeiling <= 0 {
		c.Numerals.InitialCeiling = def.InitialCeiling
	}
	// An explicit zero extends only once the ceiling itself is rendered.
	if c.Numerals.ExtendThreshold == nil || *c.Numerals.ExtendThreshold < 0 {
		threshold := def.ExtendThreshold
		c.Numerals.ExtendThreshold = &threshold
	}
	if c.Numerals.ExtendBy <= 0 {
		c.Numerals.ExtendBy = def.ExtendBy
	}
	if c.Numerals.FixedCeiling <= 0 {
		c.Numerals.FixedCeiling = def.FixedCeiling
	}

	if c.Feedback.Haptics == "" {
		c.Feedback.Haptics = string(feedback.KindLog)
	}
	if c.Glyphs == "" {
		c.Glyphs = string(icons.SetUnicode)
	}
	if c.LogLevel == "" {
		c.LogLevel = "debug"
	}
}

// Validate reports the first setting that names an unknown option or would
// let one render extend the numeral range twice.
func (c *Config) Validate() error {
	if _, err := layout.ParseMode(c.Layout.Orientation); err != nil {
		return err
	}
	if _, err := bid.ParsePolicy(c.Numerals.Policy); err != nil {
		return err
	}
	if t := c.Numerals.ExtendThreshold; t != nil && c.Numerals.ExtendBy > 0 && *t >= c.Numerals.ExtendBy {
		return fmt.Errorf("numerals: extend_threshold %d must be below extend_by %d", *t, c.Numerals.ExtendBy)
	}
	if _, err := feedback.New(feedback.Kind(c.Feedback.Haptics), nil); err != nil {
		return err
	}
	if _, err := icons.New(icons.Set(c.Glyphs)); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// RangeOptions converts the numerals section for bid.NewNumeralRange.
func (c *Config) RangeOptions() bid.RangeOptions {
	policy, err := bid.ParsePolicy(c.Numerals.Policy)
	if err != nil {
		policy = bid.PolicyLazy
	}
	threshold := bid.DefaultExtendThreshold
	if c.Numerals.ExtendThreshold != nil {
		threshold = *c.Numerals.ExtendThreshold
	}
	return bid.RangeOptions{
		Policy:          policy,
		InitialCeiling:  c.Numerals.InitialCeiling,
		ExtendThreshold: threshold,
		ExtendBy:        c.Numerals.ExtendBy,
		FixedCeiling:    c.Numerals.FixedCeiling,
	}
}

// LayoutParams converts the layout section for layout.Compute.
func (c *Config) LayoutParams() layout.Params {
	return layout.Params{Gutter: c.Layout.Gutter, MinTouchTarget: c.Layout.MinTouchTarget}
}

// Scale converts the layout section into a cell scale.
func (c *Config) Scale() layout.Scale {
	return layout.Scale{UnitsPerColumn: c.Layout.UnitsPerColumn, UnitsPerRow: c.Layout.UnitsPerRow}
}

// OrientationMode returns the configured orientation preference.
func (c *Config) OrientationMode() layout.Mode {
	mode, err := layout.ParseMode(c.Layout.Orientation)
	if err != nil {
		return layout.ModeAuto
	}
	return mode
}

// ParseLogLevel maps a config string onto a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug", "":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelDebug, fmt.Errorf("unknown log level %q", s)
	}
}
