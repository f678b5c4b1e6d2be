package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LIARSBID_"

// envOverrides are the settings that can come from the environment.
type envOverrides struct {
	ThemeFile     string `env:"THEME_FILE"`
	Orientation   string `env:"ORIENTATION"`
	NumeralPolicy string `env:"NUMERAL_POLICY"`
	Haptics       string `env:"HAPTICS"`
	Glyphs        string `env:"GLYPHS"`
	LogLevel      string `env:"LOG_LEVEL"`
}

// parseEnv loads the LIARSBID_* variables.
func parseEnv() (envOverrides, error) {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return o, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// applyEnv merges environment overrides into config.
func (c *Config) applyEnv() error {
	o, err := parseEnv()
	if err != nil {
		return err
	}

	loadThemeFile(c, o.ThemeFile)

	if o.Orientation != "" {
		c.Layout.Orientation = o.Orientation
	}
	if o.NumeralPolicy != "" {
		c.Numerals.Policy = o.NumeralPolicy
	}
	if o.Haptics != "" {
		c.Feedback.Haptics = o.Haptics
	}
	if o.Glyphs != "" {
		c.Glyphs = o.Glyphs
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	return nil
}

// loadThemeFile loads and merges theme from the LIARSBID_THEME_FILE path
func loadThemeFile(config *Config, themeFile string) {
	if themeFile == "" {
		return
	}

	if _, err := os.Stat(themeFile); err != nil {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}
