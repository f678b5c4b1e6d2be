package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/liarsbid/internal/config/colors"
)

// Overrides are command line settings. They win over the file and the
// environment; empty fields leave the config alone.
type Overrides struct {
	Orientation string
	Numerals    string
	Haptics     string
	Glyphs      string
	Theme       string
}

// ApplyOverrides merges o into the config and validates the result.
func (c *Config) ApplyOverrides(o Overrides) error {
	if o.Theme != "" {
		if !slices.Contains(colors.Presets(), o.Theme) {
			return fmt.Errorf("unknown theme %q (want one of %s)", o.Theme, strings.Join(colors.Presets(), ", "))
		}
		c.ColorScheme = *colors.GetPreset(o.Theme)
	}
	if o.Orientation != "" {
		c.Layout.Orientation = o.Orientation
	}
	if o.Numerals != "" {
		c.Numerals.Policy = o.Numerals
	}
	if o.Haptics != "" {
		c.Feedback.Haptics = o.Haptics
	}
	if o.Glyphs != "" {
		c.Glyphs = o.Glyphs
	}
	return c.Validate()
}
