package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Screen background behind every button
	Background string `yaml:"background"`

	// Primary accent color (status bar bid, help title)
	Accent string `yaml:"accent"`

	// Button fills
	ButtonBg   string `yaml:"button_bg"`
	SelectedBg string `yaml:"selected_bg"` // fill of the selected numeral and pip

	// Button strokes
	Border        string `yaml:"border"`
	PressedBorder string `yaml:"pressed_border"`

	// Text colors
	Text         string `yaml:"text"`
	SelectedText string `yaml:"selected_text"`
	Subtle       string `yaml:"subtle"` // Muted hints and key help
}

// Presets lists every built-in scheme name.
func Presets() []string {
	return []string{"default", "monochrome", "wave", "dragon", "lotus"}
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fill(preset)
}

// MergeFrom overrides fields with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		// A new preset replaces the base, then explicit values win.
		*c = *GetPreset(other.Preset)
	}
	overlay := other
	overlay.fill(c)
	*c = overlay
}

// fill copies every empty field from base.
func (c *ColorScheme) fill(base *ColorScheme) {
	if c.Preset == "" {
		c.Preset = base.Preset
	}
	if c.Background == "" {
		c.Background = base.Background
	}
	if c.Accent == "" {
		c.Accent = base.Accent
	}
	if c.ButtonBg == "" {
		c.ButtonBg = base.ButtonBg
	}
	if c.SelectedBg == "" {
		c.SelectedBg = base.SelectedBg
	}
	if c.Border == "" {
		c.Border = base.Border
	}
	if c.PressedBorder == "" {
		c.PressedBorder = base.PressedBorder
	}
	if c.Text == "" {
		c.Text = base.Text
	}
	if c.SelectedText == "" {
		c.SelectedText = base.SelectedText
	}
	if c.Subtle == "" {
		c.Subtle = base.Subtle
	}
}
