package config

import "github.com/thenoetrevino/liarsbid/internal/config/colors"

// ColorScheme is the theme section of the config file.
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (green felt)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}
