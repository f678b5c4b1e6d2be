package theme

import "github.com/thenoetrevino/liarsbid/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Background    string
	Accent        string
	ButtonBg      string
	SelectedBg    string
	Border        string
	PressedBorder string
	Text          string
	SelectedText  string
	Subtle        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Background = colors.Background
	Accent = colors.Accent
	ButtonBg = colors.ButtonBg
	SelectedBg = colors.SelectedBg
	Border = colors.Border
	PressedBorder = colors.PressedBorder
	Text = colors.Text
	SelectedText = colors.SelectedText
	Subtle = colors.Subtle
}
