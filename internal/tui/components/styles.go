// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/liarsbid/internal/config/colors"
	"github.com/thenoetrevino/liarsbid/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ButtonStyle is the resting state of every button
	ButtonStyle lipgloss.Style

	// SelectedButtonStyle fills the selected numeral and pip
	SelectedButtonStyle lipgloss.Style

	// ScreenStyle paints the background behind the buttons
	ScreenStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// StatusBidStyle highlights the bid in the status bar
	StatusBidStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	ButtonStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Border)).
		BorderBackground(lipgloss.Color(colors.Background)).
		Background(lipgloss.Color(colors.ButtonBg)).
		Foreground(lipgloss.Color(colors.Text)).
		Bold(true).
		Align(lipgloss.Center, lipgloss.Center)

	SelectedButtonStyle = ButtonStyle.
		Background(lipgloss.Color(colors.SelectedBg)).
		Foreground(lipgloss.Color(colors.SelectedText))

	ScreenStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.Background))

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.Background)).
		Foreground(lipgloss.Color(colors.Subtle))

	StatusBidStyle = StatusBarStyle.
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Background(lipgloss.Color(colors.Background)).
		BorderBackground(lipgloss.Color(colors.Background)).
		Padding(1, 2)
}
