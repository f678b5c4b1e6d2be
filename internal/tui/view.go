package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/liarsbid/internal/tui/theme"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true                                   // Use alternate screen buffer
	view.BackgroundColor = lipgloss.Color(theme.Background) // Set root background color
	if m.MouseEnabled {
		view.MouseMode = tea.MouseModeCellMotion
	}

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = m.render()
	return view
}

// render draws the composed layers onto a canvas the size of the terminal.
func (m Model) render() string {
	canvas := lipgloss.NewCanvas(m.UiState.Width(), m.UiState.Height())
	return canvas.Compose(m.compose()).Render()
}
