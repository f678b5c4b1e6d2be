// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Typically called with ui.Width() and ui.Height() as dimensions.
//
// Parameters:
//   - content: the rendered content to center
//   - screenWidth: the width of the screen
//   - screenHeight: the height of the screen
//
// Returns:
//   - A layer positioned at the center of the screen, or nil if content is empty
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	x = max(x, 0)
	y = max(y, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CreatePlacedLayer creates a layer with an ID at a fixed cell position.
// Layers with an ID take part in hit testing.
func CreatePlacedLayer(id, content string, x, y, z int) *lipgloss.Layer {
	return lipgloss.NewLayer(content).ID(id).X(x).Y(y).Z(z)
}

// CalculateOverlayWidth determines the outer width of a centered overlay.
// It takes half the screen, bounded to a readable range, and never more
// than the screen itself.
func CalculateOverlayWidth(screenWidth int) int {
	width := min(max(screenWidth/OverlayDefaultWidthDivisor, OverlayMinWidth), OverlayMaxWidth)
	return max(min(width, screenWidth), 0)
}
