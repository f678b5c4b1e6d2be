package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/liarsbid/internal/tui/theme"
)

// ButtonProps describes one button, sized in terminal cells.
type ButtonProps struct {
	Content  string
	Width    int
	Height   int
	Selected bool
	Pressed  bool
}

// RenderButton draws a filled box with a rounded border. The fill depends
// only on Selected; a pressed button swaps to a thick border and faint text.
// Boxes too small for a border are drawn as a plain fill.
func RenderButton(props ButtonProps) string {
	if props.Width <= 0 || props.Height <= 0 {
		return ""
	}

	style := ButtonStyle
	if props.Selected {
		style = SelectedButtonStyle
	}
	if props.Pressed {
		style = style.
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(theme.PressedBorder)).
			Faint(true)
	}
	if props.Width < minBorderedSide || props.Height < minBorderedSide {
		style = style.UnsetBorderStyle().
			BorderTop(false).
			BorderRight(false).
			BorderBottom(false).
			BorderLeft(false)
	}

	return style.
		Width(props.Width).
		Height(props.Height).
		MaxWidth(props.Width).
		MaxHeight(props.Height).
		Render(props.Content)
}

// innerSize returns the content area of a button of the given outer size.
func innerSize(width, height int) (int, int) {
	if width < minBorderedSide || height < minBorderedSide {
		return width, height
	}
	return width - 2, height - 2
}
