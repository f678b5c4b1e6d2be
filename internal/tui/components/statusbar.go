package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

type StatusBarProps struct {
	Width int
	Bid   string // rendered bid, empty when nothing is picked
	Label string // accessibility label of the last activated button
	Help  string // short key help
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: the bid and the last activated button, e.g. "7 × ⚃  Pip 4"
// Right side: short key help
func RenderStatusBar(props StatusBarProps) string {
	if props.Width <= 0 {
		return ""
	}

	bid := props.Bid
	if bid == "" {
		bid = statusBarEmptyBid
	}
	left := StatusBidStyle.Render(" " + bid)
	if props.Label != "" {
		left += StatusBarStyle.Render("  " + props.Label)
	}

	right := props.Help

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		// help goes first when the terminal is too narrow for both
		right = ""
		gapWidth = max(props.Width-leftWidth, 0)
	}

	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	bar := lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
	return ansi.Truncate(bar, props.Width, "")
}
