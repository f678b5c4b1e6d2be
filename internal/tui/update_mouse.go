package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/liarsbid/internal/bid"
	"github.com/thenoetrevino/liarsbid/internal/layout"
	"github.com/thenoetrevino/liarsbid/internal/tui/state"
)

// handleMouseClick hit tests a left click against the rendered layers,
// then against the grid layout. Clicks that land on no button are ignored.
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft || m.UiState.Width() == 0 {
		return m, nil
	}

	if m.UiState.Mode() == state.HelpMode {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	id := m.compose().Hit(mouse.X, mouse.Y).ID()
	if id == "" {
		// Snapping to whole cells can shift a button off a column the
		// layout still assigns to it.
		if item, ok := m.layout().Hit(m.Config.Scale().PointAt(mouse.X, mouse.Y)); ok {
			id = item.ID()
		}
	}
	switch {
	case id == "":
		return m, nil
	case strings.HasPrefix(id, numeralIDPrefix):
		if n, ok := parseNumeralID(id); ok {
			return m.handleTapNumeral(n)
		}
		return m, nil
	case id == layout.ResetCell().ID():
		return m.handleTapReset()
	}

	for _, p := range bid.Pips() {
		if id == layout.PipCell(p).ID() {
			return m.handleTapPip(p)
		}
	}
	return m, nil
}

// handleMouseWheel scrolls the strip one numeral per notch.
func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.UiState.Mode() != state.NormalMode || m.UiState.Width() == 0 {
		return m, nil
	}

	var direction float64
	switch msg.Mouse().Button {
	case tea.MouseWheelUp, tea.MouseWheelLeft:
		direction = -1
	case tea.MouseWheelDown, tea.MouseWheelRight:
		direction = 1
	default:
		return m, nil
	}

	pitch := m.stripMetrics().Pitch()
	return m, m.scrollToOffset(m.StripState.Target() + direction*pitch)
}
