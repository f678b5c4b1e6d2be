package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/liarsbid/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	if m.Ctx != nil {
		select {
		case <-m.Ctx.Done():
			return m, tea.Quit
		default:
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)

	case tea.KeyPressMsg:
		if m.UiState.Mode() == state.HelpMode {
			return m.handleHelpMode(msg)
		}
		return m.handleNormalMode(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)

	case stripFrameMsg:
		return m.handleStripFrame()

	case releaseMsg:
		m.UiState.Release(msg.seq)
		return m, nil
	}

	return m, nil
}

// handleWindowResize relays out the picker. The numeral at the leading
// edge stays there across the resize.
func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	leading := 1
	if m.UiState.Width() > 0 {
		leading = m.leadingNumeral()
	}

	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	m.Help.SetWidth(msg.Width / 2)

	l := m.layout()
	if m.UiState.ObserveOrientation(l.Orientation) {
		m.Logger.Info("orientation changed", "orientation", l.Orientation.String(),
			"width", msg.Width, "height", msg.Height)
	}
	if l.Clamped {
		m.Logger.Debug("layout clamped to minimum touch target",
			"width", msg.Width, "height", msg.Height)
	}

	metrics := l.StripMetrics()
	m.StripState.Jump(metrics.OffsetFor(leading, m.BidState.Numerals().Len()))
	m.reachVisible()

	return m, nil
}

// handleStripFrame steps the scroll spring and extends the numeral range
// when the visible numerals come near the ceiling.
func (m Model) handleStripFrame() (tea.Model, tea.Cmd) {
	more := m.StripState.Step()
	m.reachVisible()
	if more {
		return m, stripFrame()
	}
	return m, nil
}

// reachVisible reports the last visible numeral to the numeral range.
func (m Model) reachVisible() {
	metrics := m.stripMetrics()
	numerals := m.BidState.Numerals()

	_, last, ok := metrics.Visible(m.StripState.Offset(), numerals.Len())
	if !ok {
		return
	}
	if numerals.Reach(last) {
		m.Logger.Debug("numeral range extended", "ceiling", numerals.Ceiling(), "visible", last)
	}
}

// scrollToOffset animates the strip towards offset, clamped to the
// scrollable extent.
func (m Model) scrollToOffset(offset float64) tea.Cmd {
	metrics := m.stripMetrics()
	target := metrics.Clamp(offset, m.BidState.Numerals().Len())
	if m.StripState.ScrollTo(target) {
		return stripFrame()
	}
	m.reachVisible()
	return nil
}

// scrollToNumeral animates the strip so numeral n sits at the leading edge.
func (m Model) scrollToNumeral(n int) tea.Cmd {
	metrics := m.stripMetrics()
	return m.scrollToOffset(metrics.OffsetFor(n, m.BidState.Numerals().Len()))
}
