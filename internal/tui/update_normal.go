package tui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/liarsbid/internal/bid"
	"github.com/thenoetrevino/liarsbid/internal/feedback"
	"github.com/thenoetrevino/liarsbid/internal/layout"
	"github.com/thenoetrevino/liarsbid/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Keys

	switch {
	case key.Matches(msg, km.Quit):
		return m.handleQuit()
	case key.Matches(msg, km.Help):
		return m.handleShowHelp()
	case key.Matches(msg, km.Reset):
		return m.handleTapReset()
	case key.Matches(msg, km.PrevQuantity):
		return m.handleStepQuantity(-1)
	case key.Matches(msg, km.NextQuantity):
		return m.handleStepQuantity(1)
	case key.Matches(msg, km.ScrollLeft):
		return m.handlePageScroll(-1)
	case key.Matches(msg, km.ScrollRight):
		return m.handlePageScroll(1)
	}

	if p, ok := km.pipFor(msg); ok {
		return m.handleTapPip(p)
	}

	return m, nil
}

func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	selection := m.BidState.Selection()
	m.Logger.Info("quit", "bid", selection.String(), "complete", selection.Complete())
	return m, tea.Quit
}

func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.HelpMode)
	return m, nil
}

// handleTapNumeral selects numeral n and scrolls it to the leading edge.
func (m Model) handleTapNumeral(n int) (tea.Model, tea.Cmd) {
	if !m.BidState.SelectQuantity(n) {
		return m, nil
	}
	m.Logger.Debug("quantity selected", "quantity", n)

	seq := m.UiState.Press(numeralID(n), numeralLabel(n))
	return m, tea.Batch(
		release(seq),
		m.scrollToNumeral(n),
		m.Haptics.Impact(feedback.Light),
	)
}

// handleTapPip selects face p, replacing any previous face.
func (m Model) handleTapPip(p bid.Pip) (tea.Model, tea.Cmd) {
	if !m.BidState.SelectPip(p) {
		return m, nil
	}
	m.Logger.Debug("pip selected", "pip", int(p))

	item := layout.PipCell(p)
	seq := m.UiState.Press(item.ID(), item.Label())
	return m, tea.Batch(
		release(seq),
		m.Haptics.Impact(feedback.Light),
	)
}

// handleTapReset clears the bid and scrolls the strip back to 1.
func (m Model) handleTapReset() (tea.Model, tea.Cmd) {
	m.BidState.Reset()
	m.Logger.Debug("bid reset")

	item := layout.ResetCell()
	seq := m.UiState.Press(item.ID(), item.Label())
	return m, tea.Batch(
		release(seq),
		m.scrollToNumeral(1),
		m.Haptics.Impact(feedback.Medium),
	)
}

// handleStepQuantity moves the selected quantity by delta. With nothing
// selected it picks the numeral at the leading edge.
func (m Model) handleStepQuantity(delta int) (tea.Model, tea.Cmd) {
	n := m.leadingNumeral()
	if q, ok := m.BidState.Selection().Quantity(); ok {
		n = m.BidState.Numerals().Clamp(q + delta)
		if n == q {
			return m, nil
		}
	}
	return m.handleTapNumeral(n)
}

// handlePageScroll scrolls the strip by one screenful without selecting.
func (m Model) handlePageScroll(direction int) (tea.Model, tea.Cmd) {
	metrics := m.stripMetrics()
	page := max(metrics.FullyVisible(), 1)
	offset := m.StripState.Target() + float64(direction*page)*metrics.Pitch()
	return m, m.scrollToOffset(offset)
}

const numeralIDPrefix = "num-"

func numeralID(n int) string {
	return fmt.Sprintf("%s%d", numeralIDPrefix, n)
}

// parseNumeralID returns the numeral named by a strip layer ID.
func parseNumeralID(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, numeralIDPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

func numeralLabel(n int) string {
	return fmt.Sprintf("Quantity %d", n)
}
