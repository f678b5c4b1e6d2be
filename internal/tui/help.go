package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/liarsbid/internal/tui/state"
)

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Help, m.Keys.Close):
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case key.Matches(msg, m.Keys.Quit):
		return m.handleQuit()
	}
	return m, nil
}

// helpMarkdown describes the picker and lists every binding.
func (m Model) helpMarkdown() string {
	var b strings.Builder

	b.WriteString("# Liar's Dice bid\n\n")
	b.WriteString("Pick a **quantity** from the numeral strip and a **face** from the pip grid. ")
	b.WriteString("Click a button or use the keys below.\n\n")

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Quantity", m.Keys.FullHelp()[0]},
		{"Face", m.Keys.FullHelp()[1]},
		{"Other", m.Keys.FullHelp()[2]},
	}
	for _, section := range sections {
		fmt.Fprintf(&b, "## %s\n\n", section.title)
		b.WriteString("| Key | Action |\n|---|---|\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Press `%s` or `esc` to close.\n", m.Keys.Help.Help().Key)
	return b.String()
}
