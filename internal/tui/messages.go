package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/liarsbid/internal/tui/state"
)

// pressDuration is how long a tapped button shows its pressed state.
const pressDuration = 50 * time.Millisecond

// stripFrameMsg advances the strip scroll animation by one frame.
type stripFrameMsg struct{}

// releaseMsg ends the pressed state started by press number seq.
type releaseMsg struct {
	seq int
}

func stripFrame() tea.Cmd {
	return tea.Tick(time.Second/state.StripFPS, func(time.Time) tea.Msg {
		return stripFrameMsg{}
	})
}

func release(seq int) tea.Cmd {
	return tea.Tick(pressDuration, func(time.Time) tea.Msg {
		return releaseMsg{seq: seq}
	})
}
