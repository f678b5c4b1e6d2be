package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/liarsbid/internal/config"
	"github.com/thenoetrevino/liarsbid/internal/feedback"
	"github.com/thenoetrevino/liarsbid/internal/icons"
	"github.com/thenoetrevino/liarsbid/internal/layout"
	"github.com/thenoetrevino/liarsbid/internal/logging"
	"github.com/thenoetrevino/liarsbid/internal/tui/components"
	"github.com/thenoetrevino/liarsbid/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx     context.Context
	Config  *config.Config
	Haptics feedback.Service
	Icons   icons.Provider
	Logger  *slog.Logger
	Keys    KeyMap
	Help    help.Model

	// MouseEnabled turns on cell motion mouse reporting in the view
	MouseEnabled bool

	BidState   *state.BidState
	StripState *state.StripState
	UiState    *state.UIState
}

// InitialModel creates the picker with nothing selected and the strip at 1.
// A nil haptics service or glyph provider falls back to the log service and
// the unicode set.
func InitialModel(ctx context.Context, cfg *config.Config, haptics feedback.Service, glyphs icons.Provider) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := logging.Get()
	if haptics == nil {
		haptics = feedback.Logger{Log: logger}
	}
	if glyphs == nil {
		glyphs = icons.Unicode{}
	}

	// Initialize styles from the theme
	components.InitStyles(cfg.ColorScheme)

	return Model{
		Ctx:          ctx,
		Config:       cfg,
		Haptics:      haptics,
		Icons:        glyphs,
		Logger:       logger,
		Keys:         NewKeyMap(cfg.KeyMappings),
		Help:         help.New(),
		MouseEnabled: true,
		BidState:     state.NewBidState(cfg.RangeOptions()),
		StripState:   state.NewStripState(),
		UiState:      state.NewUIState(),
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// layout computes the picker geometry for the current terminal size.
// The status bar row is excluded.
func (m Model) layout() layout.Layout {
	scale := m.Config.Scale()
	size := scale.SizeOf(m.UiState.Width(), m.UiState.ContentHeight())
	orientation := m.Config.OrientationMode().Resolve(size)
	return layout.Compute(size, orientation, m.Config.LayoutParams())
}

// stripMetrics is the numeral row geometry of the current layout.
func (m Model) stripMetrics() layout.StripMetrics {
	return m.layout().StripMetrics()
}

// leadingNumeral returns the numeral nearest the leading edge of the strip.
func (m Model) leadingNumeral() int {
	metrics := m.stripMetrics()
	pitch := metrics.Pitch()
	if pitch <= 0 {
		return 1
	}
	n := int(m.StripState.Target()/pitch+0.5) + 1
	return m.BidState.Numerals().Clamp(n)
}
