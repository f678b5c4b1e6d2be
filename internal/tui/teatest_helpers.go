package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/liarsbid/internal/config"
	"github.com/thenoetrevino/liarsbid/internal/feedback"
	"github.com/thenoetrevino/liarsbid/internal/icons"
)

// maxStripFrames bounds SettleStrip so a spring that never settles fails
// the test instead of hanging it.
const maxStripFrames = 600

// RecordingHaptics collects every impact instead of playing it.
type RecordingHaptics struct {
	Impacts *[]feedback.Style
}

func (r RecordingHaptics) Impact(style feedback.Style) tea.Cmd {
	*r.Impacts = append(*r.Impacts, style)
	return nil
}

// SetupTestModel creates a model with the default config and a recording
// haptics service, sized to width x height.
func SetupTestModel(t *testing.T, cfg *config.Config, width, height int) (Model, *[]feedback.Style) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}

	impacts := &[]feedback.Style{}
	m := InitialModel(context.Background(), cfg, RecordingHaptics{Impacts: impacts}, icons.Unicode{})
	m = UpdateModelWithMessage(m, tea.WindowSizeMsg{Width: width, Height: height})
	return m, impacts
}

// UpdateModelWithMessage updates the model with a message and returns the updated model
func UpdateModelWithMessage(m Model, msg tea.Msg) Model {
	updatedModel, _ := m.Update(msg)
	return updatedModel.(Model)
}

// SendKeysToModel sends multiple key presses to a model sequentially
func SendKeysToModel(m *Model, keys ...tea.Msg) *Model {
	for _, key := range keys {
		updatedModel, _ := m.Update(key)
		*m = updatedModel.(Model)
	}
	return m
}

// SendSpecialKeyToModel sends a special key (arrow, escape, etc.) to the model
func SendSpecialKeyToModel(m *Model, code rune) *Model {
	msg := tea.KeyPressMsg(tea.Key{Code: code})
	updatedModel, _ := m.Update(msg)
	*m = updatedModel.(Model)
	return m
}

// TypeStringToModel types a string into a model character by character
func TypeStringToModel(m *Model, s string) *Model {
	for _, r := range s {
		msg := tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
		updatedModel, _ := m.Update(msg)
		*m = updatedModel.(Model)
	}
	return m
}

// ClickModel sends a left click at cell (x, y)
func ClickModel(m *Model, x, y int) *Model {
	msg := tea.MouseClickMsg(tea.Mouse{X: x, Y: y, Button: tea.MouseLeft})
	updatedModel, _ := m.Update(msg)
	*m = updatedModel.(Model)
	return m
}

// ClickLayer clicks just inside the top-left corner of the layer with id.
// The test fails if the layer is not on screen.
func ClickLayer(t *testing.T, m *Model, id string) *Model {
	t.Helper()
	layer := m.compose().GetLayer(id)
	if layer == nil {
		t.Fatalf("layer %q is not on screen", id)
	}
	return ClickModel(m, layer.GetX()+1, layer.GetY()+1)
}

// SettleStrip delivers animation frames until the strip stops moving.
func SettleStrip(t *testing.T, m *Model) *Model {
	t.Helper()
	for frames := 0; m.StripState.Animating(); frames++ {
		if frames > maxStripFrames {
			t.Fatalf("strip still animating after %d frames", maxStripFrames)
		}
		*m = UpdateModelWithMessage(*m, stripFrameMsg{})
	}
	return m
}
