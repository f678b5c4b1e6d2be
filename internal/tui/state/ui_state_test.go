package state

import (
	"testing"

	"github.com/thenoetrevino/liarsbid/internal/layout"
)

// TestContentHeight_ZeroHeight ensures content height never goes negative.
// Edge case: Terminal not fully initialized yet.
func TestContentHeight_ZeroHeight(t *testing.T) {
	state := NewUIState()
	state.SetHeight(0)

	if got := state.ContentHeight(); got != 0 {
		t.Errorf("ContentHeight() with height=0 = %d, want 0", got)
	}
}

func TestContentHeight_ReservesStatusBar(t *testing.T) {
	state := NewUIState()
	state.SetHeight(24)

	if got := state.ContentHeight(); got != 23 {
		t.Errorf("ContentHeight() with height=24 = %d, want 23", got)
	}
}

// TestRelease_StaleSequence ensures a release scheduled by an earlier press
// does not cut short a newer press.
func TestRelease_StaleSequence(t *testing.T) {
	state := NewUIState()

	first := state.Press("num-3", "Quantity 3")
	second := state.Press("pip-4", "Pip 4")

	if state.Release(first) {
		t.Error("Release(first) = true, want false for a stale press")
	}
	if !state.IsPressed("pip-4") {
		t.Errorf("Pressed() = %q, want pip-4", state.Pressed())
	}
	if !state.Release(second) {
		t.Error("Release(second) = false, want true")
	}
	if state.Pressed() != "" {
		t.Errorf("Pressed() after release = %q, want empty", state.Pressed())
	}
	if state.FocusLabel() != "Pip 4" {
		t.Errorf("FocusLabel() = %q, want Pip 4", state.FocusLabel())
	}
}

func TestObserveOrientation(t *testing.T) {
	state := NewUIState()

	if state.ObserveOrientation(layout.Landscape) {
		t.Error("first layout pass should not count as a change")
	}
	if state.ObserveOrientation(layout.Landscape) {
		t.Error("same orientation reported as a change")
	}
	if !state.ObserveOrientation(layout.Portrait) {
		t.Error("rotation to portrait not reported")
	}
}
