package state

import "github.com/thenoetrevino/liarsbid/internal/layout"

// Mode represents the current interaction mode of the TUI.
type Mode int

const (
	NormalMode Mode = iota // Picking a bid
	HelpMode               // Displaying help screen
)

// UIState manages the user interface state.
// This includes terminal dimensions, the current interaction mode and the
// button currently showing its pressed state.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// pressed is the ID of the button in its pressed state, empty when none
	pressed string

	// pressSeq increments with every press so stale releases are ignored
	pressSeq int

	// focusLabel is the accessibility label of the last activated button
	focusLabel string

	// orientation is the orientation of the last layout pass
	orientation layout.Orientation

	// laidOut is false until the first layout pass
	laidOut bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode: NormalMode,
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = max(width, 0)
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = max(height, 0)
}

// ContentHeight returns the rows available to the picker.
// This is terminal height minus the status bar.
func (s *UIState) ContentHeight() int {
	const statusBarHeight = 1
	return max(s.height-statusBarHeight, 0)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Press marks id as pressed and returns the sequence number a later
// Release must present.
func (s *UIState) Press(id, label string) int {
	s.pressSeq++
	s.pressed = id
	s.focusLabel = label
	return s.pressSeq
}

// Release clears the pressed state if seq is the latest press.
func (s *UIState) Release(seq int) bool {
	if seq != s.pressSeq || s.pressed == "" {
		return false
	}
	s.pressed = ""
	return true
}

// Pressed returns the ID of the pressed button.
func (s *UIState) Pressed() string {
	return s.pressed
}

// IsPressed reports whether id is in its pressed state.
func (s *UIState) IsPressed(id string) bool {
	return s.pressed != "" && s.pressed == id
}

// FocusLabel returns the accessibility label of the last activated button.
func (s *UIState) FocusLabel() string {
	return s.focusLabel
}

// ObserveOrientation records the orientation of a layout pass and reports
// whether it differs from the previous one.
func (s *UIState) ObserveOrientation(o layout.Orientation) bool {
	changed := s.laidOut && s.orientation != o
	s.orientation = o
	s.laidOut = true
	return changed
}
