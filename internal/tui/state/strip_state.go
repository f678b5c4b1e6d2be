package state

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Strip animation tuning. A critically damped spring at this frequency
// settles in roughly a quarter second.
const (
	StripFPS            = 60
	stripAngularFreq    = 12.0
	stripDampingRatio   = 1.0
	stripSettleDistance = 0.5
	stripSettleVelocity = 0.5
)

// StripState manages the horizontal scroll of the numeral strip.
// Offsets are in layout units; 0 shows the leading gutter.
type StripState struct {
	// offset is the current scroll position
	offset float64

	// velocity is the spring velocity at offset
	velocity float64

	// target is where the spring is heading
	target float64

	// animating is true while a frame tick is outstanding
	animating bool

	spring harmonica.Spring
}

// NewStripState creates a StripState scrolled to the start.
func NewStripState() *StripState {
	return &StripState{
		spring: harmonica.NewSpring(harmonica.FPS(StripFPS), stripAngularFreq, stripDampingRatio),
	}
}

// Offset returns the current scroll position.
func (s *StripState) Offset() float64 {
	return s.offset
}

// Target returns the scroll position being animated towards.
func (s *StripState) Target() float64 {
	return s.target
}

// Animating reports whether a frame tick is outstanding.
func (s *StripState) Animating() bool {
	return s.animating
}

// ScrollTo starts an animated scroll to target. It reports whether the
// caller needs to schedule the first frame, which is false when one is
// already pending or the strip is already there.
func (s *StripState) ScrollTo(target float64) bool {
	s.target = target
	if s.settled() {
		s.offset = target
		s.velocity = 0
		return false
	}
	if s.animating {
		return false
	}
	s.animating = true
	return true
}

// Jump moves straight to offset without animating.
func (s *StripState) Jump(offset float64) {
	s.offset = offset
	s.target = offset
	s.velocity = 0
}

// Step advances the spring by one frame. It reports whether another frame
// is needed.
func (s *StripState) Step() bool {
	s.offset, s.velocity = s.spring.Update(s.offset, s.velocity, s.target)
	if s.settled() {
		s.offset = s.target
		s.velocity = 0
		s.animating = false
		return false
	}
	return true
}

func (s *StripState) settled() bool {
	return math.Abs(s.offset-s.target) < stripSettleDistance &&
		math.Abs(s.velocity) < stripSettleVelocity
}
