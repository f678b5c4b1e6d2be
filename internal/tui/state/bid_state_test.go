package state

import (
	"testing"

	"github.com/thenoetrevino/liarsbid/internal/bid"
)

// TestBidState_SelectQuantityOutsideRange ensures a numeral past the ceiling
// cannot become the bid.
func TestBidState_SelectQuantityOutsideRange(t *testing.T) {
	s := NewBidState(bid.RangeOptions{Policy: bid.PolicyFixed, FixedCeiling: 10})

	if s.SelectQuantity(11) {
		t.Error("SelectQuantity(11) with ceiling 10 = true, want false")
	}
	if !s.SelectQuantity(10) {
		t.Error("SelectQuantity(10) with ceiling 10 = false, want true")
	}
}

// TestBidState_ResetKeepsCeiling ensures reset does not shrink the range.
func TestBidState_ResetKeepsCeiling(t *testing.T) {
	s := NewBidState(bid.DefaultRangeOptions())
	s.Numerals().Reach(190)
	s.SelectQuantity(250)
	s.SelectPip(3)

	s.Reset()

	if s.Numerals().Ceiling() != 400 {
		t.Errorf("Ceiling() after reset = %d, want 400", s.Numerals().Ceiling())
	}
	if _, ok := s.Selection().Quantity(); ok {
		t.Error("quantity still set after Reset()")
	}
	if _, ok := s.Selection().Pip(); ok {
		t.Error("pip still set after Reset()")
	}
}
