package state

import (
	"github.com/thenoetrevino/liarsbid/internal/bid"
)

// BidState manages the bid under construction.
// It owns the selection and the numeral range the quantity is picked from;
// nothing outside the Update loop writes to it.
type BidState struct {
	// selection holds the optional quantity and pip
	selection bid.Selection

	// numerals is the contiguous range offered by the strip
	numerals *bid.NumeralRange
}

// NewBidState creates a BidState with nothing selected.
func NewBidState(opts bid.RangeOptions) *BidState {
	return &BidState{
		numerals: bid.NewNumeralRange(opts),
	}
}

// Selection returns the current bid.
func (s *BidState) Selection() *bid.Selection {
	return &s.selection
}

// Numerals returns the numeral range.
func (s *BidState) Numerals() *bid.NumeralRange {
	return s.numerals
}

// SelectQuantity selects numeral n if it lies in the range.
func (s *BidState) SelectQuantity(n int) bool {
	if !s.numerals.Contains(n) {
		return false
	}
	return s.selection.SelectQuantity(n)
}

// SelectPip selects face p.
func (s *BidState) SelectPip(p bid.Pip) bool {
	return s.selection.SelectPip(p)
}

// Reset clears the bid. The range keeps its ceiling.
func (s *BidState) Reset() {
	s.selection.Reset()
}
