package bid

import "fmt"

// Selection is the bid under construction: an optional quantity and an
// optional pip. The zero value has neither set.
type Selection struct {
	// quantity is the selected numeral, 0 when unset
	quantity int

	// pip is the selected face, 0 when unset
	pip Pip
}

// Quantity returns the selected quantity and whether one is set.
func (s *Selection) Quantity() (int, bool) {
	return s.quantity, s.quantity > 0
}

// Pip returns the selected pip and whether one is set.
func (s *Selection) Pip() (Pip, bool) {
	return s.pip, s.pip != 0
}

// SelectQuantity marks n as the selected quantity.
// Non-positive values are ignored and reported as false.
func (s *Selection) SelectQuantity(n int) bool {
	if n < 1 {
		return false
	}
	s.quantity = n
	return true
}

// SelectPip marks p as the selected pip, replacing any previous pip.
// Faces outside 2..6 are ignored and reported as false.
func (s *Selection) SelectPip(p Pip) bool {
	if !p.Valid() {
		return false
	}
	s.pip = p
	return true
}

// IsQuantitySelected reports whether n is the selected quantity.
func (s *Selection) IsQuantitySelected(n int) bool {
	return s.quantity > 0 && s.quantity == n
}

// IsPipSelected reports whether p is the selected pip.
func (s *Selection) IsPipSelected(p Pip) bool {
	return s.pip != 0 && s.pip == p
}

// Reset clears both selections.
func (s *Selection) Reset() {
	s.quantity = 0
	s.pip = 0
}

// Complete reports whether both halves of the bid are chosen.
func (s *Selection) Complete() bool {
	return s.quantity > 0 && s.pip != 0
}

// String renders the bid as "7 × 4", with "–" for a missing half.
func (s *Selection) String() string {
	q, p := "–", "–"
	if s.quantity > 0 {
		q = fmt.Sprintf("%d", s.quantity)
	}
	if s.pip != 0 {
		p = s.pip.String()
	}
	return q + " × " + p
}
