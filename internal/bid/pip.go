// Package bid holds the two selections that make up a Liar's Dice bid
// and the numeral range the quantity is picked from.
package bid

import "fmt"

// Pip is the face value of a die named in a bid.
type Pip int

const (
	MinPip Pip = 2 // ones are wild and never bid on
	MaxPip Pip = 6
)

// Pips returns every biddable face in ascending order.
func Pips() []Pip {
	pips := make([]Pip, 0, MaxPip-MinPip+1)
	for p := MinPip; p <= MaxPip; p++ {
		pips = append(pips, p)
	}
	return pips
}

// Valid reports whether p is a biddable face.
func (p Pip) Valid() bool {
	return p >= MinPip && p <= MaxPip
}

func (p Pip) String() string {
	return fmt.Sprintf("%d", int(p))
}
