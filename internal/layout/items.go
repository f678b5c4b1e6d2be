package layout

import (
	"fmt"

	"github.com/thenoetrevino/liarsbid/internal/bid"
)

// ItemKind distinguishes pip cells from the reset cell.
type ItemKind int

const (
	PipItem ItemKind = iota
	ResetItem
)

// Item is one cell of the pip grid.
type Item struct {
	Kind ItemKind
	Pip  bid.Pip
}

// PipCell returns the grid item for face p.
func PipCell(p bid.Pip) Item {
	return Item{Kind: PipItem, Pip: p}
}

// ResetCell returns the grid item for the reset control.
func ResetCell() Item {
	return Item{Kind: ResetItem}
}

// ID is a stable identifier, used for hit-testing rendered layers.
func (i Item) ID() string {
	if i.Kind == ResetItem {
		return "reset"
	}
	return fmt.Sprintf("pip-%d", int(i.Pip))
}

// Label is the accessibility text for the item.
func (i Item) Label() string {
	if i.Kind == ResetItem {
		return "Reset"
	}
	return fmt.Sprintf("Pip %d", int(i.Pip))
}

// Rows partitions the six grid items for orientation o.
func Rows(o Orientation) [][]Item {
	if o == Landscape {
		return [][]Item{{
			PipCell(2), PipCell(3), PipCell(4), PipCell(5), PipCell(6), ResetCell(),
		}}
	}
	return [][]Item{
		{PipCell(2), PipCell(3)},
		{PipCell(4), PipCell(5)},
		{PipCell(6), ResetCell()},
	}
}
