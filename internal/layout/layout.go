// Package layout computes the adaptive arrangement of the bid picker.
// Compute is pure: the same container, orientation and parameters always
// produce the same rectangles.
package layout

// Params holds the fixed spacing constants.
type Params struct {
	Gutter         float64
	MinTouchTarget float64
}

// DefaultParams returns the 16 unit gutter and 44 unit touch target.
func DefaultParams() Params {
	return Params{Gutter: DefaultGutter, MinTouchTarget: MinTouchTarget}
}

func (p Params) normalized() Params {
	if p.Gutter < 0 {
		p.Gutter = 0
	}
	if p.MinTouchTarget <= 0 {
		p.MinTouchTarget = MinTouchTarget
	}
	return p
}

// Cell is a grid item and the box it occupies.
type Cell struct {
	Item Item
	Rect Rect
}

// Layout is the result of one layout pass.
type Layout struct {
	Orientation Orientation
	Container   Size
	Params      Params

	// Strip is the numeral row, inset by the outer gutters.
	Strip Rect

	// NumeralSide is the edge of the square numeral buttons.
	NumeralSide float64

	// Rows holds the pip/reset cells, top to bottom.
	Rows [][]Cell

	// Clamped is set when some size was raised to the touch-target minimum,
	// in which case the content may overflow the container.
	Clamped bool
}

// Compute lays out the picker for a container of the given size.
func Compute(size Size, o Orientation, params Params) Layout {
	params = params.normalized()
	g := params.Gutter
	minSide := params.MinTouchTarget

	size.Width = max(size.Width, 0)
	size.Height = max(size.Height, 0)

	itemRows := Rows(o)
	rowCount := 1 + len(itemRows)

	stripShare, gridShare := portraitStripShare, portraitGridRowShare
	if o == Landscape {
		stripShare, gridShare = landscapeStripShare, landscapeGridShare
	}

	available := max(size.Height-2*g-g*float64(rowCount-1), 0)

	l := Layout{Orientation: o, Container: size, Params: params}

	stripH := available * stripShare
	if stripH < minSide {
		stripH = minSide
		l.Clamped = true
	}
	rowH := available * gridShare
	if rowH < minSide {
		rowH = minSide
		l.Clamped = true
	}

	l.Strip = Rect{X: g, Y: g, W: max(size.Width-2*g, 0), H: stripH}
	l.NumeralSide = stripH

	y := g + stripH + g
	for _, items := range itemRows {
		n := float64(len(items))
		cellW := (size.Width - 2*g - g*(n-1)) / n
		if cellW < minSide {
			cellW = minSide
			l.Clamped = true
		}

		cells := make([]Cell, 0, len(items))
		x := g
		for _, item := range items {
			cells = append(cells, Cell{Item: item, Rect: Rect{X: x, Y: y, W: cellW, H: rowH}})
			x += cellW + g
		}
		l.Rows = append(l.Rows, cells)
		y += rowH + g
	}

	return l
}

// Cells returns every grid cell in reading order.
func (l Layout) Cells() []Cell {
	var cells []Cell
	for _, row := range l.Rows {
		cells = append(cells, row...)
	}
	return cells
}

// Hit returns the grid item under p, if any. Gutters hit nothing.
func (l Layout) Hit(p Point) (Item, bool) {
	for _, row := range l.Rows {
		for _, c := range row {
			if c.Rect.Contains(p) {
				return c.Item, true
			}
		}
	}
	return Item{}, false
}

// ContentHeight is the total height used by rows and gutters.
func (l Layout) ContentHeight() float64 {
	h := 2*l.Params.Gutter + l.Strip.H
	for _, row := range l.Rows {
		if len(row) > 0 {
			h += l.Params.Gutter + row[0].Rect.H
		}
	}
	return h
}

// RowWidth is the total width used by row i, including gutters.
func (l Layout) RowWidth(i int) float64 {
	if i < 0 || i >= len(l.Rows) || len(l.Rows[i]) == 0 {
		return 0
	}
	row := l.Rows[i]
	last := row[len(row)-1].Rect
	return last.X + last.W + l.Params.Gutter
}
