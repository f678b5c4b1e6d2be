package layout

import "math"

// Size is a container extent in layout units.
type Size struct {
	Width  float64
	Height float64
}

// Point is a position in layout units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in layout units.
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether p falls inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// CellRect is a box measured in terminal cells.
type CellRect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) falls inside r.
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Scale converts between layout units and terminal cells.
type Scale struct {
	UnitsPerColumn float64
	UnitsPerRow    float64
}

// DefaultScale returns the 8x16 unit cell used unless configured otherwise.
func DefaultScale() Scale {
	return Scale{UnitsPerColumn: DefaultUnitsPerColumn, UnitsPerRow: DefaultUnitsPerRow}
}

func (s Scale) normalized() Scale {
	if s.UnitsPerColumn <= 0 {
		s.UnitsPerColumn = DefaultUnitsPerColumn
	}
	if s.UnitsPerRow <= 0 {
		s.UnitsPerRow = DefaultUnitsPerRow
	}
	return s
}

// SizeOf returns the layout size of a cols x rows terminal area.
func (s Scale) SizeOf(cols, rows int) Size {
	s = s.normalized()
	return Size{
		Width:  float64(max(cols, 0)) * s.UnitsPerColumn,
		Height: float64(max(rows, 0)) * s.UnitsPerRow,
	}
}

// Columns converts a horizontal length to whole cells.
func (s Scale) Columns(units float64) int {
	return int(math.Round(units / s.normalized().UnitsPerColumn))
}

// Rows converts a vertical length to whole cells.
func (s Scale) Rows(units float64) int {
	return int(math.Round(units / s.normalized().UnitsPerRow))
}

// ToCells snaps r onto the cell grid. Edges are rounded independently so
// neighbouring rects never overlap and never leave a one-cell seam.
func (s Scale) ToCells(r Rect) CellRect {
	x0, y0 := s.Columns(r.X), s.Rows(r.Y)
	x1, y1 := s.Columns(r.X+r.W), s.Rows(r.Y+r.H)
	return CellRect{X: x0, Y: y0, Width: max(x1-x0, 0), Height: max(y1-y0, 0)}
}

// ButtonCells snaps r like ToCells, then grows the box from its origin so
// neither side covers less than minSide units on screen.
func (s Scale) ButtonCells(r Rect, minSide float64) CellRect {
	s = s.normalized()
	c := s.ToCells(r)
	if minSide <= 0 {
		return c
	}
	c.Width = max(c.Width, int(math.Ceil(minSide/s.UnitsPerColumn)))
	c.Height = max(c.Height, int(math.Ceil(minSide/s.UnitsPerRow)))
	return c
}

// PointAt returns the layout point at the centre of cell (x, y).
func (s Scale) PointAt(x, y int) Point {
	s = s.normalized()
	return Point{
		X: (float64(x) + 0.5) * s.UnitsPerColumn,
		Y: (float64(y) + 0.5) * s.UnitsPerRow,
	}
}
