package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/liarsbid/internal/layout"
)

// StripProps describes the numeral strip at one scroll position.
type StripProps struct {
	Layout   layout.Layout
	Scale    layout.Scale
	Offset   float64 // scroll position in layout units
	Count    int     // numerals in range
	Selected int     // selected numeral, 0 when none
	Pressed  int     // pressed numeral, 0 when none
}

// StripItem is one rendered numeral placed in screen cells. Items cut by
// the strip edges carry only their visible columns.
type StripItem struct {
	N       int
	X, Y    int
	Content string
}

// RenderStrip returns the numerals intersecting the strip viewport.
func RenderStrip(props StripProps) []StripItem {
	metrics := props.Layout.StripMetrics()
	first, last, ok := metrics.Visible(props.Offset, props.Count)
	if !ok {
		return nil
	}

	viewport := props.Scale.ToCells(props.Layout.Strip)
	left, right := viewport.X, viewport.X+viewport.Width

	items := make([]StripItem, 0, last-first+1)
	for n := first; n <= last; n++ {
		cell := props.Scale.ButtonCells(layout.Rect{
			X: props.Layout.Strip.X + metrics.ItemX(n) - props.Offset,
			Y: props.Layout.Strip.Y,
			W: metrics.Side,
			H: metrics.Side,
		}, props.Layout.Params.MinTouchTarget)

		clipL := max(cell.X, left)
		clipR := min(cell.X+cell.Width, right)
		if clipR <= clipL || cell.Height <= 0 {
			continue
		}

		content := RenderNumeral(NumeralProps{
			N:        n,
			Width:    cell.Width,
			Height:   cell.Height,
			Selected: n == props.Selected,
			Pressed:  n == props.Pressed,
		})
		if clipL != cell.X || clipR != cell.X+cell.Width {
			content = cutLines(content, clipL-cell.X, clipR-cell.X)
		}

		items = append(items, StripItem{N: n, X: clipL, Y: cell.Y, Content: content})
	}
	return items
}

// cutLines keeps columns [left, right) of every line of s.
func cutLines(s string, left, right int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, left, right)
	}
	return strings.Join(lines, "\n")
}
