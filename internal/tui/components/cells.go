package components

import (
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/liarsbid/internal/icons"
	"github.com/thenoetrevino/liarsbid/internal/layout"
)

// NumeralProps describes one numeral of the strip.
type NumeralProps struct {
	N        int
	Width    int
	Height   int
	Selected bool
	Pressed  bool
}

// RenderNumeral draws the button for numeral N.
func RenderNumeral(props NumeralProps) string {
	return RenderButton(ButtonProps{
		Content:  strconv.Itoa(props.N),
		Width:    props.Width,
		Height:   props.Height,
		Selected: props.Selected,
		Pressed:  props.Pressed,
	})
}

// GridCellProps describes one cell of the pip grid.
type GridCellProps struct {
	Item     layout.Item
	Icons    icons.Provider
	Width    int
	Height   int
	Selected bool
	Pressed  bool
}

// RenderGridCell draws a pip or reset button. Pips are drawn as dot art
// when the cell is large enough and as a single glyph otherwise. Reset is
// never drawn selected.
func RenderGridCell(props GridCellProps) string {
	innerW, innerH := innerSize(props.Width, props.Height)

	var content string
	switch props.Item.Kind {
	case layout.ResetItem:
		content = resetContent(props.Icons, innerW, innerH)
		props.Selected = false
	default:
		content = pipContent(props.Icons, int(props.Item.Pip), innerW, innerH)
	}

	return RenderButton(ButtonProps{
		Content:  content,
		Width:    props.Width,
		Height:   props.Height,
		Selected: props.Selected,
		Pressed:  props.Pressed,
	})
}

func pipContent(provider icons.Provider, face, innerW, innerH int) string {
	dot := provider.Glyph(icons.DotName)
	for _, gap := range []int{1, 0} {
		w, h := icons.PipArtSize(gap)
		if w*lipgloss.Width(dot) <= innerW && h <= innerH {
			return icons.PipArt(face, dot, gap)
		}
	}
	return provider.Glyph(icons.DieFace(face))
}

func resetContent(provider icons.Provider, innerW, innerH int) string {
	glyph := provider.Glyph(icons.ResetName)
	if innerH >= 2 && innerW >= len(resetCaption) {
		return lipgloss.JoinVertical(lipgloss.Center, glyph, resetCaption)
	}
	return glyph
}
