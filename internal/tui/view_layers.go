package tui

import (
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/liarsbid/internal/icons"
	"github.com/thenoetrevino/liarsbid/internal/layout"
	"github.com/thenoetrevino/liarsbid/internal/tui/components"
	"github.com/thenoetrevino/liarsbid/internal/tui/layers"
	"github.com/thenoetrevino/liarsbid/internal/tui/state"
)

// helpLayerID marks the help overlay for hit testing.
const helpLayerID = "help"

// compose builds every layer of the screen. The same compositor is used
// for drawing and for hit testing clicks, so what is hit is what was drawn.
func (m Model) compose() *lipgloss.Compositor {
	width, height := m.UiState.Width(), m.UiState.Height()
	l := m.layout()
	scale := m.Config.Scale()

	background := components.ScreenStyle.
		Width(width).
		Height(height).
		Render("")

	all := []*lipgloss.Layer{
		lipgloss.NewLayer(background).Z(layers.ZBackground),
	}
	all = append(all, m.stripLayers(l, scale)...)
	all = append(all, m.gridLayers(l, scale)...)

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Bid:   m.bidText(),
		Label: m.UiState.FocusLabel(),
		Help:  m.Help.View(m.Keys),
	})
	all = append(all, lipgloss.NewLayer(statusBar).Y(max(height-1, 0)).Z(layers.ZStatusBar))

	if m.UiState.Mode() == state.HelpMode {
		overlay := components.RenderHelp(components.HelpProps{
			Markdown: m.helpMarkdown(),
			Width:    layers.CalculateOverlayWidth(width),
		})
		if layer := layers.CreateCenteredLayer(overlay, width, height); layer != nil {
			all = append(all, layer.ID(helpLayerID).Z(layers.ZOverlay))
		}
	}

	return lipgloss.NewCompositor(all...)
}

// stripLayers places the visible numerals.
func (m Model) stripLayers(l layout.Layout, scale layout.Scale) []*lipgloss.Layer {
	selected, _ := m.BidState.Selection().Quantity()

	pressed, _ := parseNumeralID(m.UiState.Pressed())

	items := components.RenderStrip(components.StripProps{
		Layout:   l,
		Scale:    scale,
		Offset:   m.StripState.Offset(),
		Count:    m.BidState.Numerals().Len(),
		Selected: selected,
		Pressed:  pressed,
	})

	out := make([]*lipgloss.Layer, 0, len(items))
	for _, item := range items {
		out = append(out, layers.CreatePlacedLayer(numeralID(item.N), item.Content, item.X, item.Y, layers.ZButtons))
	}
	return out
}

// gridLayers places the pip and reset buttons.
func (m Model) gridLayers(l layout.Layout, scale layout.Scale) []*lipgloss.Layer {
	cells := l.Cells()
	out := make([]*lipgloss.Layer, 0, len(cells))
	for _, cell := range cells {
		rect := scale.ButtonCells(cell.Rect, l.Params.MinTouchTarget)
		id := cell.Item.ID()

		content := components.RenderGridCell(components.GridCellProps{
			Item:     cell.Item,
			Icons:    m.Icons,
			Width:    rect.Width,
			Height:   rect.Height,
			Selected: cell.Item.Kind == layout.PipItem && m.BidState.Selection().IsPipSelected(cell.Item.Pip),
			Pressed:  m.UiState.IsPressed(id),
		})
		if content == "" {
			continue
		}
		out = append(out, layers.CreatePlacedLayer(id, content, rect.X, rect.Y, layers.ZButtons))
	}
	return out
}

// bidText renders the bid as "7 × ⚃", with dashes for the missing half.
// It is empty before anything is picked.
func (m Model) bidText() string {
	selection := m.BidState.Selection()
	q, hasQ := selection.Quantity()
	p, hasP := selection.Pip()
	if !hasQ && !hasP {
		return ""
	}

	quantity, face := "–", "–"
	if hasQ {
		quantity = strconv.Itoa(q)
	}
	if hasP {
		face = m.Icons.Glyph(icons.DieFace(int(p)))
	}
	return quantity + " × " + face
}
