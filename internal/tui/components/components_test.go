package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/liarsbid/internal/config/colors"
	"github.com/thenoetrevino/liarsbid/internal/icons"
	"github.com/thenoetrevino/liarsbid/internal/layout"
)

func init() {
	InitStyles(*colors.Default())
}

func TestRenderButton_Size(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"square", 12, 6},
		{"wide", 20, 3},
		{"too small for border", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderButton(ButtonProps{Content: "7", Width: tt.width, Height: tt.height})
			if w := lipgloss.Width(got); w != tt.width {
				t.Errorf("RenderButton() width = %d, want %d", w, tt.width)
			}
			if h := lipgloss.Height(got); h != tt.height {
				t.Errorf("RenderButton() height = %d, want %d", h, tt.height)
			}
		})
	}
}

// TestRenderButton_ContentLargerThanBox ensures oversized content never
// grows the button past its cell.
func TestRenderButton_ContentLargerThanBox(t *testing.T) {
	got := RenderButton(ButtonProps{Content: "1\n2\n3\n4\n5\n6", Width: 6, Height: 4})

	assert.Equal(t, 6, lipgloss.Width(got))
	assert.Equal(t, 4, lipgloss.Height(got))
}

func TestRenderButton_ZeroSize(t *testing.T) {
	if got := RenderButton(ButtonProps{Content: "7"}); got != "" {
		t.Errorf("RenderButton() with zero size = %q, want empty", got)
	}
}

func TestRenderButton_StatesDiffer(t *testing.T) {
	base := ButtonProps{Content: "4", Width: 8, Height: 4}
	plain := RenderButton(base)

	selected := base
	selected.Selected = true
	pressed := base
	pressed.Pressed = true

	assert.NotEqual(t, plain, RenderButton(selected), "selected fill should change the output")
	assert.NotEqual(t, plain, RenderButton(pressed), "pressed border should change the output")
	assert.Contains(t, RenderButton(pressed), "┏", "pressed buttons use the thick border")
}

// TestRenderGridCell_ResetNeverSelected ensures the reset cell ignores the
// selected flag.
func TestRenderGridCell_ResetNeverSelected(t *testing.T) {
	props := GridCellProps{Item: layout.ResetCell(), Icons: icons.Unicode{}, Width: 12, Height: 6}
	plain := RenderGridCell(props)

	props.Selected = true
	if got := RenderGridCell(props); got != plain {
		t.Error("RenderGridCell(reset, selected) differs from unselected")
	}
	if !strings.Contains(plain, "↺") || !strings.Contains(plain, "reset") {
		t.Errorf("reset cell = %q, want glyph and caption", plain)
	}
}

func TestRenderGridCell_PipContent(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantDots      int
		wantGlyph     string
	}{
		{"large cell draws dot art", 12, 7, 4, ""},
		{"short cell falls back to glyph", 12, 3, 0, "⚃"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderGridCell(GridCellProps{
				Item:   layout.PipCell(4),
				Icons:  icons.Unicode{},
				Width:  tt.width,
				Height: tt.height,
			})
			if tt.wantDots > 0 {
				assert.Equal(t, tt.wantDots, strings.Count(got, "●"))
			}
			if tt.wantGlyph != "" {
				assert.Contains(t, got, tt.wantGlyph)
			}
		})
	}
}

// stripLayout is the 80x23 landscape picker: a 96 unit strip that shows
// numerals 1-5 whole and 6 cut by the trailing edge.
func stripLayout() (layout.Layout, layout.Scale) {
	scale := layout.DefaultScale()
	size := scale.SizeOf(80, 23)
	return layout.Compute(size, layout.Landscape, layout.DefaultParams()), scale
}

func TestRenderStrip_VisibleItems(t *testing.T) {
	l, scale := stripLayout()

	items := RenderStrip(StripProps{Layout: l, Scale: scale, Count: 200, Selected: 3})
	require.Len(t, items, 6)

	assert.Equal(t, 1, items[0].N)
	assert.Equal(t, 4, items[0].X, "numeral 1 sits past the outer and strip gutters")
	assert.Equal(t, 1, items[0].Y)
	assert.Equal(t, 12, lipgloss.Width(items[0].Content))
	assert.Equal(t, 6, lipgloss.Height(items[0].Content))

	last := items[len(items)-1]
	assert.Equal(t, 6, last.N)
	assert.Equal(t, 74, last.X)
	assert.Equal(t, 4, lipgloss.Width(last.Content), "numeral 6 is cut at the strip edge")
}

func TestRenderStrip_Scrolled(t *testing.T) {
	l, scale := stripLayout()
	pitch := l.StripMetrics().Pitch()

	items := RenderStrip(StripProps{Layout: l, Scale: scale, Count: 200, Offset: 6 * pitch})
	require.NotEmpty(t, items)

	assert.Equal(t, 7, items[0].N)
	assert.Equal(t, 4, items[0].X)
}

func TestRenderStrip_Empty(t *testing.T) {
	l, scale := stripLayout()

	assert.Empty(t, RenderStrip(StripProps{Layout: l, Scale: scale, Count: 0}))
}

func TestRenderStatusBar(t *testing.T) {
	got := RenderStatusBar(StatusBarProps{Width: 60, Bid: "7 × ⚃", Label: "Pip 4", Help: "? help"})

	assert.Equal(t, 60, lipgloss.Width(got))
	assert.Contains(t, got, "7 × ⚃")
	assert.Contains(t, got, "Pip 4")
	assert.Contains(t, got, "? help")
}

// TestRenderStatusBar_Narrow ensures the help text is dropped before the bid.
func TestRenderStatusBar_Narrow(t *testing.T) {
	got := RenderStatusBar(StatusBarProps{Width: 12, Help: "? help  q quit"})

	assert.LessOrEqual(t, lipgloss.Width(got), 12)
	assert.Contains(t, got, statusBarEmptyBid)
	assert.NotContains(t, got, "quit")
}
