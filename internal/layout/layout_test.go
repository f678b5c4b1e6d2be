package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Container sizes taken from common phones and terminals, in layout units.
var sampleSizes = []Size{
	{Width: 390, Height: 844},  // phone portrait
	{Width: 844, Height: 390},  // phone landscape
	{Width: 640, Height: 368},  // 80x23 terminal
	{Width: 960, Height: 624},  // 120x39 terminal
	{Width: 1280, Height: 784}, // 160x49 terminal
	{Width: 480, Height: 800},  // tall split pane
}

func TestClassify(t *testing.T) {
	tests := []struct {
		size Size
		want Orientation
	}{
		{Size{Width: 390, Height: 844}, Portrait},
		{Size{Width: 844, Height: 390}, Landscape},
		{Size{Width: 500, Height: 500}, Portrait},
		{Size{}, Portrait},
	}

	for _, tt := range tests {
		if got := Classify(tt.size); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestMode_Resolve(t *testing.T) {
	wide := Size{Width: 800, Height: 300}

	assert.Equal(t, Landscape, ModeAuto.Resolve(wide))
	assert.Equal(t, Portrait, ModePortrait.Resolve(wide))
	assert.Equal(t, Landscape, ModeLandscape.Resolve(Size{Width: 300, Height: 800}))

	_, err := ParseMode("sideways")
	assert.Error(t, err)
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeAuto, m)
}

func TestRows_Partitioning(t *testing.T) {
	landscape := Rows(Landscape)
	require.Len(t, landscape, 1)
	require.Len(t, landscape[0], 6)
	assert.Equal(t, ResetCell(), landscape[0][5])

	portrait := Rows(Portrait)
	require.Len(t, portrait, 3)
	for i, row := range portrait {
		assert.Len(t, row, 2, "portrait row %d", i)
	}
	assert.Equal(t, PipCell(6), portrait[2][0])
	assert.Equal(t, ResetCell(), portrait[2][1])
}

// TestCompute_FillsContainer checks that rows and gutters exactly fill the
// container whenever no clamp was needed.
func TestCompute_FillsContainer(t *testing.T) {
	for _, size := range sampleSizes {
		for _, o := range []Orientation{Portrait, Landscape} {
			t.Run(fmt.Sprintf("%vx%v_%v", size.Width, size.Height, o), func(t *testing.T) {
				l := Compute(size, o, DefaultParams())
				if l.Clamped {
					t.Skip("clamped layouts may overflow")
				}

				assert.InDelta(t, size.Height, l.ContentHeight(), 1e-9)
				for i := range l.Rows {
					assert.InDelta(t, size.Width, l.RowWidth(i), 1e-9, "row %d", i)
				}
			})
		}
	}
}

// TestCompute_Property sweeps a grid of container sizes and checks the
// invariants that hold for every layout pass.
func TestCompute_Property(t *testing.T) {
	params := DefaultParams()

	for w := 0.0; w <= 1600; w += 37 {
		for h := 0.0; h <= 1200; h += 29 {
			size := Size{Width: w, Height: h}
			for _, o := range []Orientation{Portrait, Landscape} {
				l := Compute(size, o, params)

				require.GreaterOrEqual(t, l.Strip.W, 0.0)
				require.GreaterOrEqual(t, l.NumeralSide, params.MinTouchTarget)

				cells := l.Cells()
				require.Len(t, cells, 6)
				for _, c := range cells {
					require.GreaterOrEqual(t, c.Rect.W, params.MinTouchTarget, "%v %v", size, o)
					require.GreaterOrEqual(t, c.Rect.H, params.MinTouchTarget, "%v %v", size, o)
				}

				if !l.Clamped {
					require.LessOrEqual(t, l.ContentHeight(), h+1e-9)
					for i := range l.Rows {
						require.LessOrEqual(t, l.RowWidth(i), w+1e-9)
					}
				}
			}
		}
	}
}

// TestCompute_RowCounts verifies the orientation state table.
func TestCompute_RowCounts(t *testing.T) {
	size := Size{Width: 900, Height: 900}

	assert.Len(t, Compute(size, Portrait, DefaultParams()).Rows, 3)
	assert.Len(t, Compute(size, Landscape, DefaultParams()).Rows, 1)
}

// TestCompute_LandscapeShares checks the 30/70 split of a landscape container.
func TestCompute_LandscapeShares(t *testing.T) {
	l := Compute(Size{Width: 844, Height: 390}, Landscape, DefaultParams())
	available := 390.0 - 2*16 - 16

	require.False(t, l.Clamped)
	assert.InDelta(t, available*0.3, l.Strip.H, 1e-9)
	assert.InDelta(t, available*0.7, l.Rows[0][0].Rect.H, 1e-9)
	assert.InDelta(t, (844.0-32-80)/6, l.Rows[0][0].Rect.W, 1e-9)
}

// TestCompute_ClampsTinyContainer ensures an undersized container keeps the
// touch target instead of failing.
func TestCompute_ClampsTinyContainer(t *testing.T) {
	l := Compute(Size{Width: 100, Height: 80}, Portrait, DefaultParams())

	assert.True(t, l.Clamped)
	for _, c := range l.Cells() {
		assert.Equal(t, MinTouchTarget, c.Rect.W)
		assert.Equal(t, MinTouchTarget, c.Rect.H)
	}
}

// TestCompute_NegativeSize ensures negative input is treated as empty.
func TestCompute_NegativeSize(t *testing.T) {
	l := Compute(Size{Width: -10, Height: -10}, Landscape, DefaultParams())

	assert.Equal(t, 0.0, l.Container.Width)
	assert.Equal(t, 0.0, l.Strip.W)
	assert.True(t, l.Clamped)
}

func TestLayout_Hit(t *testing.T) {
	l := Compute(Size{Width: 390, Height: 844}, Portrait, DefaultParams())

	for _, c := range l.Cells() {
		centre := Point{X: c.Rect.X + c.Rect.W/2, Y: c.Rect.Y + c.Rect.H/2}
		item, ok := l.Hit(centre)
		require.True(t, ok, "no hit at centre of %s", c.Item.ID())
		assert.Equal(t, c.Item, item)
	}

	_, ok := l.Hit(Point{X: 1, Y: 1})
	assert.False(t, ok, "outer gutter should not hit a cell")

	_, ok = l.Hit(Point{X: l.Strip.X + 5, Y: l.Strip.Y + 5})
	assert.False(t, ok, "strip should not hit a grid cell")
}

func TestItem_IDAndLabel(t *testing.T) {
	assert.Equal(t, "pip-4", PipCell(4).ID())
	assert.Equal(t, "Pip 4", PipCell(4).Label())
	assert.Equal(t, "reset", ResetCell().ID())
	assert.Equal(t, "Reset", ResetCell().Label())
}
