package layers

import (
	"testing"

	"charm.land/lipgloss/v2"
)

// TestCreateCenteredLayerWithContent tests layer creation with content
func TestCreateCenteredLayerWithContent(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		screenWidth  int
		screenHeight int
		wantX, wantY int
	}{
		{
			name:         "normal screen",
			content:      "Test Content",
			screenWidth:  120,
			screenHeight: 40,
			wantX:        54,
			wantY:        19,
		},
		{
			name:         "small content on large screen",
			content:      "X",
			screenWidth:  200,
			screenHeight: 100,
			wantX:        99,
			wantY:        49,
		},
		{
			name:         "content wider than screen",
			content:      "This is a very long piece of content that needs to be centered on the screen",
			screenWidth:  40,
			screenHeight: 24,
			wantX:        0,
			wantY:        11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := CreateCenteredLayer(tt.content, tt.screenWidth, tt.screenHeight)

			if layer == nil {
				t.Fatal("CreateCenteredLayer should return a layer for non-empty content")
			}
			if layer.GetX() != tt.wantX || layer.GetY() != tt.wantY {
				t.Errorf("CreateCenteredLayer() at (%d, %d), want (%d, %d)",
					layer.GetX(), layer.GetY(), tt.wantX, tt.wantY)
			}
		})
	}
}

// TestCreateCenteredLayerWithEmptyContent tests layer creation with empty content
func TestCreateCenteredLayerWithEmptyContent(t *testing.T) {
	layer := CreateCenteredLayer("", 120, 40)

	if layer != nil {
		t.Error("CreateCenteredLayer should return nil for empty content")
	}
}

// TestCreatePlacedLayer_HitTesting ensures placed layers are found by ID and
// that the higher layer wins where two overlap.
func TestCreatePlacedLayer_HitTesting(t *testing.T) {
	comp := lipgloss.NewCompositor(
		CreatePlacedLayer("pip-2", "[2][2]\n[2][2]", 0, 0, ZButtons),
		CreatePlacedLayer("help", "??", 1, 1, ZOverlay),
	)

	if got := comp.Hit(0, 0).ID(); got != "pip-2" {
		t.Errorf("Hit(0, 0) = %q, want pip-2", got)
	}
	if got := comp.Hit(1, 1).ID(); got != "help" {
		t.Errorf("Hit(1, 1) = %q, want help", got)
	}
	if !comp.Hit(10, 10).Empty() {
		t.Error("Hit(10, 10) should miss every layer")
	}
}

func TestCalculateOverlayWidth(t *testing.T) {
	tests := []struct {
		screenWidth int
		want        int
	}{
		{200, OverlayMaxWidth},
		{80, 40},
		{40, OverlayMinWidth},
		{20, 20},
		{0, 0},
	}

	for _, tt := range tests {
		if got := CalculateOverlayWidth(tt.screenWidth); got != tt.want {
			t.Errorf("CalculateOverlayWidth(%d) = %d, want %d", tt.screenWidth, got, tt.want)
		}
	}
}
