package layers

// Stacking order of the picker screen.
const (
	ZBackground = 0
	ZButtons    = 1
	ZStatusBar  = 2
	ZOverlay    = 10
)

const (
	OverlayDefaultWidthDivisor = 2

	OverlayMinWidth = 30
	OverlayMaxWidth = 64
)
