package layout

// Layout units are abstract points, the same unit the touch-target rule
// is written in. Scale maps them onto terminal cells.
const (
	// DefaultGutter is the spacing around and between every row and cell.
	DefaultGutter = 16.0

	// MinTouchTarget is the smallest width or height any button may get.
	MinTouchTarget = 44.0

	// DefaultUnitsPerColumn approximates the width of one terminal cell.
	DefaultUnitsPerColumn = 8.0

	// DefaultUnitsPerRow approximates the height of one terminal cell.
	DefaultUnitsPerRow = 16.0
)

// Row shares of the height left after gutters.
const (
	landscapeStripShare = 0.30
	landscapeGridShare  = 0.70

	portraitStripShare   = 0.16
	portraitGridRowShare = 0.28 // three rows
)
