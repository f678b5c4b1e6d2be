package components

const (
	// minBorderedSide is the smallest box that still fits a border around one cell.
	minBorderedSide = 3

	// resetCaption is shown under the reset glyph when the cell is tall enough
	resetCaption = "reset"

	// statusBarEmptyBid is shown before anything is picked
	statusBarEmptyBid = "no bid"
)
