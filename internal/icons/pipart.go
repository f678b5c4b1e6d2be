package icons

import "strings"

// pipMatrix marks which of the 3x3 positions carry a dot for each face.
var pipMatrix = map[int][3]string{
	1: {"   ", " o ", "   "},
	2: {"o  ", "   ", "  o"},
	3: {"o  ", " o ", "  o"},
	4: {"o o", "   ", "o o"},
	5: {"o o", " o ", "o o"},
	6: {"o o", "o o", "o o"},
}

// PipArt draws face n as a three line dot grid, with dots spaced by gap
// columns. It returns "" for faces outside 1..6.
func PipArt(n int, dot string, gap int) string {
	rows, ok := pipMatrix[n]
	if !ok {
		return ""
	}
	if dot == "" {
		dot = "●"
	}
	space := strings.Repeat(" ", max(gap, 0))

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			if c == 'o' {
				cells = append(cells, dot)
			} else {
				cells = append(cells, " ")
			}
		}
		lines = append(lines, strings.Join(cells, space))
	}
	return strings.Join(lines, "\n")
}

// PipArtSize returns the width and height PipArt produces for gap.
func PipArtSize(gap int) (int, int) {
	return 3 + 2*max(gap, 0), 3
}
