package board

import (
	"fmt"
	"strconv"
	"strings"

	"blockblast/piece"
)

// Cell labels:
// - Columns: A-H, left to right
// - Rows: 1-8, top to bottom
// - Example: A1 is the top-left cell, H8 the bottom-right one

// Label returns the display name of a cell, "?" when it is off the grid.
func Label(p piece.Point) string {
	if !InBounds(p) {
		return "?"
	}
	return fmt.Sprintf("%c%d", 'A'+rune(p.X), p.Y+1)
}

// ParseLabel converts a label such as "c4" or "C4" back to a point.
func ParseLabel(label string) (piece.Point, error) {
	label = strings.TrimSpace(strings.ToUpper(label))
	if len(label) < 2 {
		return piece.Point{}, fmt.Errorf("invalid cell %q", label)
	}

	x := int(label[0] - 'A')
	y, err := strconv.Atoi(label[1:])
	if err != nil {
		return piece.Point{}, fmt.Errorf("invalid row in cell %q: %w", label, err)
	}

	p := piece.Point{X: x, Y: y - 1}
	if !InBounds(p) {
		return piece.Point{}, fmt.Errorf("cell %q is off the board", label)
	}
	return p, nil
}
