// Package board holds the 8x8 grid pieces are placed on.
package board

import (
	"fmt"
	"strings"

	"blockblast/piece"
)

// Size is the width and height of the grid.
const Size = 8

// Grid is indexed [y][x]. piece.ColorNone marks an empty cell.
type Grid [Size][Size]piece.Color

// Board owns the grid and enforces placement rules on it.
type Board struct {
	g Grid
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// InBounds reports whether p lies on the grid.
func InBounds(p piece.Point) bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Grid returns a copy of the grid.
func (b *Board) Grid() Grid {
	return b.g
}

// Cell returns the color at p, ColorNone when empty or out of bounds.
func (b *Board) Cell(p piece.Point) piece.Color {
	if !InBounds(p) {
		return piece.ColorNone
	}
	return b.g[p.Y][p.X]
}

// Empty reports whether p is on the grid and unoccupied.
func (b *Board) Empty(p piece.Point) bool {
	return InBounds(p) && b.g[p.Y][p.X] == piece.ColorNone
}

// Occupied returns the number of occupied cells.
func (b *Board) Occupied() int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.g[y][x] != piece.ColorNone {
				n++
			}
		}
	}
	return n
}

// CanPlace reports whether every cell of p anchored at anchor is on the grid
// and empty. It never modifies the board.
func (b *Board) CanPlace(p piece.Piece, anchor piece.Point) bool {
	for _, o := range p.Shape {
		if !b.Empty(anchor.Add(o)) {
			return false
		}
	}
	return true
}

// Place paints the cells of p anchored at anchor. The caller must have
// checked CanPlace; placing over an occupied or off-grid cell panics.
func (b *Board) Place(p piece.Piece, anchor piece.Point) {
	if p.Color == piece.ColorNone {
		panic(fmt.Sprintf("board: place %s at %s: piece has no color", p.Shape, anchor))
	}
	if !b.CanPlace(p, anchor) {
		panic(fmt.Sprintf("board: place %s at %s: cells not free", p.Shape, anchor))
	}

	for _, c := range p.Cells(anchor) {
		b.g[c.Y][c.X] = p.Color
	}
}

// RowFilled reports whether every cell of row y is occupied.
func (b *Board) RowFilled(y int) bool {
	for x := 0; x < Size; x++ {
		if b.g[y][x] == piece.ColorNone {
			return false
		}
	}
	return true
}

// ColumnFilled reports whether every cell of column x is occupied.
func (b *Board) ColumnFilled(x int) bool {
	for y := 0; y < Size; y++ {
		if b.g[y][x] == piece.ColorNone {
			return false
		}
	}
	return true
}

// ClearCompletedLines empties every full row and column and returns how many
// of each were cleared. Lines are detected before any cell is cleared, so a
// row and a column sharing a cell are both counted.
func (b *Board) ClearCompletedLines() (rows, cols int) {
	var fullRows, fullCols [Size]bool
	for i := 0; i < Size; i++ {
		if b.RowFilled(i) {
			fullRows[i] = true
			rows++
		}
		if b.ColumnFilled(i) {
			fullCols[i] = true
			cols++
		}
	}

	if rows == 0 && cols == 0 {
		return 0, 0
	}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if fullRows[y] || fullCols[x] {
				b.g[y][x] = piece.ColorNone
			}
		}
	}

	return rows, cols
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.g = Grid{}
}

// Render draws the grid top row first, '#' for occupied and '.' for empty.
func (b *Board) Render() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.g[y][x] == piece.ColorNone {
				sb.WriteRune('.')
			} else {
				sb.WriteRune('#')
			}
		}
		if y < Size-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
