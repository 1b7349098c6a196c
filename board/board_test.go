package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockblast/piece"
)

var (
	mono    = piece.Piece{Shape: piece.Catalog[0], Color: piece.ColorRed}
	barH3   = piece.Piece{Shape: piece.Catalog[2], Color: piece.ColorBlue}
	square2 = piece.Piece{Shape: piece.Catalog[5], Color: piece.ColorLime}
)

func fillRow(b *Board, y int, skip ...int) {
	for x := 0; x < Size; x++ {
		if containsInt(skip, x) {
			continue
		}
		b.g[y][x] = piece.ColorGreen
	}
}

func fillColumn(b *Board, x int, skip ...int) {
	for y := 0; y < Size; y++ {
		if containsInt(skip, y) {
			continue
		}
		b.g[y][x] = piece.ColorYellow
	}
}

func containsInt(s []int, v int) bool {
	for _, i := range s {
		if i == v {
			return true
		}
	}
	return false
}

func TestNewBoardEmpty(t *testing.T) {
	b := New()
	assert.Zero(t, b.Occupied())
	assert.Equal(t, Grid{}, b.Grid())
}

func TestCanPlaceBounds(t *testing.T) {
	b := New()

	tests := []struct {
		name   string
		p      piece.Piece
		anchor piece.Point
		want   bool
	}{
		{"origin", mono, piece.Point{X: 0, Y: 0}, true},
		{"corner", mono, piece.Point{X: 7, Y: 7}, true},
		{"negative x", mono, piece.Point{X: -1, Y: 0}, false},
		{"negative y", mono, piece.Point{X: 0, Y: -1}, false},
		{"past right", mono, piece.Point{X: 8, Y: 0}, false},
		{"past bottom", mono, piece.Point{X: 0, Y: 8}, false},
		{"bar fits at edge", barH3, piece.Point{X: 5, Y: 0}, true},
		{"bar overhangs", barH3, piece.Point{X: 6, Y: 0}, false},
		{"square overhangs bottom", square2, piece.Point{X: 0, Y: 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.CanPlace(tt.p, tt.anchor))
		})
	}
}

func TestCanPlaceOccupied(t *testing.T) {
	b := New()
	b.g[0][2] = piece.ColorPink

	assert.False(t, b.CanPlace(barH3, piece.Point{X: 0, Y: 0}))
	assert.True(t, b.CanPlace(barH3, piece.Point{X: 3, Y: 0}))
	assert.True(t, b.CanPlace(barH3, piece.Point{X: 0, Y: 1}))
}

func TestCanPlaceIsPure(t *testing.T) {
	b := New()
	b.g[3][3] = piece.ColorCyan
	before := b.Grid()

	for y := -1; y <= Size; y++ {
		for x := -1; x <= Size; x++ {
			for _, s := range piece.Catalog {
				b.CanPlace(piece.Piece{Shape: s, Color: piece.ColorRed}, piece.Point{X: x, Y: y})
			}
		}
	}

	assert.Equal(t, before, b.Grid())
}

// CanPlace holds exactly when every offset cell is in bounds and empty, and
// Place paints exactly those cells.
func TestCanPlaceMatchesCells(t *testing.T) {
	b := New()
	fillRow(b, 4, 0, 1)
	fillColumn(b, 6, 4)

	for _, s := range piece.Catalog {
		p := piece.Piece{Shape: s, Color: piece.ColorOrange}
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				anchor := piece.Point{X: x, Y: y}
				want := true
				for _, c := range p.Cells(anchor) {
					if !InBounds(c) || b.g[c.Y][c.X] != piece.ColorNone {
						want = false
					}
				}
				require.Equal(t, want, b.CanPlace(p, anchor), "shape %s at %s", s, anchor)

				if want {
					probe := &Board{g: b.g}
					probe.Place(p, anchor)
					for _, c := range p.Cells(anchor) {
						assert.Equal(t, piece.ColorOrange, probe.Cell(c))
					}
					assert.Equal(t, b.Occupied()+s.Len(), probe.Occupied())
				}
			}
		}
	}
}

func TestPlace(t *testing.T) {
	b := New()
	b.Place(square2, piece.Point{X: 3, Y: 2})

	for _, c := range []piece.Point{{X: 3, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 3}} {
		assert.Equal(t, piece.ColorLime, b.Cell(c))
		assert.False(t, b.Empty(c))
	}
	assert.Equal(t, 4, b.Occupied())
}

func TestPlacePanicsWhenBlocked(t *testing.T) {
	b := New()
	b.Place(mono, piece.Point{X: 0, Y: 0})

	assert.Panics(t, func() { b.Place(mono, piece.Point{X: 0, Y: 0}) })
	assert.Panics(t, func() { b.Place(barH3, piece.Point{X: 7, Y: 7}) })
	assert.Panics(t, func() { b.Place(piece.Piece{Shape: piece.Catalog[0]}, piece.Point{X: 1, Y: 1}) })
	assert.Equal(t, 1, b.Occupied())
}

func TestClearCompletedRow(t *testing.T) {
	b := New()
	fillRow(b, 3, 7)
	b.g[2][7] = piece.ColorBlue

	rows, cols := b.ClearCompletedLines()
	assert.Zero(t, rows)
	assert.Zero(t, cols)

	b.Place(mono, piece.Point{X: 7, Y: 3})
	rows, cols = b.ClearCompletedLines()
	assert.Equal(t, 1, rows)
	assert.Zero(t, cols)

	for x := 0; x < Size; x++ {
		assert.True(t, b.Empty(piece.Point{X: x, Y: 3}))
	}
	assert.Equal(t, piece.ColorBlue, b.Cell(piece.Point{X: 7, Y: 2}))
}

func TestClearRowAndColumnTogether(t *testing.T) {
	b := New()
	fillRow(b, 0, 0)
	fillColumn(b, 0, 0)

	b.Place(mono, piece.Point{X: 0, Y: 0})
	rows, cols := b.ClearCompletedLines()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 1, cols)
	assert.Zero(t, b.Occupied())
}

func TestClearMixedColorsAndMultipleLines(t *testing.T) {
	b := New()
	for _, y := range []int{1, 5, 6} {
		for x := 0; x < Size; x++ {
			b.g[y][x] = piece.Palette[(x+y)%len(piece.Palette)]
		}
	}
	fillColumn(b, 2)

	rows, cols := b.ClearCompletedLines()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, cols)
	assert.Zero(t, b.Occupied())
}

func TestClearCompletedLinesIdempotent(t *testing.T) {
	b := New()
	fillRow(b, 7)
	fillColumn(b, 3)
	b.g[0][0] = piece.ColorPurple

	rows, cols := b.ClearCompletedLines()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 1, cols)

	rows, cols = b.ClearCompletedLines()
	assert.Zero(t, rows)
	assert.Zero(t, cols)
	assert.Equal(t, 1, b.Occupied())
}

func TestFullBoardClearsEverything(t *testing.T) {
	b := New()
	for y := 0; y < Size; y++ {
		fillRow(b, y)
	}

	rows, cols := b.ClearCompletedLines()
	assert.Equal(t, Size, rows)
	assert.Equal(t, Size, cols)
	assert.Zero(t, b.Occupied())
}

func TestReset(t *testing.T) {
	b := New()
	fillRow(b, 2)
	fillColumn(b, 5)
	require.NotZero(t, b.Occupied())

	b.Reset()
	assert.Zero(t, b.Occupied())
	assert.Equal(t, Grid{}, b.Grid())
}

func TestRender(t *testing.T) {
	b := New()
	b.Place(barH3, piece.Point{X: 0, Y: 0})
	b.Place(mono, piece.Point{X: 7, Y: 7})

	want := "###.....\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		".......#"
	assert.Equal(t, want, b.Render())
}

func TestCellOutOfBounds(t *testing.T) {
	b := New()
	assert.Equal(t, piece.ColorNone, b.Cell(piece.Point{X: -1, Y: 3}))
	assert.False(t, b.Empty(piece.Point{X: 8, Y: 0}))
}
