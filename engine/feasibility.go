package engine

import (
	"blockblast/board"
	"blockblast/piece"
)

// Fits reports whether p can be placed at any anchor on b.
func Fits(p piece.Piece, b *board.Board) bool {
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			if b.CanPlace(p, piece.Point{X: x, Y: y}) {
				return true
			}
		}
	}
	return false
}

// AnyMoveAvailable reports whether some piece of hand fits somewhere on b.
func AnyMoveAvailable(hand []piece.Piece, b *board.Board) bool {
	for _, p := range hand {
		if Fits(p, b) {
			return true
		}
	}
	return false
}
