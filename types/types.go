// Package types contains shared data structures for blockblast.
package types

import (
	"blockblast/board"
	"blockblast/piece"
)

// GameState is a snapshot of a session handed to renderers.
// Grid is indexed as Grid[y][x]; piece.ColorNone marks an empty cell.
type GameState struct {
	Grid      board.Grid    `json:"grid"`
	Hand      []piece.Piece `json:"hand"`
	Playable  []bool        `json:"playable"` // Playable[i] is true when Hand[i] fits somewhere
	Score     int           `json:"score"`
	HighScore int           `json:"high_score"`
	NewRecord bool          `json:"new_record"`
	Phase     string        `json:"phase"` // "playing", "finished"
	LastMove  struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"last_move"`
	LastClear struct {
		Rows int `json:"rows"`
		Cols int `json:"cols"`
	} `json:"last_clear"`
}

// Finished returns true if the game is over.
func (g *GameState) Finished() bool {
	return g.Phase == "finished"
}

// Height returns the board height.
func (g *GameState) Height() int {
	return len(g.Grid)
}

// Width returns the board width.
func (g *GameState) Width() int {
	return len(g.Grid[0])
}

// Cleared returns the total number of lines cleared by the last move.
func (g *GameState) Cleared() int {
	return g.LastClear.Rows + g.LastClear.Cols
}

// BoardPos represents a position on the board.
type BoardPos struct {
	X int
	Y int
}

// Point converts the position to a piece.Point.
func (p BoardPos) Point() piece.Point {
	return piece.Point{X: p.X, Y: p.Y}
}

// NewGameState creates an empty playing state with no last move.
func NewGameState() *GameState {
	g := &GameState{Phase: "playing"}
	g.LastMove.X, g.LastMove.Y = -1, -1
	return g
}
