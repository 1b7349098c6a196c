package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"blockblast/board"
	"blockblast/piece"
	"blockblast/types"
)

// Session is one game: board, hand, score and phase. It is not safe for
// concurrent use; the host must serialise calls.
type Session struct {
	board     *board.Board
	hand      []piece.Piece
	gen       *piece.Generator
	store     HighScoreStore
	score     int
	highScore int
	phase     Phase

	lastMove  piece.Point
	lastRows  int
	lastCols  int
	newRecord bool

	scoreCallback    func(score int)
	gameOverCallback func(score, highScore int, newRecord bool)
}

// NewSession starts a game dealing from gen. The high score is loaded from
// store once; a nil store or a load error counts as 0.
func NewSession(gen *piece.Generator, store HighScoreStore) *Session {
	s := &Session{
		board: board.New(),
		gen:   gen,
		store: store,
	}
	if store != nil {
		if hs, err := store.Load(); err == nil && hs > 0 {
			s.highScore = hs
		}
	}
	s.Restart()
	return s
}

// OnScore registers a callback run after every score change.
func (s *Session) OnScore(f func(score int)) {
	s.scoreCallback = f
}

// OnGameOver registers a callback run when the session ends.
func (s *Session) OnGameOver(f func(score, highScore int, newRecord bool)) {
	s.gameOverCallback = f
}

// Restart clears the board, zeroes the score and deals a new hand.
func (s *Session) Restart() {
	s.board.Reset()
	s.score = 0
	s.hand = s.gen.Hand(HandSize)
	s.phase = PhasePlaying
	s.lastMove = piece.Point{X: -1, Y: -1}
	s.lastRows, s.lastCols = 0, 0
	s.newRecord = false
	if s.scoreCallback != nil {
		s.scoreCallback(s.score)
	}
}

// CanPlace reports whether hand[index] fits at anchor without changing anything.
// It returns false for an index outside the hand.
func (s *Session) CanPlace(index int, anchor piece.Point) bool {
	if index < 0 || index >= len(s.hand) {
		return false
	}
	return s.board.CanPlace(s.hand[index], anchor)
}

// AttemptPlacement places hand[index] with its anchor at anchor.
//
// A piece that does not fit is Rejected and nothing changes. An accepted
// piece is scored, completed lines are cleared and scored, the piece leaves
// the hand, an empty hand is refilled, and the session ends when nothing in
// the hand fits anymore. The returned error is only set when saving a new
// high score failed; the move itself still happened.
//
// Calling it after the game is over or with an index outside the hand panics.
func (s *Session) AttemptPlacement(index int, anchor piece.Point) (Outcome, error) {
	if s.phase == PhaseGameOver {
		panic("engine: placement attempted after game over")
	}
	if index < 0 || index >= len(s.hand) {
		panic(fmt.Sprintf("engine: hand index %d out of range [0,%d)", index, len(s.hand)))
	}

	p := s.hand[index]
	if !s.board.CanPlace(p, anchor) {
		return Rejected, nil
	}

	s.board.Place(p, anchor)
	s.score += p.Shape.Len()

	s.lastRows, s.lastCols = s.board.ClearCompletedLines()
	s.score += (s.lastRows + s.lastCols) * LineBonus
	s.lastMove = anchor

	s.hand = slices.Delete(s.hand, index, index+1)
	if len(s.hand) == 0 {
		s.hand = s.gen.Hand(HandSize)
	}

	if s.scoreCallback != nil {
		s.scoreCallback(s.score)
	}

	if AnyMoveAvailable(s.hand, s.board) {
		return Accepted, nil
	}

	return Accepted, s.finish()
}

func (s *Session) finish() error {
	s.phase = PhaseGameOver

	var err error
	if s.score > s.highScore {
		s.highScore = s.score
		s.newRecord = true
		if s.store != nil {
			if serr := s.store.Save(s.score); serr != nil {
				err = fmt.Errorf("save high score: %w", serr)
			}
		}
	}

	if s.gameOverCallback != nil {
		s.gameOverCallback(s.score, s.highScore, s.newRecord)
	}
	return err
}

// Grid returns a copy of the board's cells.
func (s *Session) Grid() board.Grid {
	return s.board.Grid()
}

// Hand returns a copy of the pieces still available.
func (s *Session) Hand() []piece.Piece {
	return slices.Clone(s.hand)
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score known to the session, including this game.
func (s *Session) HighScore() int {
	return s.highScore
}

// Phase returns whether the game is running or over.
func (s *Session) Phase() Phase {
	return s.phase
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.phase == PhaseGameOver
}

// LastClear returns the rows and columns cleared by the last accepted move.
func (s *Session) LastClear() (rows, cols int) {
	return s.lastRows, s.lastCols
}

// State returns a snapshot for renderers.
func (s *Session) State() *types.GameState {
	st := types.NewGameState()
	st.Grid = s.board.Grid()
	st.Hand = s.Hand()
	st.Playable = make([]bool, len(s.hand))
	for i, p := range s.hand {
		st.Playable[i] = Fits(p, s.board)
	}
	st.Score = s.score
	st.HighScore = s.highScore
	st.NewRecord = s.newRecord
	st.Phase = s.phase.String()
	st.LastMove.X, st.LastMove.Y = s.lastMove.X, s.lastMove.Y
	st.LastClear.Rows, st.LastClear.Cols = s.lastRows, s.lastCols
	return st
}
