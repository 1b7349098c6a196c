// Package engine runs a blockblast game: it owns the board, the hand and the
// score, and decides when the game is over.
package engine

// HandSize is the number of pieces dealt at once.
const HandSize = 3

// LineBonus is awarded for each cleared row and each cleared column.
const LineBonus = 8

// HighScoreStore persists the best score across sessions.
type HighScoreStore interface {
	// Load returns the stored high score. Callers treat an error as 0.
	Load() (int, error)

	// Save stores a new high score.
	Save(score int) error
}

// Phase is the state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome is the result of a placement attempt.
type Outcome int

const (
	Rejected Outcome = iota
	Accepted
)

func (o Outcome) String() string {
	if o == Accepted {
		return "accepted"
	}
	return "rejected"
}
