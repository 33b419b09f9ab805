package entity

type Mode string

const (
	ModeSolo   Mode = "solo"
	ModeShared Mode = "shared"
)

// Game is one session's view of a board. A transition produces a new Game; published values are never mutated.
type Game struct {
	Name   string
	Player Player
	Mode   Mode
	Board  Board
}

func (that *Game) IsShared() bool {
	return that.Mode == ModeShared
}

// IsLocalTurn reports whether the locally controlled player is the side to move.
func (that *Game) IsLocalTurn() bool {
	turn, running := Turn(that.Board)
	return running && turn == that.Player
}

// WithBoard returns a copy of the game holding board.
func (that *Game) WithBoard(board Board) *Game {
	next := *that
	next.Board = board
	return &next
}
