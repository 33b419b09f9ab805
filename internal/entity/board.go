package entity

import (
	"fmt"
	"reflect"
)

// Moves maps every occupied cell to its owner. Values handed out by a Board are copies.
type Moves map[Cell]Player

func (that Moves) Clone() Moves {
	clone := make(Moves, len(that))
	for cell, player := range that {
		clone[cell] = player
	}
	return clone
}

func (that Moves) Count(player Player) int {
	count := 0
	for _, owner := range that {
		if owner == player {
			count++
		}
	}
	return count
}

// Board is a closed set of variants: Running, AwaitingPass, Won and Drawn.
// Consumers switch over all four; there is no fifth.
type Board interface {
	Moves() Moves
	Len() int
	Owner(cell Cell) (Player, bool)

	board()
}

type moveSet struct {
	moves Moves
}

func (that moveSet) Moves() Moves {
	return that.moves.Clone()
}

func (that moveSet) Len() int {
	return len(that.moves)
}

func (that moveSet) Owner(cell Cell) (Player, bool) {
	player, ok := that.moves[cell]
	return player, ok
}

func (moveSet) board() {}

// Running is a game in progress; Turn must move next.
type Running struct {
	moveSet
	turn Player
}

// AwaitingPass is a running game whose previous side just passed.
type AwaitingPass struct {
	moveSet
	turn Player
}

type Won struct {
	moveSet
	winner Player
}

type Drawn struct {
	moveSet
}

func NewRunning(moves Moves, turn Player) Running {
	return Running{moveSet: moveSet{moves: moves.Clone()}, turn: turn}
}

func NewAwaitingPass(moves Moves, turn Player) AwaitingPass {
	return AwaitingPass{moveSet: moveSet{moves: moves.Clone()}, turn: turn}
}

func NewWon(moves Moves, winner Player) Won {
	return Won{moveSet: moveSet{moves: moves.Clone()}, winner: winner}
}

func NewDrawn(moves Moves) Drawn {
	return Drawn{moveSet: moveSet{moves: moves.Clone()}}
}

func (that Running) Turn() Player      { return that.turn }
func (that AwaitingPass) Turn() Player { return that.turn }
func (that Won) Winner() Player        { return that.winner }

// Turn returns the side to move, or false for a finished board.
func Turn(board Board) (Player, bool) {
	switch b := board.(type) {
	case Running:
		return b.turn, true
	case AwaitingPass:
		return b.turn, true
	case Won:
		return "", false
	case Drawn:
		return "", false
	}
	panic(fmt.Sprintf("unknown board variant %T", board))
}

func IsFinished(board Board) bool {
	_, running := Turn(board)
	return !running
}

// Equal reports whether two boards are the same variant with the same moves and turn or winner.
func Equal(a, b Board) bool {
	return reflect.DeepEqual(a, b)
}
