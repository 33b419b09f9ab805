package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

// NewBoard returns the standard opening with first to move.
func NewBoard(first entity.Player) entity.Board {
	mid := entity.BoardDim / 2
	moves := entity.Moves{
		entity.NewCell(mid, mid):     entity.PlayerFirst,
		entity.NewCell(mid-1, mid-1): entity.PlayerFirst,
		entity.NewCell(mid-1, mid):   entity.PlayerSecond,
		entity.NewCell(mid, mid-1):   entity.PlayerSecond,
	}

	return entity.NewRunning(moves, first)
}

// CanPlay reports whether the side to move may place a piece at cell. Finished boards have no playable cell.
func CanPlay(board entity.Board, cell entity.Cell) bool {
	turn, running := entity.Turn(board)
	if !running {
		return false
	}

	return canPlay(board, turn, cell)
}

func canPlay(board entity.Board, turn entity.Player, cell entity.Cell) bool {
	if !cell.InBounds() {
		return false
	}

	if _, occupied := board.Owner(cell); occupied {
		return false
	}

	for _, dir := range entity.Directions {
		if len(captureLine(board, turn, cell, dir)) > 0 {
			return true
		}
	}

	return false
}

// captureLine returns the opponent run starting next to cell in dir, if it ends in a piece of turn.
func captureLine(board entity.Board, turn entity.Player, cell entity.Cell, dir entity.Direction) []entity.Cell {
	var line []entity.Cell

	for next := cell.Plus(dir); next != entity.OffBoard; next = next.Plus(dir) {
		owner, occupied := board.Owner(next)
		switch {
		case !occupied:
			return nil
		case owner == turn:
			return line
		default:
			line = append(line, next)
		}
	}

	return nil
}

// Play places a piece for the side to move and flips every captured line.
func Play(board entity.Board, cell entity.Cell) (entity.Board, error) {
	turn, running := entity.Turn(board)
	if !running {
		return board, apperror.ErrGameOver
	}

	if err := validateMove(board, turn, cell); err != nil {
		return board, err
	}

	moves := board.Moves()
	moves[cell] = turn
	for _, dir := range entity.Directions {
		for _, captured := range captureLine(board, turn, cell, dir) {
			moves[captured] = turn
		}
	}

	if len(moves) == entity.MaxMoves {
		return result(moves), nil
	}

	return entity.NewRunning(moves, turn.Other()), nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, turn entity.Player, cell entity.Cell) error {
	if !cell.InBounds() {
		return fmt.Errorf("%w: cell %s", apperror.ErrCellOutOfBounds, cell)
	}

	if _, occupied := board.Owner(cell); occupied {
		return fmt.Errorf("%w: cell %s", apperror.ErrCellOccupied, cell)
	}

	if !canPlay(board, turn, cell) {
		return fmt.Errorf("%w: cell %s", apperror.ErrCellNotPlayable, cell)
	}

	return nil
}

// LegalMoves returns the playable cells for the side to move in row-major order.
func LegalMoves(board entity.Board) []entity.Cell {
	var legal []entity.Cell
	for _, cell := range entity.Cells() {
		if CanPlay(board, cell) {
			legal = append(legal, cell)
		}
	}
	return legal
}

// FirstLegalMove returns the first playable cell in row-major order.
func FirstLegalMove(board entity.Board) (entity.Cell, bool) {
	for _, cell := range entity.Cells() {
		if CanPlay(board, cell) {
			return cell, true
		}
	}
	return entity.OffBoard, false
}

func LegalMovesExist(board entity.Board) bool {
	_, ok := FirstLegalMove(board)
	return ok
}

// AttemptPass hands the turn to the opponent when the side to move has no legal move.
func AttemptPass(board entity.Board) (entity.Board, error) {
	switch b := board.(type) {
	case entity.Running:
		if cell, ok := FirstLegalMove(b); ok {
			return board, fmt.Errorf("%w: cell %s", apperror.ErrLegalMoveAvailable, cell)
		}
		return entity.NewAwaitingPass(b.Moves(), b.Turn().Other()), nil
	case entity.AwaitingPass:
		return board, apperror.ErrPassPending
	case entity.Won, entity.Drawn:
		return board, apperror.ErrGameOver
	}
	panic(fmt.Sprintf("unknown board variant %T", board))
}

// ResolvePass ends the game after the second consecutive pass.
func ResolvePass(board entity.Board) (entity.Board, error) {
	switch b := board.(type) {
	case entity.AwaitingPass:
		if cell, ok := FirstLegalMove(b); ok {
			return board, fmt.Errorf("%w: cell %s", apperror.ErrLegalMoveAvailable, cell)
		}
		return result(b.Moves()), nil
	case entity.Running:
		return board, apperror.ErrPassNotPending
	case entity.Won, entity.Drawn:
		return board, apperror.ErrGameOver
	}
	panic(fmt.Sprintf("unknown board variant %T", board))
}

// Pass runs whichever pass stage the board is in.
func Pass(board entity.Board) (entity.Board, error) {
	switch board.(type) {
	case entity.AwaitingPass:
		return ResolvePass(board)
	case entity.Running, entity.Won, entity.Drawn:
		return AttemptPass(board)
	}
	panic(fmt.Sprintf("unknown board variant %T", board))
}

// MustPass reports whether the side to move is stuck on a running board.
func MustPass(board entity.Board) bool {
	return !entity.IsFinished(board) && !LegalMovesExist(board)
}

// Score returns the piece counts of the first and the second player.
func Score(board entity.Board) (int, int) {
	moves := board.Moves()
	return moves.Count(entity.PlayerFirst), moves.Count(entity.PlayerSecond)
}

// Flipped returns the cells of prev whose owner differs in next, in row-major order.
func Flipped(prev, next entity.Board) []entity.Cell {
	var flipped []entity.Cell
	for _, cell := range entity.Cells() {
		before, wasOccupied := prev.Owner(cell)
		after, _ := next.Owner(cell)
		if wasOccupied && before != after {
			flipped = append(flipped, cell)
		}
	}
	return flipped
}

func result(moves entity.Moves) entity.Board {
	first, second := moves.Count(entity.PlayerFirst), moves.Count(entity.PlayerSecond)

	switch {
	case first > second:
		return entity.NewWon(moves, entity.PlayerFirst)
	case second > first:
		return entity.NewWon(moves, entity.PlayerSecond)
	default:
		return entity.NewDrawn(moves)
	}
}
