package bot

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

// MoveValue scores a legal move as the opponent's count after the play minus the mover's count before it, minus one.
func MoveValue(board entity.Board, cell entity.Cell) (int, error) {
	turn, running := entity.Turn(board)
	if !running || !reversi.CanPlay(board, cell) {
		return 0, fmt.Errorf("%w: cannot evaluate cell %s", apperror.ErrInvalidMove, cell)
	}

	next, err := reversi.Play(board, cell)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate move: %w", err)
	}

	moverBefore := board.Moves().Count(turn)
	opponentAfter := next.Moves().Count(turn.Other())

	return opponentAfter - moverBefore - 1, nil
}

// PickRandomLegalMove draws uniformly from the legal moves using rng.
func PickRandomLegalMove(board entity.Board, rng *rand.Rand) (entity.Cell, bool) {
	legal := reversi.LegalMoves(board)
	if len(legal) == 0 {
		return entity.OffBoard, false
	}

	return legal[rng.IntN(len(legal))], true
}

// PickBestMove returns the legal move with the highest MoveValue; the first in row-major order wins ties.
func PickBestMove(board entity.Board) (entity.Cell, bool) {
	best, bestValue, found := entity.OffBoard, 0, false

	for _, cell := range reversi.LegalMoves(board) {
		value, err := MoveValue(board, cell)
		if err != nil {
			continue
		}

		if !found || value > bestValue {
			best, bestValue, found = cell, value, true
		}
	}

	return best, found
}
