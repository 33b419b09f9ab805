package repository

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

const (
	stateRunning      = "running"
	stateAwaitingPass = "awaiting_pass"
	stateWon          = "won"
	stateDrawn        = "drawn"
)

var ErrCorruptBoard = errors.New("corrupt board record")

// dbBoard is the persisted form of a board, shared by every backend.
type dbBoard struct {
	State  string   `json:"state" bson:"state"`
	Turn   string   `json:"turn,omitempty" bson:"turn,omitempty"`
	Winner string   `json:"winner,omitempty" bson:"winner,omitempty"`
	Moves  []dbMove `json:"moves" bson:"moves"`
}

type dbMove struct {
	Row    int    `json:"row" bson:"row"`
	Col    int    `json:"col" bson:"col"`
	Player string `json:"player" bson:"player"`
}

func encodeBoard(board entity.Board) dbBoard {
	moves := make([]dbMove, 0, board.Len())
	for _, cell := range entity.Cells() {
		if owner, ok := board.Owner(cell); ok {
			moves = append(moves, dbMove{Row: cell.Row, Col: cell.Col, Player: string(owner)})
		}
	}

	record := dbBoard{Moves: moves}

	switch b := board.(type) {
	case entity.Running:
		record.State, record.Turn = stateRunning, string(b.Turn())
	case entity.AwaitingPass:
		record.State, record.Turn = stateAwaitingPass, string(b.Turn())
	case entity.Won:
		record.State, record.Winner = stateWon, string(b.Winner())
	case entity.Drawn:
		record.State = stateDrawn
	}

	return record
}

func decodeBoard(record dbBoard) (entity.Board, error) {
	if len(record.Moves) > entity.MaxMoves {
		return nil, fmt.Errorf("%w: %d moves", ErrCorruptBoard, len(record.Moves))
	}

	moves := make(entity.Moves, len(record.Moves))
	for _, move := range record.Moves {
		cell := entity.NewCell(move.Row, move.Col)
		if !cell.InBounds() {
			return nil, fmt.Errorf("%w: cell %s out of bounds", ErrCorruptBoard, cell)
		}

		if _, duplicate := moves[cell]; duplicate {
			return nil, fmt.Errorf("%w: duplicate cell %s", ErrCorruptBoard, cell)
		}

		player, err := entity.ParsePlayer(move.Player)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptBoard, err)
		}

		moves[cell] = player
	}

	switch record.State {
	case stateRunning, stateAwaitingPass:
		turn, err := entity.ParsePlayer(record.Turn)
		if err != nil {
			return nil, fmt.Errorf("%w: turn: %w", ErrCorruptBoard, err)
		}

		if record.State == stateRunning {
			return entity.NewRunning(moves, turn), nil
		}
		return entity.NewAwaitingPass(moves, turn), nil
	case stateWon:
		winner, err := entity.ParsePlayer(record.Winner)
		if err != nil {
			return nil, fmt.Errorf("%w: winner: %w", ErrCorruptBoard, err)
		}
		return entity.NewWon(moves, winner), nil
	case stateDrawn:
		return entity.NewDrawn(moves), nil
	default:
		return nil, fmt.Errorf("%w: unknown state %q", ErrCorruptBoard, record.State)
	}
}
