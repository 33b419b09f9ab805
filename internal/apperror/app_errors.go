package apperror

import (
	"errors"
	"fmt"
)

// The two kinds every rule and session failure belongs to. Use errors.Is to classify.
var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrIllegalTransition = errors.New("illegal transition")
)

var (
	ErrCellOutOfBounds = fmt.Errorf("%w: cell is out of bounds", ErrInvalidMove)
	ErrCellOccupied    = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrCellNotPlayable = fmt.Errorf("%w: cell is not playable", ErrInvalidMove)
)

var (
	ErrGameOver           = fmt.Errorf("%w: game is over", ErrIllegalTransition)
	ErrLegalMoveAvailable = fmt.Errorf("%w: a legal move is still available", ErrIllegalTransition)
	ErrPassPending        = fmt.Errorf("%w: a pass is already pending", ErrIllegalTransition)
	ErrPassNotPending     = fmt.Errorf("%w: no pass is pending", ErrIllegalTransition)
	ErrGameNotFound       = fmt.Errorf("%w: game not found", ErrIllegalTransition)
	ErrGameAlreadyExists  = fmt.Errorf("%w: game already exists", ErrIllegalTransition)
	ErrNotShared          = fmt.Errorf("%w: game is not shared", ErrIllegalTransition)
	ErrInvalidGameName    = fmt.Errorf("%w: invalid game name", ErrIllegalTransition)
	ErrNotYourTurn        = fmt.Errorf("%w: it's not your turn", ErrIllegalTransition)
)

var ErrNoActiveGame = fmt.Errorf("%w: no active game", ErrIllegalTransition)
