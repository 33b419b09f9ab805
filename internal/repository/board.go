package repository

import (
	"context"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

// BoardRepository stores boards under a game name.
// Create fails with apperror.ErrGameAlreadyExists, Read with apperror.ErrGameNotFound.
// Write overwrites unconditionally.
type BoardRepository interface {
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name string, board entity.Board) error
	Read(ctx context.Context, name string) (entity.Board, error)
	Write(ctx context.Context, name string, board entity.Board) error
}
