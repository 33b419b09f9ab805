package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

// testBoardRepository checks the storage contract every backend has to honour.
func testBoardRepository(ctx context.Context, t *testing.T, repo BoardRepository) {
	t.Helper()

	t.Run("Create then Read", func(t *testing.T) {
		// Given: a new board under a fresh name
		board := reversi.NewBoard(entity.PlayerFirst)

		exists, err := repo.Exists(ctx, "create-read")
		require.NoError(t, err)
		require.False(t, exists)

		// When: creating and reading it back
		require.NoError(t, repo.Create(ctx, "create-read", board))
		stored, err := repo.Read(ctx, "create-read")

		// Then: the stored board matches
		require.NoError(t, err)
		require.Equal(t, board, stored)

		exists, err = repo.Exists(ctx, "create-read")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Create fails on an existing name", func(t *testing.T) {
		board := reversi.NewBoard(entity.PlayerFirst)
		require.NoError(t, repo.Create(ctx, "taken", board))

		err := repo.Create(ctx, "taken", reversi.NewBoard(entity.PlayerSecond))

		require.ErrorIs(t, err, apperror.ErrGameAlreadyExists)
		require.ErrorIs(t, err, apperror.ErrIllegalTransition)

		stored, err := repo.Read(ctx, "taken")
		require.NoError(t, err)
		require.Equal(t, board, stored)
	})

	t.Run("Read fails on a missing name", func(t *testing.T) {
		_, err := repo.Read(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Write overwrites unconditionally", func(t *testing.T) {
		// Given: an existing game
		board := reversi.NewBoard(entity.PlayerFirst)
		require.NoError(t, repo.Create(ctx, "overwrite", board))

		// When: writing a later board twice
		next, err := reversi.Play(board, entity.NewCell(2, 4))
		require.NoError(t, err)
		require.NoError(t, repo.Write(ctx, "overwrite", next))
		require.NoError(t, repo.Write(ctx, "overwrite", next))

		// Then: the last write is read back
		stored, err := repo.Read(ctx, "overwrite")
		require.NoError(t, err)
		require.Equal(t, next, stored)
	})

	t.Run("Write creates a missing name", func(t *testing.T) {
		board := entity.NewWon(reversi.NewBoard(entity.PlayerFirst).Moves(), entity.PlayerSecond)

		require.NoError(t, repo.Write(ctx, "written", board))

		stored, err := repo.Read(ctx, "written")
		require.NoError(t, err)
		require.Equal(t, board, stored)
	})
}
