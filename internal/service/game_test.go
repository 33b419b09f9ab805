package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
	mockedService "github.com/rocketscienceinc/reversi-backend/mocks/service"
)

var errRedisDown = errors.New("redis down")

func newTestService(t *testing.T) (GameService, *mockedService.MockboardRepo) {
	t.Helper()

	repo := mockedService.NewMockboardRepo(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewGameService(logger, repo), repo
}

func sharedGame(board entity.Board, player entity.Player) *entity.Game {
	return &entity.Game{Name: "room", Player: player, Mode: entity.ModeShared, Board: board}
}

func TestGameService_CreateSolo(t *testing.T) {
	t.Run("Creates a solo game without storage", func(t *testing.T) {
		svc, _ := newTestService(t)

		game, err := svc.CreateSolo(entity.PlayerSecond)

		require.NoError(t, err)
		assert.Equal(t, &entity.Game{
			Player: entity.PlayerSecond,
			Mode:   entity.ModeSolo,
			Board:  reversi.NewBoard(entity.PlayerSecond),
		}, game)
	})

	t.Run("Rejects unknown player", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreateSolo("nobody")

		require.ErrorIs(t, err, apperror.ErrIllegalTransition)
	})
}

func TestGameService_CreateShared(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes the opening board under the name", func(t *testing.T) {
		// Given: a storage without the name
		svc, repo := newTestService(t)
		board := reversi.NewBoard(entity.PlayerFirst)

		repo.EXPECT().Exists(ctx, "room").Return(false, nil).Once()
		repo.EXPECT().Create(ctx, "room", board).Return(nil).Once()

		// When: creating a shared game
		game, err := svc.CreateShared(ctx, " room ", entity.PlayerFirst)

		// Then: the game is shared and bound to the creator
		require.NoError(t, err)
		assert.Equal(t, sharedGame(board, entity.PlayerFirst), game)
	})

	t.Run("Second create with the same name fails", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().Exists(ctx, "room").Return(true, nil).Once()

		game, err := svc.CreateShared(ctx, "room", entity.PlayerFirst)

		require.ErrorIs(t, err, apperror.ErrGameAlreadyExists)
		require.ErrorIs(t, err, apperror.ErrIllegalTransition)
		assert.Nil(t, game)
	})

	t.Run("Create race lost to another writer fails the same way", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().Exists(ctx, "room").Return(false, nil).Once()
		repo.EXPECT().Create(ctx, "room", mock.Anything).Return(apperror.ErrGameAlreadyExists).Once()

		_, err := svc.CreateShared(ctx, "room", entity.PlayerFirst)

		require.ErrorIs(t, err, apperror.ErrGameAlreadyExists)
	})

	t.Run("Storage failure is surfaced", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().Exists(ctx, "room").Return(false, errRedisDown).Once()

		_, err := svc.CreateShared(ctx, "room", entity.PlayerFirst)

		require.ErrorIs(t, err, errRedisDown)
	})

	t.Run("Rejects an empty name", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreateShared(ctx, "   ", entity.PlayerFirst)

		require.ErrorIs(t, err, apperror.ErrInvalidGameName)
	})
}

func TestGameService_Join(t *testing.T) {
	ctx := context.Background()

	t.Run("Reads the stored board and binds the player", func(t *testing.T) {
		svc, repo := newTestService(t)
		board := reversi.NewBoard(entity.PlayerFirst)

		repo.EXPECT().Read(ctx, "room").Return(board, nil).Once()

		game, err := svc.Join(ctx, "room", entity.PlayerSecond)

		require.NoError(t, err)
		assert.Equal(t, sharedGame(board, entity.PlayerSecond), game)
		assert.False(t, game.IsLocalTurn())
	})

	t.Run("Join on a name never created fails", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().Read(ctx, "ghost").Return(nil, apperror.ErrGameNotFound).Once()

		_, err := svc.Join(ctx, "ghost", entity.PlayerSecond)

		require.ErrorIs(t, err, apperror.ErrIllegalTransition)
	})
}

func TestGameService_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Solo play never touches storage", func(t *testing.T) {
		svc, _ := newTestService(t)
		game, err := svc.CreateSolo(entity.PlayerFirst)
		require.NoError(t, err)

		next, err := svc.Play(ctx, game, entity.NewCell(2, 4))

		require.NoError(t, err)
		assert.NotSame(t, game, next)
		assert.Equal(t, reversi.NewBoard(entity.PlayerFirst), game.Board)
	})

	t.Run("Shared play persists before returning", func(t *testing.T) {
		svc, repo := newTestService(t)
		game := sharedGame(reversi.NewBoard(entity.PlayerFirst), entity.PlayerFirst)
		expected, err := reversi.Play(game.Board, entity.NewCell(2, 4))
		require.NoError(t, err)

		repo.EXPECT().Write(ctx, "room", expected).Return(nil).Once()

		next, err := svc.Play(ctx, game, entity.NewCell(2, 4))

		require.NoError(t, err)
		assert.Equal(t, expected, next.Board)
	})

	t.Run("Invalid move is surfaced without persisting", func(t *testing.T) {
		svc, _ := newTestService(t)
		game := sharedGame(reversi.NewBoard(entity.PlayerFirst), entity.PlayerFirst)

		next, err := svc.Play(ctx, game, entity.NewCell(3, 3))

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Same(t, game, next)
	})

	t.Run("Remote side cannot move", func(t *testing.T) {
		svc, _ := newTestService(t)
		game := sharedGame(reversi.NewBoard(entity.PlayerFirst), entity.PlayerSecond)

		_, err := svc.Play(ctx, game, entity.NewCell(2, 4))

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Failed write keeps the old game", func(t *testing.T) {
		svc, repo := newTestService(t)
		game := sharedGame(reversi.NewBoard(entity.PlayerFirst), entity.PlayerFirst)

		repo.EXPECT().Write(ctx, "room", mock.Anything).Return(errRedisDown).Once()

		next, err := svc.Play(ctx, game, entity.NewCell(2, 4))

		require.ErrorIs(t, err, errRedisDown)
		assert.Same(t, game, next)
	})
}

func TestGameService_Pass(t *testing.T) {
	ctx := context.Background()
	stuck := entity.Moves{entity.NewCell(0, 0): entity.PlayerFirst, entity.NewCell(7, 7): entity.PlayerSecond}

	t.Run("Two stage pass in a shared game", func(t *testing.T) {
		svc, repo := newTestService(t)
		first := sharedGame(entity.NewRunning(stuck, entity.PlayerFirst), entity.PlayerFirst)

		repo.EXPECT().Write(ctx, "room", entity.NewAwaitingPass(stuck, entity.PlayerSecond)).Return(nil).Once()
		repo.EXPECT().Write(ctx, "room", entity.NewDrawn(stuck)).Return(nil).Once()

		// When: the first player passes
		passed, err := svc.Pass(ctx, first)
		require.NoError(t, err)

		// When: the second player, bound to the same board, passes too
		second := sharedGame(passed.Board, entity.PlayerSecond)
		finished, err := svc.Pass(ctx, second)
		require.NoError(t, err)

		// Then: the game is drawn
		assert.Equal(t, entity.NewDrawn(stuck), finished.Board)
	})

	t.Run("Pass with a legal move fails", func(t *testing.T) {
		svc, _ := newTestService(t)
		game, err := svc.CreateSolo(entity.PlayerFirst)
		require.NoError(t, err)

		_, err = svc.Pass(ctx, game)

		require.ErrorIs(t, err, apperror.ErrLegalMoveAvailable)
	})
}

func TestGameService_Refresh(t *testing.T) {
	ctx := context.Background()
	opening := reversi.NewBoard(entity.PlayerFirst)

	t.Run("Replaces the board when storage moved on", func(t *testing.T) {
		svc, repo := newTestService(t)
		game := sharedGame(opening, entity.PlayerSecond)
		moved, err := reversi.Play(opening, entity.NewCell(2, 4))
		require.NoError(t, err)

		repo.EXPECT().Read(ctx, "room").Return(moved, nil).Once()

		next, err := svc.Refresh(ctx, game, true)

		require.NoError(t, err)
		assert.Equal(t, moved, next.Board)
		assert.True(t, next.IsLocalTurn())
	})

	t.Run("Keeps the same game when nothing changed", func(t *testing.T) {
		svc, repo := newTestService(t)
		game := sharedGame(opening, entity.PlayerSecond)

		repo.EXPECT().Read(ctx, "room").Return(reversi.NewBoard(entity.PlayerFirst), nil).Once()

		next, err := svc.Refresh(ctx, game, true)

		require.NoError(t, err)
		assert.Same(t, game, next)
	})

	t.Run("Strict refresh propagates failures", func(t *testing.T) {
		svc, repo := newTestService(t)
		game := sharedGame(opening, entity.PlayerSecond)

		repo.EXPECT().Read(ctx, "room").Return(nil, errRedisDown).Once()

		next, err := svc.Refresh(ctx, game, true)

		require.ErrorIs(t, err, errRedisDown)
		assert.Same(t, game, next)
	})

	t.Run("Background refresh swallows failures", func(t *testing.T) {
		svc, repo := newTestService(t)
		game := sharedGame(opening, entity.PlayerSecond)

		repo.EXPECT().Read(ctx, "room").Return(nil, errRedisDown).Once()

		next, err := svc.Refresh(ctx, game, false)

		require.NoError(t, err)
		assert.Same(t, game, next)
	})

	t.Run("Strict refresh of a solo game fails", func(t *testing.T) {
		svc, _ := newTestService(t)
		game, err := svc.CreateSolo(entity.PlayerFirst)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, game, true)

		require.ErrorIs(t, err, apperror.ErrNotShared)
	})
}
