package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

var ErrInvalidPlayer = fmt.Errorf("%w: unknown player", apperror.ErrIllegalTransition)

// GameService runs the session operations. Every call returns a new *entity.Game and never mutates its argument.
type GameService interface {
	CreateSolo(first entity.Player) (*entity.Game, error)
	CreateShared(ctx context.Context, name string, player entity.Player) (*entity.Game, error)
	Join(ctx context.Context, name string, player entity.Player) (*entity.Game, error)

	Play(ctx context.Context, game *entity.Game, cell entity.Cell) (*entity.Game, error)
	Pass(ctx context.Context, game *entity.Game) (*entity.Game, error)
	Refresh(ctx context.Context, game *entity.Game, strict bool) (*entity.Game, error)
}

type boardRepo interface {
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name string, board entity.Board) error
	Read(ctx context.Context, name string) (entity.Board, error)
	Write(ctx context.Context, name string, board entity.Board) error
}

type gameService struct {
	logger    *slog.Logger
	boardRepo boardRepo
}

func NewGameService(logger *slog.Logger, boardRepo boardRepo) GameService {
	return &gameService{
		logger:    logger.With("component", "game_service"),
		boardRepo: boardRepo,
	}
}

func (that *gameService) CreateSolo(first entity.Player) (*entity.Game, error) {
	if !first.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlayer, first)
	}

	return &entity.Game{
		Player: first,
		Mode:   entity.ModeSolo,
		Board:  reversi.NewBoard(first),
	}, nil
}

// CreateShared stores the opening board under name; the creator moves first.
func (that *gameService) CreateShared(ctx context.Context, name string, player entity.Player) (*entity.Game, error) {
	name, err := validate(name, player)
	if err != nil {
		return nil, err
	}

	exists, err := that.boardRepo.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check game %s: %w", name, err)
	}

	if exists {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, name)
	}

	board := reversi.NewBoard(player)
	if err = that.boardRepo.Create(ctx, name, board); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("shared game created", "name", name, "player", player)

	return &entity.Game{
		Name:   name,
		Player: player,
		Mode:   entity.ModeShared,
		Board:  board,
	}, nil
}

func (that *gameService) Join(ctx context.Context, name string, player entity.Player) (*entity.Game, error) {
	name, err := validate(name, player)
	if err != nil {
		return nil, err
	}

	board, err := that.boardRepo.Read(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	that.logger.Info("shared game joined", "name", name, "player", player)

	return &entity.Game{
		Name:   name,
		Player: player,
		Mode:   entity.ModeShared,
		Board:  board,
	}, nil
}

func (that *gameService) Play(ctx context.Context, game *entity.Game, cell entity.Cell) (*entity.Game, error) {
	if err := confirmTurn(game); err != nil {
		return game, err
	}

	board, err := reversi.Play(game.Board, cell)
	if err != nil {
		return game, fmt.Errorf("failed to play %s: %w", cell, err)
	}

	return that.commit(ctx, game, board)
}

// Pass attempts a pass, or resolves the pending one.
func (that *gameService) Pass(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	if err := confirmTurn(game); err != nil {
		return game, err
	}

	board, err := reversi.Pass(game.Board)
	if err != nil {
		return game, fmt.Errorf("failed to pass: %w", err)
	}

	return that.commit(ctx, game, board)
}

// Refresh reloads a shared game's board. With strict unset every failure is logged and the game is returned as is.
func (that *gameService) Refresh(ctx context.Context, game *entity.Game, strict bool) (*entity.Game, error) {
	game, err := that.refresh(ctx, game)
	if err != nil && !strict {
		that.logger.Debug("refresh failed, keeping local board", "name", game.Name, "error", err)
		return game, nil
	}

	return game, err
}

func (that *gameService) refresh(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	if !game.IsShared() {
		return game, apperror.ErrNotShared
	}

	board, err := that.boardRepo.Read(ctx, game.Name)
	if err != nil {
		return game, fmt.Errorf("failed to refresh game: %w", err)
	}

	if entity.Equal(game.Board, board) {
		return game, nil
	}

	return game.WithBoard(board), nil
}

// commit persists a shared game's new board before handing the new game out.
func (that *gameService) commit(ctx context.Context, game *entity.Game, board entity.Board) (*entity.Game, error) {
	if game.IsShared() {
		if err := that.boardRepo.Write(ctx, game.Name, board); err != nil {
			return game, fmt.Errorf("failed to save game: %w", err)
		}
	}

	return game.WithBoard(board), nil
}

// confirmTurn - rejects moves by the remote side of a shared game.
func confirmTurn(game *entity.Game) error {
	if !game.IsShared() || entity.IsFinished(game.Board) {
		return nil
	}

	if !game.IsLocalTurn() {
		return apperror.ErrNotYourTurn
	}

	return nil
}

func validate(name string, player entity.Player) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is empty", apperror.ErrInvalidGameName)
	}

	if !player.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlayer, player)
	}

	return name, nil
}
