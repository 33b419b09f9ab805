package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

type redisBoards struct {
	client *redis.Client
}

func NewRedisBoardRepository(client *redis.Client) BoardRepository {
	return &redisBoards{
		client: client,
	}
}

func gameKey(name string) string {
	return "game:" + name
}

func (that *redisBoards) Exists(ctx context.Context, name string) (bool, error) {
	count, err := that.client.Exists(ctx, gameKey(name)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check game: %w", err)
	}

	return count > 0, nil
}

func (that *redisBoards) Create(ctx context.Context, name string, board entity.Board) error {
	boardJSON, err := json.Marshal(encodeBoard(board))
	if err != nil {
		return fmt.Errorf("could not marshal board: %w", err)
	}

	created, err := that.client.SetNX(ctx, gameKey(name), boardJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if !created {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, name)
	}

	return nil
}

func (that *redisBoards) Read(ctx context.Context, name string) (entity.Board, error) {
	response, err := that.client.Get(ctx, gameKey(name)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, name)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var record dbBoard
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	return decodeBoard(record)
}

func (that *redisBoards) Write(ctx context.Context, name string, board entity.Board) error {
	boardJSON, err := json.Marshal(encodeBoard(board))
	if err != nil {
		return fmt.Errorf("could not marshal board: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(name), boardJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}
