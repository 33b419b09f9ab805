package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

type mongoGame struct {
	Name  string  `bson:"_id"`
	Board dbBoard `bson:"board"`
}

type mongoBoards struct {
	collection *mongo.Collection
}

func NewMongoBoardRepository(collection *mongo.Collection) BoardRepository {
	return &mongoBoards{
		collection: collection,
	}
}

func (that *mongoBoards) Exists(ctx context.Context, name string) (bool, error) {
	count, err := that.collection.CountDocuments(ctx, bson.M{"_id": name}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check game: %w", err)
	}

	return count > 0, nil
}

func (that *mongoBoards) Create(ctx context.Context, name string, board entity.Board) error {
	_, err := that.collection.InsertOne(ctx, mongoGame{Name: name, Board: encodeBoard(board)})
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, name)
	}

	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	return nil
}

func (that *mongoBoards) Read(ctx context.Context, name string) (entity.Board, error) {
	var game mongoGame

	err := that.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&game)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, name)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to find game: %w", err)
	}

	return decodeBoard(game.Board)
}

func (that *mongoBoards) Write(ctx context.Context, name string, board entity.Board) error {
	_, err := that.collection.ReplaceOne(ctx,
		bson.M{"_id": name},
		mongoGame{Name: name, Board: encodeBoard(board)},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to replace game: %w", err)
	}

	return nil
}
