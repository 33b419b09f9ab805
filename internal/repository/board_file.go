package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

const boardFileExt = ".json"

// fileBoards keeps one JSON document per game in dir.
type fileBoards struct {
	dir string
}

func NewFileBoardRepository(dir string) (BoardRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create storage dir: %w", err)
	}

	return &fileBoards{dir: dir}, nil
}

func (that *fileBoards) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidGameName, name)
	}

	return filepath.Join(that.dir, name+boardFileExt), nil
}

func (that *fileBoards) Exists(_ context.Context, name string) (bool, error) {
	path, err := that.path(name)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to stat game: %w", err)
	}

	return true, nil
}

// Create links a fully written temp file into place, so the name never points at a partial document.
func (that *fileBoards) Create(_ context.Context, name string, board entity.Board) error {
	path, err := that.path(name)
	if err != nil {
		return err
	}

	tmpName, err := that.writeTemp(name, board)
	if err != nil {
		return err
	}
	defer os.Remove(tmpName)

	err = os.Link(tmpName, path)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, name)
	}

	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	return nil
}

func (that *fileBoards) Read(_ context.Context, name string) (entity.Board, error) {
	path, err := that.path(name)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, name)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read game: %w", err)
	}

	var record dbBoard
	if err = json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	return decodeBoard(record)
}

// Write replaces the file through a rename so readers never see a partial document.
func (that *fileBoards) Write(_ context.Context, name string, board entity.Board) error {
	path, err := that.path(name)
	if err != nil {
		return err
	}

	tmpName, err := that.writeTemp(name, board)
	if err != nil {
		return err
	}
	defer os.Remove(tmpName)

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace game: %w", err)
	}

	return nil
}

func (that *fileBoards) writeTemp(name string, board entity.Board) (string, error) {
	boardJSON, err := json.Marshal(encodeBoard(board))
	if err != nil {
		return "", fmt.Errorf("could not marshal board: %w", err)
	}

	tmp, err := os.CreateTemp(that.dir, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err = tmp.Write(boardJSON); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write game: %w", err)
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close game: %w", err)
	}

	return tmp.Name(), nil
}
