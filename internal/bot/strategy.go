package bot

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

var (
	ErrUnknownDifficulty      = errors.New("unknown difficulty")
	ErrStrategyNotImplemented = errors.New("strategy is not implemented")
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	// DifficultyHard is reserved for a look-ahead strategy.
	DifficultyHard Difficulty = "hard"
)

// Strategy chooses the scripted opponent's move. ok is false when the side to move has no legal cell.
type Strategy interface {
	ChooseMove(board entity.Board) (cell entity.Cell, ok bool)
}

type randomStrategy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (that *randomStrategy) ChooseMove(board entity.Board) (entity.Cell, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return PickRandomLegalMove(board, that.rng)
}

type greedyStrategy struct{}

func (greedyStrategy) ChooseMove(board entity.Board) (entity.Cell, bool) {
	return PickBestMove(board)
}

func NewStrategy(difficulty Difficulty, rng *rand.Rand) (Strategy, error) {
	switch difficulty {
	case DifficultyEasy:
		return &randomStrategy{rng: rng}, nil
	case DifficultyNormal:
		return greedyStrategy{}, nil
	case DifficultyHard:
		return nil, fmt.Errorf("%w: %s", ErrStrategyNotImplemented, difficulty)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
}
