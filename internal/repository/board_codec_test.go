package repository

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

// reachableBoards plays random games and keeps every board it passes through.
func reachableBoards(t *testing.T, games int) []entity.Board {
	t.Helper()

	rng := rand.New(rand.NewPCG(42, 1))
	boards := []entity.Board{}

	for i := 0; i < games; i++ {
		board := reversi.NewBoard(entity.PlayerFirst)
		if i%2 == 1 {
			board = reversi.NewBoard(entity.PlayerSecond)
		}
		boards = append(boards, board)

		for !entity.IsFinished(board) {
			var err error
			if legal := reversi.LegalMoves(board); len(legal) > 0 {
				board, err = reversi.Play(board, legal[rng.IntN(len(legal))])
			} else {
				board, err = reversi.Pass(board)
			}
			require.NoError(t, err)
			boards = append(boards, board)
		}
	}

	return boards
}

func TestBoardCodec_RoundTrip(t *testing.T) {
	// Given: boards from random games plus a pending pass and a draw
	stuck := entity.Moves{entity.NewCell(0, 0): entity.PlayerFirst, entity.NewCell(7, 7): entity.PlayerSecond}
	boards := append(reachableBoards(t, 10),
		entity.NewAwaitingPass(stuck, entity.PlayerSecond),
		entity.NewDrawn(stuck),
	)

	for _, board := range boards {
		// When: encoding to JSON and decoding back
		encoded, err := json.Marshal(encodeBoard(board))
		require.NoError(t, err)

		var record dbBoard
		require.NoError(t, json.Unmarshal(encoded, &record))

		decoded, err := decodeBoard(record)
		require.NoError(t, err)

		// Then: the board is unchanged
		require.Equal(t, board, decoded)
	}
}

func TestBoardCodec_Decode(t *testing.T) {
	t.Run("Encodes moves in row-major order", func(t *testing.T) {
		record := encodeBoard(reversi.NewBoard(entity.PlayerSecond))

		assert.Equal(t, dbBoard{
			State: stateRunning,
			Turn:  "second",
			Moves: []dbMove{
				{Row: 3, Col: 3, Player: "first"},
				{Row: 3, Col: 4, Player: "second"},
				{Row: 4, Col: 3, Player: "second"},
				{Row: 4, Col: 4, Player: "first"},
			},
		}, record)
	})

	t.Run("Rejects unknown state", func(t *testing.T) {
		_, err := decodeBoard(dbBoard{State: "paused"})

		require.ErrorIs(t, err, ErrCorruptBoard)
	})

	t.Run("Rejects unknown player", func(t *testing.T) {
		_, err := decodeBoard(dbBoard{
			State: stateRunning,
			Turn:  "first",
			Moves: []dbMove{{Row: 0, Col: 0, Player: "third"}},
		})

		require.ErrorIs(t, err, ErrCorruptBoard)
		require.ErrorIs(t, err, entity.ErrUnknownPlayer)
	})

	t.Run("Rejects cell out of bounds", func(t *testing.T) {
		_, err := decodeBoard(dbBoard{
			State: stateDrawn,
			Moves: []dbMove{{Row: 8, Col: 0, Player: "first"}},
		})

		require.ErrorIs(t, err, ErrCorruptBoard)
	})

	t.Run("Rejects duplicate cell", func(t *testing.T) {
		_, err := decodeBoard(dbBoard{
			State:  stateWon,
			Winner: "first",
			Moves: []dbMove{
				{Row: 1, Col: 1, Player: "first"},
				{Row: 1, Col: 1, Player: "second"},
			},
		})

		require.ErrorIs(t, err, ErrCorruptBoard)
	})

	t.Run("Rejects running board without turn", func(t *testing.T) {
		_, err := decodeBoard(dbBoard{State: stateAwaitingPass})

		require.ErrorIs(t, err, ErrCorruptBoard)
	})
}
