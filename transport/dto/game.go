package dto

import (
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
	"github.com/rocketscienceinc/reversi-backend/internal/usecase"
)

const (
	StateRunning      = "running"
	StateAwaitingPass = "awaiting_pass"
	StateWon          = "won"
	StateDrawn        = "drawn"
)

type Cell struct {
	Row    int           `json:"row"`
	Col    int           `json:"col"`
	Player entity.Player `json:"player,omitempty"`
}

type Score struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

type Game struct {
	Name   string        `json:"name,omitempty"`
	Mode   entity.Mode   `json:"mode"`
	Player entity.Player `json:"player"`
	State  string        `json:"state"`
	Turn   entity.Player `json:"turn,omitempty"`
	Winner entity.Player `json:"winner,omitempty"`
	Cells  []Cell        `json:"cells"`
	Score  Score         `json:"score"`
}

// Session is what a client needs to draw one session.
type Session struct {
	ID          string         `json:"session_id"`
	Game        *Game          `json:"game,omitempty"`
	Status      usecase.Status `json:"status"`
	Targets     []Cell         `json:"targets"`
	Flipped     []Cell         `json:"flipped,omitempty"`
	MustPass    bool           `json:"must_pass"`
	CanRefresh  bool           `json:"can_refresh"`
	AutoRefresh bool           `json:"auto_refresh"`
}

func NewGame(game *entity.Game) *Game {
	if game == nil {
		return nil
	}

	first, second := reversi.Score(game.Board)
	view := &Game{
		Name:   game.Name,
		Mode:   game.Mode,
		Player: game.Player,
		Cells:  make([]Cell, 0, game.Board.Len()),
		Score:  Score{First: first, Second: second},
	}

	for _, cell := range entity.Cells() {
		if owner, ok := game.Board.Owner(cell); ok {
			view.Cells = append(view.Cells, Cell{Row: cell.Row, Col: cell.Col, Player: owner})
		}
	}

	switch b := game.Board.(type) {
	case entity.Running:
		view.State, view.Turn = StateRunning, b.Turn()
		return view
	case entity.AwaitingPass:
		view.State, view.Turn = StateAwaitingPass, b.Turn()
		return view
	case entity.Won:
		view.State, view.Winner = StateWon, b.Winner()
		return view
	case entity.Drawn:
		view.State = StateDrawn
		return view
	}
	panic(fmt.Sprintf("unknown board variant %T", game.Board))
}

// NewSession renders session around game, which may be newer or older than session.Game().
func NewSession(id string, session *usecase.Session, game *entity.Game) *Session {
	return &Session{
		ID:          id,
		Game:        NewGame(game),
		Status:      session.Status(),
		Targets:     NewCells(session.Targets()),
		MustPass:    session.MustPass(),
		CanRefresh:  session.CanRefresh(),
		AutoRefresh: session.AutoRefresh(),
	}
}

func NewCells(cells []entity.Cell) []Cell {
	views := make([]Cell, 0, len(cells))
	for _, cell := range cells {
		views = append(views, Cell{Row: cell.Row, Col: cell.Col})
	}

	return views
}
