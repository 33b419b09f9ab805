package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/usecase"
	"github.com/rocketscienceinc/reversi-backend/transport/dto"
)

type sessionManager interface {
	Open() (string, *usecase.Session)
	Get(id string) (*usecase.Session, error)
	Close(id string) error
}

type soloRequest struct {
	First string `json:"first"`
}

type sharedRequest struct {
	Name   string `json:"name"`
	Player string `json:"player"`
}

type playRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type autoRefreshRequest struct {
	Enabled bool `json:"enabled"`
}

// SessionHandlers maps the session operations onto HTTP, one endpoint per operation.
type SessionHandlers struct {
	logger   *slog.Logger
	sessions sessionManager
}

func NewSessionHandlers(logger *slog.Logger, sessions sessionManager) *SessionHandlers {
	return &SessionHandlers{
		logger:   logger.With("component", "rest"),
		sessions: sessions,
	}
}

func (that *SessionHandlers) Routes(r chi.Router) {
	r.Post("/sessions", that.Open)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", that.Show)
		r.Delete("/", that.Close)

		r.Post("/solo", that.NewSolo)
		r.Post("/shared", that.NewShared)
		r.Post("/join", that.Join)

		r.Post("/play", that.Play)
		r.Post("/pass", that.Pass)
		r.Post("/refresh", that.Refresh)
		r.Put("/auto-refresh", that.SetAutoRefresh)
	})
}

func (that *SessionHandlers) Open(w http.ResponseWriter, _ *http.Request) {
	id, session := that.sessions.Open()
	writeJSON(w, http.StatusCreated, dto.NewSession(id, session, session.Game()))
}

func (that *SessionHandlers) Show(w http.ResponseWriter, r *http.Request) {
	id, session, ok := that.session(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, dto.NewSession(id, session, session.Game()))
}

func (that *SessionHandlers) Close(w http.ResponseWriter, r *http.Request) {
	if err := that.sessions.Close(chi.URLParam(r, "id")); err != nil {
		writeError(that.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *SessionHandlers) NewSolo(w http.ResponseWriter, r *http.Request) {
	id, session, ok := that.session(w, r)
	if !ok {
		return
	}

	var req soloRequest
	if err := decode(r, &req); err != nil {
		writeError(that.logger, w, err)
		return
	}

	first, err := entity.ParsePlayer(req.First)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	game, err := session.NewSolo(r.Context(), first)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewSession(id, session, game))
}

func (that *SessionHandlers) NewShared(w http.ResponseWriter, r *http.Request) {
	that.shared(w, r, (*usecase.Session).NewShared)
}

func (that *SessionHandlers) Join(w http.ResponseWriter, r *http.Request) {
	that.shared(w, r, (*usecase.Session).Join)
}

func (that *SessionHandlers) Play(w http.ResponseWriter, r *http.Request) {
	id, session, ok := that.session(w, r)
	if !ok {
		return
	}

	var req playRequest
	if err := decode(r, &req); err != nil {
		writeError(that.logger, w, err)
		return
	}

	if req.Row == nil || req.Col == nil {
		writeError(that.logger, w, errors.Join(ErrBadRequest, errors.New("row and col are required")))
		return
	}

	game, flipped, err := session.Play(r.Context(), entity.NewCell(*req.Row, *req.Col))
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	resp := dto.NewSession(id, session, game)
	resp.Flipped = dto.NewCells(flipped)

	writeJSON(w, http.StatusOK, resp)
}

func (that *SessionHandlers) Pass(w http.ResponseWriter, r *http.Request) {
	id, session, ok := that.session(w, r)
	if !ok {
		return
	}

	game, err := session.Pass(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewSession(id, session, game))
}

func (that *SessionHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	id, session, ok := that.session(w, r)
	if !ok {
		return
	}

	game, err := session.Refresh(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewSession(id, session, game))
}

func (that *SessionHandlers) SetAutoRefresh(w http.ResponseWriter, r *http.Request) {
	id, session, ok := that.session(w, r)
	if !ok {
		return
	}

	var req autoRefreshRequest
	if err := decode(r, &req); err != nil {
		writeError(that.logger, w, err)
		return
	}

	session.SetAutoRefresh(req.Enabled)

	writeJSON(w, http.StatusOK, dto.NewSession(id, session, session.Game()))
}

type sharedOp func(session *usecase.Session, ctx context.Context, name string, player entity.Player) (*entity.Game, error)

func (that *SessionHandlers) shared(w http.ResponseWriter, r *http.Request, op sharedOp) {
	id, session, ok := that.session(w, r)
	if !ok {
		return
	}

	var req sharedRequest
	if err := decode(r, &req); err != nil {
		writeError(that.logger, w, err)
		return
	}

	player, err := entity.ParsePlayer(req.Player)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	game, err := op(session, r.Context(), req.Name, player)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewSession(id, session, game))
}

// session resolves the {id} path parameter, writing a 404 when it is unknown.
func (that *SessionHandlers) session(w http.ResponseWriter, r *http.Request) (string, *usecase.Session, bool) {
	id := chi.URLParam(r, "id")

	session, err := that.sessions.Get(id)
	if err != nil {
		writeError(that.logger, w, err)
		return "", nil, false
	}

	return id, session, true
}
