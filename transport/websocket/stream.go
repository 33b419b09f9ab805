package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/usecase"
	"github.com/rocketscienceinc/reversi-backend/transport/dto"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 512
)

type sessionFinder interface {
	Get(id string) (*usecase.Session, error)
}

// StreamHandler pushes every board change of one session to a websocket client.
// The stream is read-only: moves go through the REST endpoints.
type StreamHandler struct {
	logger   *slog.Logger
	sessions sessionFinder
	upgrader websocket.Upgrader
}

// NewStreamHandler accepts upgrades from allowedOrigins. An empty list keeps the same-origin check,
// "*" accepts any origin.
func NewStreamHandler(logger *slog.Logger, sessions sessionFinder, allowedOrigins []string) *StreamHandler {
	return &StreamHandler{
		logger:   logger.With("component", "websocket"),
		sessions: sessions,
		upgrader: websocket.Upgrader{
			CheckOrigin: checkOrigin(allowedOrigins),
		},
	}
}

func checkOrigin(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}

	origins := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		origins[origin] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		_, ok := origins[origin]
		return ok
	}
}

func (that *StreamHandler) Routes(r chi.Router) {
	r.Get("/sessions/{id}/ws", that.Stream)
}

func (that *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log := that.logger.With("method", "Stream", "session_id", id)

	session, err := that.sessions.Get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go readPump(conn, cancel)

	log.Info("stream opened")

	if err = that.writePump(ctx, conn, id, session); err != nil {
		log.Debug("stream closed", "error", err)
	}
}

// writePump forwards session updates until the client leaves or the session is closed.
func (that *StreamHandler) writePump(ctx context.Context, conn *websocket.Conn, id string, session *usecase.Session) error {
	updates := session.Watch(ctx)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case game, ok := <-updates:
			if !ok {
				return closeStream(conn)
			}

			if err := writeGame(conn, id, session, game); err != nil {
				return err
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

// readPump drains client frames so pongs and close frames are processed, and cancels on disconnect.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeGame(conn *websocket.Conn, id string, session *usecase.Session, game *entity.Game) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(dto.NewSession(id, session, game))
}

func closeStream(conn *websocket.Conn) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
}
