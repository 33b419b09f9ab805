package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/reversi-backend/internal/bot"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager keeps the open sessions of this process, keyed by a generated id.
type Manager struct {
	logger   *slog.Logger
	games    gameService
	strategy bot.Strategy
	conf     Config

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager builds the registry. strategy drives the scripted opponent of solo games; nil means hot-seat play.
func NewManager(logger *slog.Logger, games gameService, strategy bot.Strategy, conf Config) *Manager {
	return &Manager{
		logger:   logger,
		games:    games,
		strategy: strategy,
		conf:     conf,
		sessions: make(map[string]*Session),
	}
}

// Open registers a new empty session.
func (that *Manager) Open() (string, *Session) {
	id := uuid.NewString()
	session := NewSession(that.logger.With("session_id", id), that.games, that.strategy, that.conf)

	that.mu.Lock()
	that.sessions[id] = session
	that.mu.Unlock()

	that.logger.Debug("session opened", "session_id", id)

	return id, session
}

func (that *Manager) Get(id string) (*Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return session, nil
}

func (that *Manager) Close(id string) error {
	that.mu.Lock()
	session, ok := that.sessions[id]
	delete(that.sessions, id)
	that.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	session.Close()
	that.logger.Debug("session closed", "session_id", id)

	return nil
}

// CloseAll closes every open session.
func (that *Manager) CloseAll() {
	that.mu.Lock()
	sessions := that.sessions
	that.sessions = make(map[string]*Session)
	that.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}

	that.logger.Info("all sessions closed", "count", len(sessions))
}

func (that *Manager) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions)
}
