package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/bot"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

var ErrSessionClosed = fmt.Errorf("%w: session is closed", apperror.ErrIllegalTransition)

const (
	StatusTurn   = "turn"
	StatusWinner = "winner"
	StatusDraw   = "draw"
)

type Config struct {
	PollInterval time.Duration
	ThinkDelay   time.Duration
	AutoRefresh  bool
}

type gameService interface {
	CreateSolo(first entity.Player) (*entity.Game, error)
	CreateShared(ctx context.Context, name string, player entity.Player) (*entity.Game, error)
	Join(ctx context.Context, name string, player entity.Player) (*entity.Game, error)

	Play(ctx context.Context, game *entity.Game, cell entity.Cell) (*entity.Game, error)
	Pass(ctx context.Context, game *entity.Game) (*entity.Game, error)
	Refresh(ctx context.Context, game *entity.Game, strict bool) (*entity.Game, error)
}

// Status summarises a session for display.
type Status struct {
	Label       string        `json:"label"`
	Player      entity.Player `json:"player,omitempty"`
	LocalPlayer entity.Player `json:"local_player,omitempty"`
	Refreshing  bool          `json:"refreshing"`
	Thinking    bool          `json:"thinking"`
}

// Session is the live handle on one game. Rule-changing operations are serialized; reads never block.
// In solo mode a non-nil strategy drives the side opposite to Game.Player, a nil one leaves both sides to the caller.
type Session struct {
	logger   *slog.Logger
	games    gameService
	strategy bot.Strategy

	ops         chan struct{}
	feed        *feed
	autoRefresh atomic.Bool

	synchronizer *Synchronizer
	opponent     *Opponent

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func NewSession(logger *slog.Logger, games gameService, strategy bot.Strategy, conf Config) *Session {
	ctx, cancel := context.WithCancel(context.Background())

	session := &Session{
		logger:   logger.With("component", "session"),
		games:    games,
		strategy: strategy,
		ops:      make(chan struct{}, 1),
		feed:     newFeed(),
		ctx:      ctx,
		cancel:   cancel,
	}

	session.autoRefresh.Store(conf.AutoRefresh)
	session.synchronizer = NewSynchronizer(conf.PollInterval, session.poll, session.settled)
	session.opponent = NewOpponent(conf.ThinkDelay, session.opponentMove)

	return session
}

func (that *Session) NewSolo(ctx context.Context, first entity.Player) (*entity.Game, error) {
	return that.begin(ctx, func() (*entity.Game, error) {
		return that.games.CreateSolo(first)
	})
}

func (that *Session) NewShared(ctx context.Context, name string, player entity.Player) (*entity.Game, error) {
	return that.begin(ctx, func() (*entity.Game, error) {
		return that.games.CreateShared(ctx, name, player)
	})
}

func (that *Session) Join(ctx context.Context, name string, player entity.Player) (*entity.Game, error) {
	return that.begin(ctx, func() (*entity.Game, error) {
		return that.games.Join(ctx, name, player)
	})
}

// Play places a piece for the side to move and returns the new game with the cells it flipped.
func (that *Session) Play(ctx context.Context, cell entity.Cell) (*entity.Game, []entity.Cell, error) {
	if err := that.lock(ctx); err != nil {
		return nil, nil, err
	}
	defer that.unlock()

	game := that.feed.load()
	if err := that.confirmTurn(game); err != nil {
		return game, nil, err
	}

	next, err := that.games.Play(ctx, game, cell)
	if err != nil {
		return game, nil, err
	}

	that.advance(next)

	return next, reversi.Flipped(game.Board, next.Board), nil
}

func (that *Session) Pass(ctx context.Context) (*entity.Game, error) {
	if err := that.lock(ctx); err != nil {
		return nil, err
	}
	defer that.unlock()

	game := that.feed.load()
	if err := that.confirmTurn(game); err != nil {
		return game, err
	}

	next, err := that.games.Pass(ctx, game)
	if err != nil {
		return game, err
	}

	that.advance(next)

	return next, nil
}

// Refresh reloads a shared game on request. Unlike background polling, failures are returned.
func (that *Session) Refresh(ctx context.Context) (*entity.Game, error) {
	if err := that.lock(ctx); err != nil {
		return nil, err
	}
	defer that.unlock()

	game := that.feed.load()
	if game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	next, err := that.games.Refresh(ctx, game, true)
	if err != nil {
		return game, err
	}

	if next != game {
		that.advance(next)
	}

	return next, nil
}

// SetAutoRefresh turns background polling on or off.
func (that *Session) SetAutoRefresh(on bool) {
	that.autoRefresh.Store(on)

	if !on {
		that.synchronizer.Stop()
		return
	}

	if game := that.feed.load(); game != nil && awaitsRemote(game) {
		that.synchronizer.Start(that.ctx)
	}
}

func (that *Session) AutoRefresh() bool {
	return that.autoRefresh.Load()
}

// CanRefresh reports whether a manual refresh is useful: the remote side is to move and nobody polls.
func (that *Session) CanRefresh() bool {
	game := that.feed.load()
	return game != nil && awaitsRemote(game) && !that.autoRefresh.Load()
}

// Targets lists the cells the local side may play now.
func (that *Session) Targets() []entity.Cell {
	game := that.feed.load()
	if game == nil || !that.localTurn(game) {
		return nil
	}

	return reversi.LegalMoves(game.Board)
}

// MustPass reports whether the local side is to move and has no legal cell.
func (that *Session) MustPass() bool {
	game := that.feed.load()
	return game != nil && that.localTurn(game) && reversi.MustPass(game.Board)
}

func (that *Session) Status() Status {
	status := Status{
		Refreshing: that.synchronizer.Running(),
		Thinking:   that.opponent.Thinking(),
	}

	game := that.feed.load()
	if game == nil {
		return status
	}

	if game.IsShared() {
		status.LocalPlayer = game.Player
	}

	switch b := game.Board.(type) {
	case entity.Running:
		status.Label, status.Player = StatusTurn, b.Turn()
		return status
	case entity.AwaitingPass:
		status.Label, status.Player = StatusTurn, b.Turn()
		return status
	case entity.Won:
		status.Label, status.Player = StatusWinner, b.Winner()
		return status
	case entity.Drawn:
		status.Label = StatusDraw
		return status
	}
	panic(fmt.Sprintf("unknown board variant %T", game.Board))
}

// Game returns the current game, or nil before the first one is started.
func (that *Session) Game() *entity.Game {
	return that.feed.load()
}

// Watch streams the current game and every replacement until ctx ends or the session is closed.
// Only the latest game is buffered.
func (that *Session) Watch(ctx context.Context) <-chan *entity.Game {
	ch := that.feed.subscribe()

	go func() {
		select {
		case <-ctx.Done():
		case <-that.ctx.Done():
		}
		that.feed.unsubscribe(ch)
	}()

	return ch
}

// Close stops background work and ends every watch. Later operations fail with ErrSessionClosed.
func (that *Session) Close() {
	that.closeOnce.Do(func() {
		that.cancel()
		that.synchronizer.Stop()
		that.opponent.Cancel()

		that.synchronizer.Wait()
		that.opponent.Wait()

		that.feed.close()
	})
}

// begin replaces the current game with a freshly created one. A failed create leaves the session untouched.
func (that *Session) begin(ctx context.Context, create func() (*entity.Game, error)) (*entity.Game, error) {
	if err := that.lock(ctx); err != nil {
		return nil, err
	}
	defer that.unlock()

	game, err := create()
	if err != nil {
		return nil, err
	}

	that.opponent.Cancel()
	that.synchronizer.Stop()

	that.advance(game)

	return game, nil
}

// advance publishes game and starts whatever background work it calls for. Callers hold the lock.
func (that *Session) advance(game *entity.Game) {
	that.feed.publish(game)

	switch {
	case game.IsShared():
		if that.autoRefresh.Load() && awaitsRemote(game) {
			that.synchronizer.Start(that.ctx)
		}
	case that.botTurn(game):
		that.opponent.Schedule(that.ctx)
	}
}

func (that *Session) poll(ctx context.Context) {
	if err := that.lock(ctx); err != nil {
		return
	}
	defer that.unlock()

	if ctx.Err() != nil {
		return
	}

	game := that.feed.load()
	if game == nil || !game.IsShared() {
		return
	}

	next, err := that.games.Refresh(ctx, game, false)
	if err != nil {
		that.logger.Debug("poll failed", "name", game.Name, "error", err)
		return
	}

	if next != game {
		that.feed.publish(next)
	}
}

func (that *Session) settled() bool {
	game := that.feed.load()
	return game == nil || !awaitsRemote(game)
}

func (that *Session) opponentMove(ctx context.Context) {
	log := that.logger.With("method", "opponentMove")

	if err := that.lock(ctx); err != nil {
		return
	}
	defer that.unlock()

	game := that.feed.load()
	if ctx.Err() != nil || game == nil || !that.botTurn(game) {
		return
	}

	var (
		next *entity.Game
		err  error
	)

	if cell, ok := that.strategy.ChooseMove(game.Board); ok {
		next, err = that.games.Play(ctx, game, cell)
	} else {
		next, err = that.games.Pass(ctx, game)
	}

	if err != nil {
		log.Error("scripted opponent failed to move", "error", err)
		return
	}

	that.advance(next)
}

// confirmTurn rejects actions for a side the caller does not control.
func (that *Session) confirmTurn(game *entity.Game) error {
	if game == nil {
		return apperror.ErrNoActiveGame
	}

	if that.botTurn(game) {
		return apperror.ErrNotYourTurn
	}

	return nil
}

func (that *Session) localTurn(game *entity.Game) bool {
	if game.IsShared() || that.strategy != nil {
		return game.IsLocalTurn()
	}

	return !entity.IsFinished(game.Board)
}

func (that *Session) botTurn(game *entity.Game) bool {
	if game.IsShared() || that.strategy == nil {
		return false
	}

	turn, running := entity.Turn(game.Board)
	return running && turn != game.Player
}

// lock takes the operation slot, giving up when ctx ends or the session closes.
func (that *Session) lock(ctx context.Context) error {
	select {
	case that.ops <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	case <-that.ctx.Done():
		return ErrSessionClosed
	}

	if that.ctx.Err() != nil {
		that.unlock()
		return ErrSessionClosed
	}

	return nil
}

func (that *Session) unlock() {
	<-that.ops
}

func awaitsRemote(game *entity.Game) bool {
	return game.IsShared() && !entity.IsFinished(game.Board) && !game.IsLocalTurn()
}
