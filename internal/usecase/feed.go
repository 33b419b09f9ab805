package usecase

import (
	"sync"
	"sync/atomic"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

// feed holds a session's current game and fans every replacement out to subscribers.
// Subscribers only ever see the latest game: a slow reader skips intermediate ones.
type feed struct {
	mu      sync.Mutex
	current atomic.Pointer[entity.Game]
	subs    map[chan *entity.Game]struct{}
	closed  bool
}

func newFeed() *feed {
	return &feed{subs: make(map[chan *entity.Game]struct{})}
}

func (that *feed) load() *entity.Game {
	return that.current.Load()
}

func (that *feed) publish(game *entity.Game) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.current.Store(game)

	for ch := range that.subs {
		offer(ch, game)
	}
}

// subscribe returns a channel primed with the current game, if any.
func (that *feed) subscribe() chan *entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	ch := make(chan *entity.Game, 1)
	if that.closed {
		close(ch)
		return ch
	}

	if game := that.current.Load(); game != nil {
		ch <- game
	}

	that.subs[ch] = struct{}{}

	return ch
}

func (that *feed) unsubscribe(ch chan *entity.Game) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.subs[ch]; ok {
		delete(that.subs, ch)
		close(ch)
	}
}

func (that *feed) close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true
	for ch := range that.subs {
		delete(that.subs, ch)
		close(ch)
	}
}

// offer replaces whatever is buffered in ch with game. The caller must be the only sender.
func offer(ch chan *entity.Game, game *entity.Game) {
	select {
	case <-ch:
	default:
	}

	ch <- game
}
