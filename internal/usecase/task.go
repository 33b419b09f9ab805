package usecase

import (
	"context"
	"sync"
)

// task runs at most one live background goroutine. A stopped run is detached at once,
// so a new run may start while the old one is still unwinding.
type task struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	runs   map[chan struct{}]struct{}
}

// start runs fn unless the current run is still alive. It reports whether fn was started.
func (that *task) start(parent context.Context, fn func(ctx context.Context)) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if isAlive(that.done) {
		return false
	}

	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	that.cancel, that.done = cancel, done

	if that.runs == nil {
		that.runs = make(map[chan struct{}]struct{})
	}
	that.runs[done] = struct{}{}

	go func() {
		defer that.forget(done)
		defer cancel()

		fn(ctx)
	}()

	return true
}

// stop cancels and detaches the current run without waiting for it. It is safe to call repeatedly.
func (that *task) stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.detach()
}

// settle reports whether the calling run should exit: it was stopped, or cond holds.
// cond is evaluated under the same lock as start, so a start is never lost to an exiting run.
func (that *task) settle(ctx context.Context, cond func() bool) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if ctx.Err() != nil {
		return true
	}

	if !cond() {
		return false
	}

	that.detach()

	return true
}

func (that *task) running() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return isAlive(that.done)
}

// wait blocks until every run started so far has returned.
func (that *task) wait() {
	that.mu.Lock()
	pending := make([]chan struct{}, 0, len(that.runs))
	for done := range that.runs {
		pending = append(pending, done)
	}
	that.mu.Unlock()

	for _, done := range pending {
		<-done
	}
}

func (that *task) detach() {
	if that.cancel != nil {
		that.cancel()
	}

	that.cancel, that.done = nil, nil
}

func (that *task) forget(done chan struct{}) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.runs, done)
	close(done)
}

func isAlive(done chan struct{}) bool {
	if done == nil {
		return false
	}

	select {
	case <-done:
		return false
	default:
		return true
	}
}
