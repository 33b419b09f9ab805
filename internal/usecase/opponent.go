package usecase

import (
	"context"
	"time"
)

const DefaultThinkDelay = 2 * time.Second

// Opponent runs the scripted opponent's move after a fixed think delay.
// A scheduled move is dropped when it is cancelled before the delay elapses.
type Opponent struct {
	delay time.Duration
	move  func(ctx context.Context)

	task task
}

func NewOpponent(delay time.Duration, move func(ctx context.Context)) *Opponent {
	if delay <= 0 {
		delay = DefaultThinkDelay
	}

	return &Opponent{
		delay: delay,
		move:  move,
	}
}

// Schedule defers one move, replacing any move still pending.
func (that *Opponent) Schedule(ctx context.Context) {
	that.task.stop()
	that.task.start(ctx, func(ctx context.Context) {
		timer := time.NewTimer(that.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		that.move(ctx)
	})
}

func (that *Opponent) Cancel() {
	that.task.stop()
}

// Thinking reports whether a move is pending or in progress.
func (that *Opponent) Thinking() bool {
	return that.task.running()
}

func (that *Opponent) Wait() {
	that.task.wait()
}
