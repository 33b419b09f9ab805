package usecase

import (
	"context"
	"time"
)

const DefaultPollInterval = 2 * time.Second

// Synchronizer polls shared storage on a fixed interval while the local player waits for the opponent.
type Synchronizer struct {
	interval time.Duration

	poll    func(ctx context.Context)
	settled func() bool

	task task
}

// NewSynchronizer builds a loop calling poll at once and then every interval until settled reports true or the loop is stopped.
func NewSynchronizer(interval time.Duration, poll func(ctx context.Context), settled func() bool) *Synchronizer {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Synchronizer{
		interval: interval,
		poll:     poll,
		settled:  settled,
	}
}

// Start launches the loop. Starting an already running loop is a no-op and returns false.
func (that *Synchronizer) Start(ctx context.Context) bool {
	return that.task.start(ctx, that.loop)
}

// Stop cancels the loop at its next suspension point. It never blocks and may be called repeatedly.
func (that *Synchronizer) Stop() {
	that.task.stop()
}

func (that *Synchronizer) Running() bool {
	return that.task.running()
}

// Wait blocks until the loop has returned.
func (that *Synchronizer) Wait() {
	that.task.wait()
}

func (that *Synchronizer) loop(ctx context.Context) {
	timer := time.NewTimer(that.interval)
	defer timer.Stop()

	for {
		if that.task.settle(ctx, that.settled) {
			return
		}

		that.poll(ctx)
		timer.Reset(that.interval)

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}
}
