package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronizer(t *testing.T) {
	never := func() bool { return false }

	t.Run("Polls until settled", func(t *testing.T) {
		// Given: a loop that settles after three polls
		var polls atomic.Int32
		synchronizer := NewSynchronizer(time.Millisecond,
			func(context.Context) { polls.Add(1) },
			func() bool { return polls.Load() >= 3 },
		)

		// When: it runs to completion
		require.True(t, synchronizer.Start(context.Background()))
		synchronizer.Wait()

		// Then: it stopped by itself after the third poll
		assert.Equal(t, int32(3), polls.Load())
		assert.False(t, synchronizer.Running())
	})

	t.Run("Does not poll when already settled", func(t *testing.T) {
		var polls atomic.Int32
		synchronizer := NewSynchronizer(time.Millisecond,
			func(context.Context) { polls.Add(1) },
			func() bool { return true },
		)

		synchronizer.Start(context.Background())
		synchronizer.Wait()

		assert.Zero(t, polls.Load())
	})

	t.Run("Second start is a no-op", func(t *testing.T) {
		synchronizer := NewSynchronizer(time.Hour, func(context.Context) {}, never)

		require.True(t, synchronizer.Start(context.Background()))
		assert.False(t, synchronizer.Start(context.Background()))
		assert.True(t, synchronizer.Running())

		synchronizer.Stop()
		synchronizer.Wait()
	})

	t.Run("Polls at once, then waits the interval", func(t *testing.T) {
		var polls atomic.Int32
		synchronizer := NewSynchronizer(time.Hour, func(context.Context) { polls.Add(1) }, never)

		synchronizer.Start(context.Background())
		defer synchronizer.Wait()
		defer synchronizer.Stop()

		assert.Eventually(t, func() bool { return polls.Load() == 1 }, time.Second, time.Millisecond)
		assert.Never(t, func() bool { return polls.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
	})

	t.Run("Stop cancels a pending wait", func(t *testing.T) {
		// Given: a loop waiting out a long interval after its first poll
		var polls atomic.Int32
		synchronizer := NewSynchronizer(time.Hour, func(context.Context) { polls.Add(1) }, never)
		synchronizer.Start(context.Background())
		require.Eventually(t, func() bool { return polls.Load() == 1 }, time.Second, time.Millisecond)

		// When: it is stopped twice
		synchronizer.Stop()
		synchronizer.Stop()
		synchronizer.Wait()

		// Then: it returned without polling again
		assert.False(t, synchronizer.Running())
		assert.Equal(t, int32(1), polls.Load())
	})

	t.Run("Starts again after stop", func(t *testing.T) {
		synchronizer := NewSynchronizer(time.Hour, func(context.Context) {}, never)

		synchronizer.Start(context.Background())
		synchronizer.Stop()

		assert.True(t, synchronizer.Start(context.Background()))

		synchronizer.Stop()
		synchronizer.Wait()
	})

	t.Run("Parent cancellation ends the loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		synchronizer := NewSynchronizer(time.Hour, func(context.Context) {}, never)

		synchronizer.Start(ctx)
		cancel()
		synchronizer.Wait()

		assert.False(t, synchronizer.Running())
	})
}

func TestOpponent(t *testing.T) {
	t.Run("Moves after the delay", func(t *testing.T) {
		var moves atomic.Int32
		opponent := NewOpponent(time.Millisecond, func(context.Context) { moves.Add(1) })

		opponent.Schedule(context.Background())
		opponent.Wait()

		assert.Equal(t, int32(1), moves.Load())
		assert.False(t, opponent.Thinking())
	})

	t.Run("Cancelled move never happens", func(t *testing.T) {
		// Given: a move scheduled far in the future
		var moves atomic.Int32
		opponent := NewOpponent(time.Hour, func(context.Context) { moves.Add(1) })
		opponent.Schedule(context.Background())
		assert.True(t, opponent.Thinking())

		// When: it is cancelled
		opponent.Cancel()
		opponent.Wait()

		// Then: nothing moved
		assert.Zero(t, moves.Load())
		assert.False(t, opponent.Thinking())
	})

	t.Run("Rescheduling replaces the pending move", func(t *testing.T) {
		var moves atomic.Int32
		opponent := NewOpponent(50*time.Millisecond, func(context.Context) { moves.Add(1) })

		opponent.Schedule(context.Background())
		opponent.Schedule(context.Background())
		opponent.Wait()

		assert.Equal(t, int32(1), moves.Load())
	})
}
