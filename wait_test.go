package waitfor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/waitfor"
)

func TestWait(t *testing.T) {
	t.Parallel()

	t.Run("completes no earlier than the requested delay", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		err := waitfor.Wait(context.Background(), 50*time.Millisecond)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("zero delay completes", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		err := waitfor.Wait(context.Background(), 0)
		require.NoError(t, err)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("negative delay fails validation before waiting", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		err := waitfor.Wait(context.Background(), -time.Second)
		require.ErrorIs(t, err, waitfor.ErrNegativeDuration)
		assert.True(t, waitfor.IsValidationError(err))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("cancelled context aborts the delay", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		err := waitfor.Wait(ctx, 5*time.Second)
		require.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("pre-cancelled context fails fast", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := waitfor.Wait(ctx, time.Hour)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("repeated calls are independent", func(t *testing.T) {
		t.Parallel()
		for range 3 {
			require.NoError(t, waitfor.Wait(context.Background(), 5*time.Millisecond))
		}
	})
}

func TestWaitRandom(t *testing.T) {
	t.Parallel()

	t.Run("completes no earlier than the minimum delay", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		err := waitfor.WaitRandom(context.Background(), 20*time.Millisecond, 60*time.Millisecond)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("equal bounds delay exactly that value", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		err := waitfor.WaitRandom(context.Background(), 30*time.Millisecond, 30*time.Millisecond)
		require.NoError(t, err)

		elapsed := time.Since(start)
		assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
		// Generous ceiling; the point is that no extra jitter was added.
		assert.Less(t, elapsed, 300*time.Millisecond)
	})

	t.Run("zero bounds complete immediately", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, waitfor.WaitRandom(context.Background(), 0, 0))
	})

	t.Run("negative minimum fails validation", func(t *testing.T) {
		t.Parallel()
		err := waitfor.WaitRandom(context.Background(), -time.Millisecond, time.Second)
		require.ErrorIs(t, err, waitfor.ErrNegativeDuration)
		assert.True(t, waitfor.IsValidationError(err))
	})

	t.Run("negative maximum fails validation", func(t *testing.T) {
		t.Parallel()
		err := waitfor.WaitRandom(context.Background(), time.Millisecond, -time.Second)
		require.ErrorIs(t, err, waitfor.ErrNegativeDuration)
	})

	t.Run("negativity is checked before ordering", func(t *testing.T) {
		t.Parallel()
		// min > max here as well, but the negative bound must win.
		err := waitfor.WaitRandom(context.Background(), time.Second, -time.Millisecond)
		require.ErrorIs(t, err, waitfor.ErrNegativeDuration)
		assert.NotErrorIs(t, err, waitfor.ErrInvalidRange)
	})

	t.Run("inverted bounds fail validation", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		err := waitfor.WaitRandom(context.Background(), time.Second, 100*time.Millisecond)
		require.ErrorIs(t, err, waitfor.ErrInvalidRange)
		assert.True(t, waitfor.IsValidationError(err))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("cancelled context aborts the delay", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		err := waitfor.WaitRandom(ctx, 5*time.Second, 10*time.Second)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("each call draws an independent delay", func(t *testing.T) {
		t.Parallel()
		for range 3 {
			start := time.Now()
			require.NoError(t, waitfor.WaitRandom(context.Background(), 0, 20*time.Millisecond))
			assert.Less(t, time.Since(start), 300*time.Millisecond)
		}
	})
}
