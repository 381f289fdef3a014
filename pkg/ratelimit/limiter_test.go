package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, capacity int, window time.Duration) (*Limiter, *time.Time) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	limiter := NewLimiter(rdb, capacity, window)
	current := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }
	return limiter, &current
}

func TestAllow_SixthUploadInWindowIsRejected(t *testing.T) {
	limiter, current := newTestLimiter(t, 5, 60*time.Second)
	ctx := context.Background()

	// Five uploads spread over ten seconds all pass.
	for i := 0; i < 5; i++ {
		decision := limiter.Allow(ctx, 42)
		require.True(t, decision.Allowed, "upload %d", i+1)
		*current = current.Add(2 * time.Second)
	}

	// The sixth is refused with a wait hint covering the rest of the
	// window: the oldest entry is 10s old, so at least 50s remain.
	decision := limiter.Allow(ctx, 42)
	assert.False(t, decision.Allowed)
	assert.GreaterOrEqual(t, decision.RetryAfter, 50*time.Second)
	assert.LessOrEqual(t, decision.RetryAfter, 60*time.Second)
}

func TestAllow_WindowSlides(t *testing.T) {
	limiter, current := newTestLimiter(t, 2, 60*time.Second)
	ctx := context.Background()

	require.True(t, limiter.Allow(ctx, 42).Allowed)
	require.True(t, limiter.Allow(ctx, 42).Allowed)
	assert.False(t, limiter.Allow(ctx, 42).Allowed)

	// Once the first event ages out, capacity frees up again.
	*current = current.Add(61 * time.Second)
	assert.True(t, limiter.Allow(ctx, 42).Allowed)
}

func TestAllow_UsersAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, 60*time.Second)
	ctx := context.Background()

	require.True(t, limiter.Allow(ctx, 1).Allowed)
	assert.False(t, limiter.Allow(ctx, 1).Allowed)
	assert.True(t, limiter.Allow(ctx, 2).Allowed)
}

func TestAllow_ConcurrentBurstStaysWithinCapacity(t *testing.T) {
	limiter, _ := newTestLimiter(t, 5, 60*time.Second)
	ctx := context.Background()

	var wg sync.WaitGroup
	var admitted atomic.Int64
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow(ctx, 42).Allowed {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 5, admitted.Load())
}

func TestAllow_FailsOpenWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	limiter := NewLimiter(rdb, 1, time.Minute)
	mr.Close()

	decision := limiter.Allow(context.Background(), 42)
	assert.True(t, decision.Allowed)
}
