// Package ratelimit implements a per-user sliding-window limiter over
// Redis sorted sets.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sevrusik/turthsnapbot/pkg/privacy"
)

// Decision is the outcome of a limiter check.
type Decision struct {
	Allowed bool
	// RetryAfter is how long the user must wait before the next
	// attempt can succeed. Zero when Allowed.
	RetryAfter time.Duration
}

// Limiter admits at most Capacity events per user per Window.
// Each admitted event is a timestamped member of a per-user sorted
// set; expired members are trimmed on every check.
type Limiter struct {
	rdb      *redis.Client
	capacity int
	window   time.Duration
	logger   *slog.Logger

	now func() time.Time
}

// NewLimiter creates a limiter with the given capacity and window.
func NewLimiter(rdb *redis.Client, capacity int, window time.Duration) *Limiter {
	return &Limiter{
		rdb:      rdb,
		capacity: capacity,
		window:   window,
		logger:   slog.With("component", "ratelimit"),
		now:      time.Now,
	}
}

func (l *Limiter) key(userID int64) string {
	return fmt.Sprintf("ratelimit:%d", userID)
}

// allowScript trims expired events, counts the window, and records the
// new event when capacity remains, all in one atomic unit. Returns -1
// when the event was admitted, otherwise the score of the oldest event
// still in the window.
//
// KEYS[1] per-user sorted set
// ARGV[1] window start (ms), ARGV[2] now (ms), ARGV[3] capacity,
// ARGV[4] event member, ARGV[5] key TTL (ms)
var allowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, ARGV[1])
local count = redis.call('ZCARD', KEYS[1])
if count < tonumber(ARGV[3]) then
	redis.call('ZADD', KEYS[1], ARGV[2], ARGV[4])
	redis.call('PEXPIRE', KEYS[1], ARGV[5])
	return -1
end
local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
if #oldest == 0 then
	return -1
end
return tonumber(oldest[2])
`)

// Allow records one event for the user if capacity remains, otherwise
// reports how long until the oldest event leaves the window. The check
// and the record are a single script, so concurrent calls for the same
// user cannot both pass through the last free slot.
//
// Redis failures admit the event: availability of the bot outweighs
// strict limiting during a store outage.
func (l *Limiter) Allow(ctx context.Context, userID int64) Decision {
	now := l.now()
	windowStart := now.Add(-l.window)

	res, err := allowScript.Run(ctx, l.rdb,
		[]string{l.key(userID)},
		windowStart.UnixMilli(),
		now.UnixMilli(),
		l.capacity,
		uuid.NewString(),
		(2 * l.window).Milliseconds(),
	).Int64()
	if err != nil {
		l.logger.Warn("rate limit check failed, allowing", privacy.UserAttr(userID), "error", err)
		return Decision{Allowed: true}
	}
	if res < 0 {
		return Decision{Allowed: true}
	}

	oldestAt := time.UnixMilli(res)
	retryAfter := oldestAt.Add(l.window).Sub(now)
	if retryAfter < 0 {
		retryAfter = 0
	}

	return Decision{Allowed: false, RetryAfter: retryAfter}
}
