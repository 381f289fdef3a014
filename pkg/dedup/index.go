// Package dedup tracks recently analyzed images per user so repeated
// uploads are answered from the existing result instead of re-analyzed.
package dedup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sevrusik/turthsnapbot/pkg/privacy"
)

// Index maps (user, image fingerprint) to the analysis that already
// covered that image. Entries expire after the configured window and
// are never refreshed: a duplicate always references the first
// analysis, and a re-upload after the window is a fresh one.
type Index struct {
	rdb    *redis.Client
	window time.Duration
	logger *slog.Logger
}

// NewIndex creates a duplicate-upload index with the given window.
func NewIndex(rdb *redis.Client, window time.Duration) *Index {
	return &Index{
		rdb:    rdb,
		window: window,
		logger: slog.With("component", "dedup"),
	}
}

func (i *Index) key(userID int64, fingerprint string) string {
	return fmt.Sprintf("dup:%d:%s", userID, fingerprint)
}

// Lookup returns the analysis ID previously recorded for this user and
// image fingerprint. Store failures report no duplicate: a spare
// analysis is cheaper than a refused one.
func (i *Index) Lookup(ctx context.Context, userID int64, fingerprint string) (string, bool) {
	analysisID, err := i.rdb.Get(ctx, i.key(userID, fingerprint)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			i.logger.Warn("duplicate lookup failed", privacy.UserAttr(userID), "error", err)
		}
		return "", false
	}
	return analysisID, true
}

// Remember records a completed analysis for duplicate detection.
// SetNX keeps the first recorded analysis authoritative if two jobs
// for the same image finish concurrently.
func (i *Index) Remember(ctx context.Context, userID int64, fingerprint, analysisID string) {
	if err := i.rdb.SetNX(ctx, i.key(userID, fingerprint), analysisID, i.window).Err(); err != nil {
		i.logger.Warn("duplicate record failed", privacy.UserAttr(userID), "error", err)
	}
}
