package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) (*Index, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewIndex(rdb, 24*time.Hour), mr
}

func TestLookupAndRemember(t *testing.T) {
	index, _ := newTestIndex(t)
	ctx := context.Background()

	_, found := index.Lookup(ctx, 42, "cafe1234")
	assert.False(t, found)

	index.Remember(ctx, 42, "cafe1234", "ANL-20260824-ab12cd34")

	analysisID, found := index.Lookup(ctx, 42, "cafe1234")
	require.True(t, found)
	assert.Equal(t, "ANL-20260824-ab12cd34", analysisID)

	// Same image from another user is not a duplicate.
	_, found = index.Lookup(ctx, 43, "cafe1234")
	assert.False(t, found)
}

func TestRemember_FirstAnalysisWins(t *testing.T) {
	index, _ := newTestIndex(t)
	ctx := context.Background()

	index.Remember(ctx, 42, "cafe1234", "ANL-20260824-ab12cd34")
	index.Remember(ctx, 42, "cafe1234", "ANL-20260824-99999999")

	analysisID, found := index.Lookup(ctx, 42, "cafe1234")
	require.True(t, found)
	assert.Equal(t, "ANL-20260824-ab12cd34", analysisID)
}

func TestEntriesExpire(t *testing.T) {
	index, mr := newTestIndex(t)
	ctx := context.Background()

	index.Remember(ctx, 42, "cafe1234", "ANL-20260824-ab12cd34")
	mr.FastForward(24*time.Hour + time.Minute)

	_, found := index.Lookup(ctx, 42, "cafe1234")
	assert.False(t, found)
}

func TestLookup_FailsOpenWhenRedisDown(t *testing.T) {
	index, mr := newTestIndex(t)
	mr.Close()

	_, found := index.Lookup(context.Background(), 42, "cafe1234")
	assert.False(t, found)
}
