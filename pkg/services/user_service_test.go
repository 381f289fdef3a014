package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevrusik/turthsnapbot/ent/user"
	"github.com/sevrusik/turthsnapbot/pkg/config"
	testdb "github.com/sevrusik/turthsnapbot/test/database"
)

func TestEnsureUser_CreatesAndUpdates(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client, config.QuotaConfig{FreeChecksPerDay: 3})
	ctx := context.Background()

	u, err := svc.EnsureUser(ctx, 100, "alice", "Alice")
	require.NoError(t, err)
	assert.Equal(t, 3, u.DailyChecksRemaining)
	assert.Equal(t, user.TierFree, u.Tier)
	require.NotNil(t, u.Username)
	assert.Equal(t, "alice", *u.Username)

	// Second update refreshes the profile without touching the quota.
	require.NoError(t, svc.ConsumeCheck(ctx, u))
	u, err = svc.EnsureUser(ctx, 100, "alice_renamed", "Alice")
	require.NoError(t, err)
	assert.Equal(t, 2, u.DailyChecksRemaining)
	assert.Equal(t, "alice_renamed", *u.Username)
}

func TestEnsureUser_ResetsQuotaAfterResetDate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client, config.QuotaConfig{FreeChecksPerDay: 3})
	ctx := context.Background()

	u, err := svc.EnsureUser(ctx, 100, "", "")
	require.NoError(t, err)
	require.NoError(t, svc.ConsumeCheck(ctx, u))

	// Move the reset date into the past, as if a day elapsed.
	_, err = u.Update().SetQuotaResetDate(time.Now().Add(-time.Hour)).Save(ctx)
	require.NoError(t, err)

	u, err = svc.EnsureUser(ctx, 100, "", "")
	require.NoError(t, err)
	assert.Equal(t, 3, u.DailyChecksRemaining)
	assert.True(t, u.QuotaResetDate.After(time.Now()))
}

func TestConsumeCheck_ExhaustsAndRefuses(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client, config.QuotaConfig{FreeChecksPerDay: 2})
	ctx := context.Background()

	u, err := svc.EnsureUser(ctx, 100, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.ConsumeCheck(ctx, u))
	require.NoError(t, svc.ConsumeCheck(ctx, u))

	err = svc.ConsumeCheck(ctx, u)
	require.ErrorIs(t, err, ErrQuotaExhausted)

	// The refusal left the balance at zero, not below.
	u, err = client.User.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, u.DailyChecksRemaining)
	assert.Equal(t, 2, u.TotalChecks)
}

func TestConsumeCheck_ProIsUnmetered(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client, config.QuotaConfig{FreeChecksPerDay: 1})
	ctx := context.Background()

	u, err := svc.EnsureUser(ctx, 100, "", "")
	require.NoError(t, err)
	u, err = u.Update().SetTier(user.TierPro).Save(ctx)
	require.NoError(t, err)

	for range 5 {
		require.NoError(t, svc.ConsumeCheck(ctx, u))
	}

	u, err = client.User.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 5, u.TotalChecks)
	assert.Equal(t, 1, u.DailyChecksRemaining)
}

func TestRefundCheck(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client, config.QuotaConfig{FreeChecksPerDay: 3})
	ctx := context.Background()

	u, err := svc.EnsureUser(ctx, 100, "", "")
	require.NoError(t, err)
	require.NoError(t, svc.ConsumeCheck(ctx, u))

	require.NoError(t, svc.RefundCheck(ctx, 100))

	u, err = client.User.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, u.DailyChecksRemaining)
	assert.Equal(t, 0, u.TotalChecks)

	// A second refund must not push the balance above the allowance.
	require.NoError(t, svc.RefundCheck(ctx, 100))
	u, err = client.User.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, u.DailyChecksRemaining)
}

func TestRefundCheck_ProReversesLifetimeCounter(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client, config.QuotaConfig{FreeChecksPerDay: 3})
	ctx := context.Background()

	u, err := svc.EnsureUser(ctx, 100, "", "")
	require.NoError(t, err)
	u, err = u.Update().SetTier(user.TierPro).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.ConsumeCheck(ctx, u))
	require.NoError(t, svc.RefundCheck(ctx, 100))

	// An aborted upload leaves no trace in the lifetime total.
	u, err = client.User.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, u.TotalChecks)
	assert.Equal(t, 3, u.DailyChecksRemaining)

	// With nothing consumed, a refund must not go negative.
	require.NoError(t, svc.RefundCheck(ctx, 100))
	u, err = client.User.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, u.TotalChecks)
}

func TestRecordUsage_UpsertsPerDay(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client, config.QuotaConfig{FreeChecksPerDay: 3})
	ctx := context.Background()

	_, err := svc.EnsureUser(ctx, 100, "", "")
	require.NoError(t, err)

	at := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	require.NoError(t, svc.RecordUsage(ctx, 100, at))
	require.NoError(t, svc.RecordUsage(ctx, 100, at.Add(2*time.Hour)))
	require.NoError(t, svc.RecordUsage(ctx, 100, at.Add(25*time.Hour)))

	usages, err := client.DailyUsage.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, usages, 2)

	counts := map[string]int{}
	for _, du := range usages {
		counts[du.Day.Format("2006-01-02")] = du.Count
	}
	assert.Equal(t, 2, counts["2026-08-24"])
	assert.Equal(t, 1, counts["2026-08-25"])
}
