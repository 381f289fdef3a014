package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
	"github.com/sevrusik/turthsnapbot/pkg/config"
	testdb "github.com/sevrusik/turthsnapbot/test/database"
)

func retentionConfig() config.RetentionConfig {
	return config.RetentionConfig{
		SucceededJobTTL: time.Hour,
		FailedJobTTL:    24 * time.Hour,
		BlobMaxAge:      24 * time.Hour,
		Interval:        10 * time.Minute,
	}
}

func createFinishedJob(t *testing.T, client *ent.Client, status analysisjob.Status, finishedAgo time.Duration) *ent.AnalysisJob {
	t.Helper()
	job, err := client.AnalysisJob.Create().
		SetID(uuid.NewString()).
		SetStatus(status).
		SetUserID(100).
		SetChatID(100).
		SetSourceMessageID(1).
		SetProgressMessageID(2).
		SetBlobKey("100/" + uuid.NewString() + ".jpg").
		SetScenario("general").
		SetFinishedAt(time.Now().Add(-finishedAgo)).
		Save(context.Background())
	require.NoError(t, err)
	return job
}

func TestDeleteExpiredJobs_RemovesOldSucceeded(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	expired := createFinishedJob(t, client.Client, analysisjob.StatusSucceeded, 2*time.Hour)
	recent := createFinishedJob(t, client.Client, analysisjob.StatusSucceeded, 10*time.Minute)

	svc := NewService(retentionConfig(), client.Client, nil)
	svc.deleteExpiredJobs(ctx)

	_, err := client.Client.AnalysisJob.Get(ctx, expired.ID)
	assert.True(t, ent.IsNotFound(err))

	_, err = client.Client.AnalysisJob.Get(ctx, recent.ID)
	assert.NoError(t, err)
}

func TestDeleteExpiredJobs_FailedJobsKeptLonger(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Past the succeeded TTL but inside the failure TTL.
	failed := createFinishedJob(t, client.Client, analysisjob.StatusFailed, 2*time.Hour)
	dead := createFinishedJob(t, client.Client, analysisjob.StatusDead, 2*time.Hour)
	expiredFailed := createFinishedJob(t, client.Client, analysisjob.StatusFailed, 25*time.Hour)

	svc := NewService(retentionConfig(), client.Client, nil)
	svc.deleteExpiredJobs(ctx)

	_, err := client.Client.AnalysisJob.Get(ctx, failed.ID)
	assert.NoError(t, err)
	_, err = client.Client.AnalysisJob.Get(ctx, dead.ID)
	assert.NoError(t, err)

	_, err = client.Client.AnalysisJob.Get(ctx, expiredFailed.ID)
	assert.True(t, ent.IsNotFound(err))
}

func TestDeleteExpiredJobs_IgnoresRunningJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Pending and in-progress rows have no finished_at and must never
	// be touched by retention.
	pending, err := client.Client.AnalysisJob.Create().
		SetID(uuid.NewString()).
		SetStatus(analysisjob.StatusPending).
		SetUserID(100).
		SetChatID(100).
		SetSourceMessageID(1).
		SetProgressMessageID(2).
		SetBlobKey("100/pending.jpg").
		SetScenario("general").
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), client.Client, nil)
	svc.deleteExpiredJobs(ctx)

	_, err = client.Client.AnalysisJob.Get(ctx, pending.ID)
	assert.NoError(t, err)
}

func TestStartStop(t *testing.T) {
	client := testdb.NewTestClient(t)

	cfg := retentionConfig()
	cfg.Interval = time.Hour

	svc := NewService(cfg, client.Client, nil)
	svc.Start(context.Background())
	svc.Stop()
}
