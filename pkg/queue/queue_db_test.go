package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
	"github.com/sevrusik/turthsnapbot/pkg/models"
	testdb "github.com/sevrusik/turthsnapbot/test/database"
)

func createJob(t *testing.T, client *ent.Client, priority analysisjob.Priority, mutate ...func(*ent.AnalysisJobCreate)) *ent.AnalysisJob {
	t.Helper()
	create := client.AnalysisJob.Create().
		SetID(uuid.NewString()).
		SetUserID(100).
		SetChatID(100).
		SetSourceMessageID(1).
		SetProgressMessageID(2).
		SetBlobKey(fmt.Sprintf("temp/100/%s.jpg", uuid.NewString())).
		SetScenario(string(models.ScenarioGeneral)).
		SetPriority(priority)
	for _, m := range mutate {
		m(create)
	}
	job, err := create.Save(context.Background())
	require.NoError(t, err)
	return job
}

func TestClaimNextJob_PriorityOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	w := NewWorker("w-0", "pod-a", client.Client, cfg, nil, nil)
	ctx := context.Background()

	low := createJob(t, client.Client, analysisjob.PriorityLow)
	def := createJob(t, client.Client, analysisjob.PriorityDefault)
	high := createJob(t, client.Client, analysisjob.PriorityHigh)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, high.ID, claimed.ID)
	assert.Equal(t, analysisjob.StatusInProgress, claimed.Status)
	assert.Equal(t, 1, claimed.Attempts)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-a", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)
	assert.NotNil(t, claimed.LastHeartbeatAt)

	claimed, err = w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, def.ID, claimed.ID)

	// Third claim hits the concurrency ceiling before reaching the
	// low-priority job.
	_, err = w.claimNextJob(ctx)
	require.ErrorIs(t, err, ErrAtCapacity)

	got, err := client.AnalysisJob.Get(ctx, low.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusPending, got.Status)
}

func TestClaimNextJob_OldestFirstWithinPriority(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	w := NewWorker("w-0", "pod-a", client.Client, cfg, nil, nil)
	ctx := context.Background()

	older := createJob(t, client.Client, analysisjob.PriorityDefault, func(c *ent.AnalysisJobCreate) {
		c.SetCreatedAt(time.Now().Add(-time.Minute))
	})
	createJob(t, client.Client, analysisjob.PriorityDefault)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, older.ID, claimed.ID)
}

func TestClaimNextJob_RespectsNextAttemptAt(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	w := NewWorker("w-0", "pod-a", client.Client, cfg, nil, nil)
	ctx := context.Background()

	createJob(t, client.Client, analysisjob.PriorityDefault, func(c *ent.AnalysisJobCreate) {
		c.SetNextAttemptAt(time.Now().Add(time.Hour))
	})

	_, err := w.claimNextJob(ctx)
	require.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaimNextJob_EmptyQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	w := NewWorker("w-0", "pod-a", client.Client, cfg, nil, nil)

	_, err := w.claimNextJob(context.Background())
	require.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestFinishJob_RequeuesRetryableWithBackoff(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	w := NewWorker("w-0", "pod-a", client.Client, cfg, nil, nil)
	ctx := context.Background()

	createJob(t, client.Client, analysisjob.PriorityDefault)
	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)

	before := time.Now()
	err = w.finishJob(ctx, claimed, &ExecutionResult{
		Status:    analysisjob.StatusFailed,
		Retryable: true,
		Error:     fmt.Errorf("blob download failed"),
	})
	require.NoError(t, err)

	got, err := client.AnalysisJob.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusPending, got.Status)
	assert.Nil(t, got.PodID)
	assert.Nil(t, got.LastHeartbeatAt)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "blob download failed")

	// First attempt failed, so the first backoff step applies.
	wantEarliest := before.Add(cfg.BackoffForAttempt(1) - time.Second)
	assert.True(t, got.NextAttemptAt.After(wantEarliest),
		"next_attempt_at %v should be ~%v after %v", got.NextAttemptAt, cfg.BackoffForAttempt(1), before)
}

func TestFinishJob_FailsTerminallyAfterMaxAttempts(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	cfg.MaxAttempts = 1
	w := NewWorker("w-0", "pod-a", client.Client, cfg, nil, nil)
	ctx := context.Background()

	createJob(t, client.Client, analysisjob.PriorityDefault)
	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)

	err = w.finishJob(ctx, claimed, &ExecutionResult{
		Status:    analysisjob.StatusFailed,
		Retryable: true,
		Error:     fmt.Errorf("still broken"),
	})
	require.NoError(t, err)

	got, err := client.AnalysisJob.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusFailed, got.Status)
	assert.NotNil(t, got.FinishedAt)
}

func TestFinishJob_RecordsSuccess(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	w := NewWorker("w-0", "pod-a", client.Client, cfg, nil, nil)
	ctx := context.Background()

	createJob(t, client.Client, analysisjob.PriorityDefault)
	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)

	err = w.finishJob(ctx, claimed, &ExecutionResult{
		Status:     analysisjob.StatusSucceeded,
		AnalysisID: "ANL-20260824-0a1b2c3d",
	})
	require.NoError(t, err)

	got, err := client.AnalysisJob.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusSucceeded, got.Status)
	assert.NotNil(t, got.FinishedAt)
	require.NotNil(t, got.AnalysisID)
	assert.Equal(t, "ANL-20260824-0a1b2c3d", *got.AnalysisID)
}

func TestEnqueue_Backpressure(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	cfg.MaxPendingJobs = 2
	enq := NewEnqueuer(client.Client, cfg)
	ctx := context.Background()

	req := EnqueueRequest{
		UserID:            100,
		ChatID:            100,
		SourceMessageID:   1,
		ProgressMessageID: 2,
		BlobKey:           "temp/100/a.jpg",
		FileExt:           "jpg",
		Scenario:          models.ScenarioGeneral,
		Tier:              models.TierFree,
	}

	first, err := enq.Enqueue(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusPending, first.Status)
	assert.Equal(t, analysisjob.PriorityDefault, first.Priority)

	_, err = enq.Enqueue(ctx, req)
	require.NoError(t, err)

	_, err = enq.Enqueue(ctx, req)
	require.ErrorIs(t, err, ErrOverloaded)
}

func TestEnqueue_ProTierGetsHighPriority(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	enq := NewEnqueuer(client.Client, cfg)

	job, err := enq.Enqueue(context.Background(), EnqueueRequest{
		UserID:            100,
		ChatID:            100,
		SourceMessageID:   1,
		ProgressMessageID: 2,
		BlobKey:           "temp/100/b.jpg",
		FileExt:           "jpg",
		Scenario:          models.ScenarioAdultBlackmail,
		Tier:              models.TierPro,
	})
	require.NoError(t, err)
	assert.Equal(t, analysisjob.PriorityHigh, job.Priority)
	assert.Equal(t, analysisjob.TierPro, job.Tier)
}

func TestOrphanRecovery_RequeuesStaleJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	ctx := context.Background()

	stale := createJob(t, client.Client, analysisjob.PriorityDefault, func(c *ent.AnalysisJobCreate) {
		c.SetStatus(analysisjob.StatusInProgress).
			SetPodID("pod-dead").
			SetAttempts(1).
			SetLastHeartbeatAt(time.Now().Add(-time.Hour))
	})

	pool := NewWorkerPool("pod-a", client.Client, cfg, NewStubExecutor())
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	got, err := client.AnalysisJob.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusPending, got.Status)
	assert.Nil(t, got.PodID)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "orphaned")
}

func TestOrphanRecovery_FailsExhaustedJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	ctx := context.Background()

	stale := createJob(t, client.Client, analysisjob.PriorityDefault, func(c *ent.AnalysisJobCreate) {
		c.SetStatus(analysisjob.StatusInProgress).
			SetPodID("pod-dead").
			SetAttempts(cfg.MaxAttempts).
			SetLastHeartbeatAt(time.Now().Add(-time.Hour))
	})

	pool := NewWorkerPool("pod-a", client.Client, cfg, NewStubExecutor())
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	got, err := client.AnalysisJob.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusFailed, got.Status)
	assert.NotNil(t, got.FinishedAt)
}

func TestCleanupStartupOrphans_OnlyThisPod(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	ctx := context.Background()

	mine := createJob(t, client.Client, analysisjob.PriorityDefault, func(c *ent.AnalysisJobCreate) {
		c.SetStatus(analysisjob.StatusInProgress).
			SetPodID("pod-a").
			SetAttempts(1)
	})
	other := createJob(t, client.Client, analysisjob.PriorityDefault, func(c *ent.AnalysisJobCreate) {
		c.SetStatus(analysisjob.StatusInProgress).
			SetPodID("pod-b").
			SetAttempts(1)
	})

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, cfg, "pod-a"))

	got, err := client.AnalysisJob.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusPending, got.Status)

	got, err = client.AnalysisJob.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusInProgress, got.Status)
}
