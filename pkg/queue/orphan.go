package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
	"github.com/sevrusik/turthsnapbot/pkg/config"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress jobs with stale heartbeats
// and either requeues them or marks them failed.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.AnalysisJob.Query().
		Where(
			analysisjob.StatusEQ(analysisjob.StatusInProgress),
			analysisjob.LastHeartbeatAtNotNil(),
			analysisjob.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, job := range orphans {
		if err := recoverOrphanedJob(ctx, job, p.config); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", job.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob requeues a job whose worker stopped heartbeating,
// or fails it when no attempts remain. The attempt that died already
// counted, so no attempts increment here.
func recoverOrphanedJob(ctx context.Context, job *ent.AnalysisJob, cfg *config.QueueConfig) error {
	podID := "unknown"
	if job.PodID != nil {
		podID = *job.PodID
	}
	lastHeartbeat := "unknown"
	if job.LastHeartbeatAt != nil {
		lastHeartbeat = job.LastHeartbeatAt.Format(time.RFC3339)
	}
	log := slog.With("job_id", job.ID, "old_pod_id", podID)

	reason := fmt.Sprintf("orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)

	if job.Attempts >= cfg.MaxAttempts {
		err := job.Update().
			SetStatus(analysisjob.StatusFailed).
			SetFinishedAt(time.Now()).
			SetErrorMessage(reason).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark orphan as failed: %w", err)
		}
		log.Warn("Orphaned job marked as failed", "last_heartbeat", lastHeartbeat)
		return nil
	}

	err := job.Update().
		SetStatus(analysisjob.StatusPending).
		SetNextAttemptAt(time.Now().Add(cfg.BackoffForAttempt(job.Attempts))).
		SetErrorMessage(reason).
		ClearPodID().
		ClearLastHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue orphan: %w", err)
	}
	log.Warn("Orphaned job requeued", "last_heartbeat", lastHeartbeat, "attempt", job.Attempts)
	return nil
}

// CleanupStartupOrphans performs a one-time recovery of jobs owned by this
// pod that were in-progress when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, cfg *config.QueueConfig, podID string) error {
	orphans, err := client.AnalysisJob.Query().
		Where(
			analysisjob.StatusEQ(analysisjob.StatusInProgress),
			analysisjob.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, job := range orphans {
		if err := recoverOrphanedJob(ctx, job, cfg); err != nil {
			slog.Error("Failed to recover startup orphan",
				"job_id", job.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", job.ID)
	}

	return nil
}
