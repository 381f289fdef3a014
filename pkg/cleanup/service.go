// Package cleanup enforces retention: finished job rows past their TTL
// and uploaded blobs past their maximum age are deleted on a schedule.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
	"github.com/sevrusik/turthsnapbot/pkg/config"
	"github.com/sevrusik/turthsnapbot/pkg/storage"
)

// Service periodically removes expired data:
//   - succeeded job rows older than the success TTL
//   - failed and dead job rows older than the failure TTL
//   - uploaded blobs older than the blob max age
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config config.RetentionConfig
	client *ent.Client
	store  *storage.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. store may be nil when no
// object store is configured; blob cleanup is skipped then.
func NewService(cfg config.RetentionConfig, client *ent.Client, store *storage.Store) *Service {
	return &Service{
		config: cfg,
		client: client,
		store:  store,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"succeeded_job_ttl", s.config.SucceededJobTTL,
		"failed_job_ttl", s.config.FailedJobTTL,
		"blob_max_age", s.config.BlobMaxAge,
		"interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteExpiredJobs(ctx)
	s.deleteExpiredBlobs(ctx)
}

// deleteExpiredJobs removes terminal job rows whose TTL has passed.
// The analysis record is the durable history; job rows are only
// operational bookkeeping.
func (s *Service) deleteExpiredJobs(ctx context.Context) {
	now := time.Now()

	n, err := s.client.AnalysisJob.Delete().
		Where(
			analysisjob.StatusEQ(analysisjob.StatusSucceeded),
			analysisjob.FinishedAtLT(now.Add(-s.config.SucceededJobTTL)),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: succeeded job cleanup failed", "error", err)
	} else if n > 0 {
		slog.Info("Retention: deleted succeeded jobs", "count", n)
	}

	n, err = s.client.AnalysisJob.Delete().
		Where(
			analysisjob.StatusIn(analysisjob.StatusFailed, analysisjob.StatusDead),
			analysisjob.FinishedAtLT(now.Add(-s.config.FailedJobTTL)),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: failed job cleanup failed", "error", err)
	} else if n > 0 {
		slog.Info("Retention: deleted failed jobs", "count", n)
	}
}

// deleteExpiredBlobs removes uploads the workers never got to delete,
// covering crashes between final notification and blob removal.
func (s *Service) deleteExpiredBlobs(ctx context.Context) {
	if s.store == nil {
		return
	}
	n, err := s.store.DeleteOlderThan(ctx, s.config.BlobMaxAge)
	if err != nil {
		slog.Error("Retention: blob cleanup failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Retention: deleted expired blobs", "count", n)
	}
}
