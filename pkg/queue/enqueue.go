package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
	"github.com/sevrusik/turthsnapbot/pkg/config"
	"github.com/sevrusik/turthsnapbot/pkg/models"
	"github.com/sevrusik/turthsnapbot/pkg/privacy"
)

// Enqueuer submits new analysis jobs to the durable queue.
type Enqueuer struct {
	client *ent.Client
	config *config.QueueConfig
}

// NewEnqueuer creates a new Enqueuer.
func NewEnqueuer(client *ent.Client, cfg *config.QueueConfig) *Enqueuer {
	return &Enqueuer{client: client, config: cfg}
}

// EnqueueRequest describes one upload to analyze.
type EnqueueRequest struct {
	UserID            int64
	ChatID            int64
	SourceMessageID   int64
	ProgressMessageID int64
	BlobKey           string
	FileExt           string
	Scenario          models.Scenario
	Tier              models.Tier
	PreserveEXIF      bool
}

// Enqueue creates a pending job, applying backpressure when the queue
// is already too deep. Returns ErrOverloaded in that case so the caller
// can tell the user to try again later (nothing was charged yet).
func (e *Enqueuer) Enqueue(ctx context.Context, req EnqueueRequest) (*ent.AnalysisJob, error) {
	depth, err := e.client.AnalysisJob.Query().
		Where(analysisjob.StatusEQ(analysisjob.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check queue depth: %w", err)
	}
	if depth >= e.config.MaxPendingJobs {
		slog.Warn("Refusing enqueue, queue is full",
			"component", "queue",
			"depth", depth,
			"max_pending", e.config.MaxPendingJobs)
		return nil, ErrOverloaded
	}

	priority := models.PriorityForTier(req.Tier)

	job, err := e.client.AnalysisJob.Create().
		SetID(uuid.NewString()).
		SetUserID(req.UserID).
		SetChatID(req.ChatID).
		SetSourceMessageID(req.SourceMessageID).
		SetProgressMessageID(req.ProgressMessageID).
		SetBlobKey(req.BlobKey).
		SetFileExt(req.FileExt).
		SetScenario(string(req.Scenario)).
		SetTier(analysisjob.Tier(req.Tier)).
		SetPreserveExif(req.PreserveEXIF).
		SetPriority(analysisjob.Priority(priority)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	slog.Info("Job enqueued",
		"component", "queue",
		"job_id", job.ID,
		"priority", job.Priority,
		privacy.UserAttr(req.UserID))
	return job, nil
}
