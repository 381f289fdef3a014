// Package queue provides the durable analysis job queue and its
// worker pool.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
	"github.com/sevrusik/turthsnapbot/pkg/models"
	"github.com/sevrusik/turthsnapbot/pkg/verdict"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no runnable pending jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrOverloaded indicates the pending queue is full and new jobs are
	// being refused until it drains.
	ErrOverloaded = errors.New("queue overloaded")
)

// JobExecutor runs one claimed analysis job end to end.
//
// The executor owns the pipeline: blob download, detection call, verdict
// fusion, persistence, user notification, and refunds on failures. The
// worker only handles claiming, heartbeat, and the terminal status update.
type JobExecutor interface {
	Execute(ctx context.Context, job *ent.AnalysisJob) *ExecutionResult
}

// ExecutionResult is the terminal state of one attempt. All user-visible
// effects (messages, refunds, the analysis record) were already produced
// by the executor; the worker only records the outcome on the job row.
type ExecutionResult struct {
	Status     analysisjob.Status // succeeded, failed, dead
	AnalysisID string             // set when a record was persisted
	Retryable  bool               // requeue with backoff instead of finishing
	Error      error
}

// Notifier delivers progress and outcome messages for a job. Implemented
// by the notification layer; the queue never talks to the chat API itself.
type Notifier interface {
	// Stage edits the job's progress message to show the given stage.
	// Delivery problems are handled (and logged) by the implementation.
	Stage(ctx context.Context, job *ent.AnalysisJob, stage models.Stage)

	// Result replaces the progress message with the final verdict card.
	Result(ctx context.Context, job *ent.AnalysisJob, analysisID string, fused verdict.Result, det *models.DetectionResult) error

	// Failure replaces the progress message with a failure explanation.
	Failure(ctx context.Context, job *ent.AnalysisJob, kind models.FailureKind) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
