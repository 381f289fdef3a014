package queue

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
	"github.com/sevrusik/turthsnapbot/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// claimScanOrder is the priority scan order for pending jobs. Paid-tier
// jobs jump the line; low priority drains last.
var claimScanOrder = []analysisjob.Priority{
	analysisjob.PriorityHigh,
	analysisjob.PriorityDefault,
	analysisjob.PriorityLow,
}

// Worker polls the queue, claims jobs, and runs them through the executor.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor JobExecutor
	pool     *WorkerPool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor, pool *WorkerPool) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start launches the worker's polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
}

// Stop signals the worker to stop and waits for the current job to finish.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// run is the main polling loop.
func (w *Worker) run(ctx context.Context) {
	log := slog.With("component", "queue-worker", "worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker stopping")
			return
		case <-ctx.Done():
			log.Info("Worker context cancelled")
			return
		default:
		}

		if err := w.pollAndProcess(ctx); err != nil {
			switch err {
			case ErrNoJobsAvailable, ErrAtCapacity:
				w.sleep(w.pollInterval())
			default:
				log.Error("Failed to process job", "error", err)
				w.sleep(1 * time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until the worker is stopped.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll interval with jitter applied, so that
// workers across replicas do not hammer the table in lockstep.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	return base - jitter + time.Duration(rand.Int64N(int64(2*jitter)))
}

// pollAndProcess claims the next runnable job and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	w.processJob(ctx, job)
	return nil
}

// claimNextJob atomically claims the next pending job using
// FOR UPDATE SKIP LOCKED so concurrent workers never double-claim.
// Priorities are scanned high to low; within a priority, oldest first.
// Jobs whose next_attempt_at is in the future are left for later.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.AnalysisJob, error) {
	inProgress, err := w.client.AnalysisJob.Query().
		Where(analysisjob.StatusEQ(analysisjob.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count in-progress jobs: %w", err)
	}
	if inProgress >= w.config.MaxConcurrentJobs {
		return nil, ErrAtCapacity
	}

	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	var job *ent.AnalysisJob
	for _, priority := range claimScanOrder {
		job, err = tx.AnalysisJob.Query().
			Where(
				analysisjob.StatusEQ(analysisjob.StatusPending),
				analysisjob.PriorityEQ(priority),
				analysisjob.NextAttemptAtLTE(time.Now()),
			).
			Order(ent.Asc(analysisjob.FieldCreatedAt)).
			Limit(1).
			ForUpdate(sql.WithLockAction(sql.SkipLocked)).
			First(ctx)
		if err == nil {
			break
		}
		if !ent.IsNotFound(err) {
			_ = tx.Rollback()
			return nil, fmt.Errorf("failed to query pending jobs: %w", err)
		}
	}
	if job == nil {
		_ = tx.Rollback()
		return nil, ErrNoJobsAvailable
	}

	now := time.Now()
	claimed, err := tx.AnalysisJob.UpdateOne(job).
		SetStatus(analysisjob.StatusInProgress).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	slog.Info("Claimed job",
		"worker_id", w.id,
		"job_id", claimed.ID,
		"priority", claimed.Priority,
		"attempt", claimed.Attempts)
	return claimed, nil
}

// processJob runs a claimed job through the executor and records the
// terminal state.
func (w *Worker) processJob(ctx context.Context, job *ent.AnalysisJob) {
	log := slog.With("component", "queue-worker", "worker_id", w.id, "job_id", job.ID)

	w.setStatus(WorkerStatusWorking, job.ID)
	defer func() {
		w.mu.Lock()
		w.jobsProcessed++
		w.mu.Unlock()
		w.setStatus(WorkerStatusIdle, "")
	}()

	jobCtx, cancel := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancel()

	w.pool.RegisterJob(job.ID, cancel)
	defer w.pool.UnregisterJob(job.ID)

	heartbeatDone := make(chan struct{})
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.runHeartbeat(jobCtx, job.ID, heartbeatDone)
	}()

	result := w.executor.Execute(jobCtx, job)
	close(heartbeatDone)

	if result == nil {
		log.Error("Executor returned nil result")
		result = &ExecutionResult{
			Status: analysisjob.StatusFailed,
			Error:  fmt.Errorf("executor returned nil result"),
		}
	}

	// Terminal updates use a fresh context: the job context may already
	// be cancelled or timed out.
	if err := w.finishJob(context.Background(), job, result); err != nil {
		log.Error("Failed to record job outcome", "error", err)
		return
	}

	log.Info("Job finished",
		"status", result.Status,
		"retryable", result.Retryable,
		"attempt", job.Attempts)
}

// finishJob writes the terminal (or requeued) state for the attempt.
func (w *Worker) finishJob(ctx context.Context, job *ent.AnalysisJob, result *ExecutionResult) error {
	if result.Retryable && job.Attempts < w.config.MaxAttempts {
		backoff := w.config.BackoffForAttempt(job.Attempts)
		update := w.client.AnalysisJob.UpdateOne(job).
			SetStatus(analysisjob.StatusPending).
			SetNextAttemptAt(time.Now().Add(backoff)).
			ClearPodID().
			ClearLastHeartbeatAt()
		if result.Error != nil {
			update.SetErrorMessage(result.Error.Error())
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to requeue job: %w", err)
		}
		slog.Info("Job requeued",
			"job_id", job.ID,
			"attempt", job.Attempts,
			"next_attempt_in", backoff)
		return nil
	}

	update := w.client.AnalysisJob.UpdateOne(job).
		SetStatus(result.Status).
		SetFinishedAt(time.Now())
	if result.AnalysisID != "" {
		update.SetAnalysisID(result.AnalysisID)
	}
	if result.Error != nil {
		update.SetErrorMessage(result.Error.Error())
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to finish job: %w", err)
	}
	return nil
}

// runHeartbeat stamps the job row periodically so other replicas know
// it is still being worked on.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string, done <-chan struct{}) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := w.client.AnalysisJob.UpdateOneID(jobID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx)
			if err != nil {
				slog.Warn("Failed to update job heartbeat",
					"worker_id", w.id,
					"job_id", jobID,
					"error", err)
			}
		}
	}
}

// Health returns the worker's current health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
