package config

import (
	"fmt"
	"time"
)

// QueueConfig contains queue and worker pool configuration.
// These values control how analysis jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes jobs.
	WorkerCount int

	// MaxConcurrentJobs is the global limit of jobs being processed
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentJobs int

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// JobTimeout is the maximum time a single job can be processed.
	JobTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown. Should match JobTimeout.
	GracefulShutdownTimeout time.Duration

	// HeartbeatInterval is how often a worker stamps the job it holds.
	HeartbeatInterval time.Duration

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration

	// OrphanThreshold is how long a job can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration

	// MaxAttempts is the total number of tries a job gets, including
	// the first. Past this the job is marked failed.
	MaxAttempts int

	// RetryBackoff holds the delay before attempt N+1; the last entry
	// repeats if attempts outnumber entries.
	RetryBackoff []time.Duration

	// MaxPendingJobs is the backpressure threshold. Enqueue is refused
	// while the pending depth is at or above this value.
	MaxPendingJobs int
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		MaxConcurrentJobs:       3,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         2 * time.Minute,
		MaxAttempts:             3,
		RetryBackoff:            []time.Duration{10 * time.Second, 30 * time.Second, 60 * time.Second},
		MaxPendingJobs:          100,
	}
}

// LoadQueueConfigFromEnv returns the defaults with env overrides applied.
func LoadQueueConfigFromEnv() (*QueueConfig, error) {
	cfg := DefaultQueueConfig()

	var err error
	if cfg.WorkerCount, err = getEnvInt("QUEUE_WORKER_COUNT", cfg.WorkerCount); err != nil {
		return nil, err
	}
	if cfg.MaxConcurrentJobs, err = getEnvInt("QUEUE_MAX_CONCURRENT_JOBS", cfg.MaxConcurrentJobs); err != nil {
		return nil, err
	}
	if cfg.JobTimeout, err = getEnvDuration("JOB_TIMEOUT", cfg.JobTimeout); err != nil {
		return nil, err
	}
	cfg.GracefulShutdownTimeout = cfg.JobTimeout
	if cfg.PollInterval, err = getEnvDuration("QUEUE_POLL_INTERVAL", cfg.PollInterval); err != nil {
		return nil, err
	}
	if cfg.MaxPendingJobs, err = getEnvInt("QUEUE_MAX_PENDING_JOBS", cfg.MaxPendingJobs); err != nil {
		return nil, err
	}
	if cfg.MaxAttempts, err = getEnvInt("QUEUE_MAX_ATTEMPTS", cfg.MaxAttempts); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the queue configuration for obvious mistakes.
func (c *QueueConfig) Validate() error {
	if c.WorkerCount <= 0 {
		return fmt.Errorf("queue worker count must be positive")
	}
	if c.MaxConcurrentJobs < c.WorkerCount {
		return fmt.Errorf("max concurrent jobs must be at least the worker count")
	}
	if c.JobTimeout <= 0 {
		return fmt.Errorf("job timeout must be positive")
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive")
	}
	if len(c.RetryBackoff) == 0 {
		return fmt.Errorf("retry backoff schedule must not be empty")
	}
	if c.MaxPendingJobs <= 0 {
		return fmt.Errorf("max pending jobs must be positive")
	}
	return nil
}

// BackoffForAttempt returns the delay before re-running a job whose
// attempt number (1-based) just failed. The schedule's last entry
// covers any attempts beyond its length.
func (c *QueueConfig) BackoffForAttempt(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > len(c.RetryBackoff) {
		return c.RetryBackoff[len(c.RetryBackoff)-1]
	}
	return c.RetryBackoff[attempt-1]
}
