package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_POLL_TIMEOUT",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET", "S3_USE_SSL",
		"FRAUDLENS_BASE_URL", "FRAUDLENS_API_KEY", "ANALYSIS_API_TIMEOUT",
		"RATE_LIMIT_CAPACITY", "RATE_LIMIT_WINDOW", "FREE_CHECKS_PER_DAY",
		"HTTP_PORT", "MAX_UPLOAD_SIZE_MB", "DUPLICATE_WINDOW",
		"QUEUE_WORKER_COUNT", "QUEUE_MAX_CONCURRENT_JOBS", "JOB_TIMEOUT",
		"QUEUE_POLL_INTERVAL", "QUEUE_MAX_PENDING_JOBS", "QUEUE_MAX_ATTEMPTS",
		"RETENTION_SUCCEEDED_JOB_TTL", "RETENTION_FAILED_JOB_TTL",
		"RETENTION_BLOB_MAX_AGE", "RETENTION_INTERVAL",
	}
	for _, key := range keys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range keys {
			os.Unsetenv(key)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	os.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "truthsnap-uploads", cfg.Storage.Bucket)
	assert.Equal(t, 30*time.Second, cfg.FraudLens.Timeout)
	assert.Equal(t, 5, cfg.RateLimit.Capacity)
	assert.Equal(t, 60*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, 3, cfg.Quota.FreeChecksPerDay)
	assert.Equal(t, 20, cfg.MaxUploadSizeMB)
	assert.Equal(t, 24*time.Hour, cfg.DuplicateWindow)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, 1*time.Hour, cfg.Retention.SucceededJobTTL)
	assert.Equal(t, 24*time.Hour, cfg.Retention.FailedJobTTL)
}

func TestLoad_MissingToken(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	os.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	os.Setenv("RATE_LIMIT_CAPACITY", "10")
	os.Setenv("RATE_LIMIT_WINDOW", "2m")
	os.Setenv("JOB_TIMEOUT", "10m")
	os.Setenv("QUEUE_WORKER_COUNT", "8")
	os.Setenv("QUEUE_MAX_CONCURRENT_JOBS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.RateLimit.Capacity)
	assert.Equal(t, 2*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 10*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, cfg.Queue.JobTimeout, cfg.Queue.GracefulShutdownTimeout)
	assert.Equal(t, 8, cfg.Queue.WorkerCount)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad duration", "JOB_TIMEOUT", "five minutes"},
		{"bad int", "RATE_LIMIT_CAPACITY", "many"},
		{"bad redis db", "REDIS_DB", "zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			os.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
			os.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestQueueConfig_Validate(t *testing.T) {
	cfg := DefaultQueueConfig()
	require.NoError(t, cfg.Validate())

	cfg.WorkerCount = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultQueueConfig()
	cfg.MaxConcurrentJobs = cfg.WorkerCount - 1
	assert.Error(t, cfg.Validate())

	cfg = DefaultQueueConfig()
	cfg.RetryBackoff = nil
	assert.Error(t, cfg.Validate())
}

func TestQueueConfig_BackoffForAttempt(t *testing.T) {
	cfg := DefaultQueueConfig()

	assert.Equal(t, 10*time.Second, cfg.BackoffForAttempt(1))
	assert.Equal(t, 30*time.Second, cfg.BackoffForAttempt(2))
	assert.Equal(t, 60*time.Second, cfg.BackoffForAttempt(3))
	// Past the schedule the last entry repeats.
	assert.Equal(t, 60*time.Second, cfg.BackoffForAttempt(7))
	assert.Equal(t, 10*time.Second, cfg.BackoffForAttempt(0))
}
