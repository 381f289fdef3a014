package config

import "time"

// RetentionConfig controls how long finished jobs and temporary blobs
// are kept before the cleanup service removes them.
type RetentionConfig struct {
	// SucceededJobTTL is how long succeeded job rows are retained.
	SucceededJobTTL time.Duration

	// FailedJobTTL is how long failed and dead job rows are retained.
	// Longer than SucceededJobTTL so failures can be inspected.
	FailedJobTTL time.Duration

	// BlobMaxAge is how long an uploaded image may sit in the object
	// store before it is deleted regardless of job state.
	BlobMaxAge time.Duration

	// Interval is how often the cleanup pass runs.
	Interval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		SucceededJobTTL: 1 * time.Hour,
		FailedJobTTL:    24 * time.Hour,
		BlobMaxAge:      24 * time.Hour,
		Interval:        10 * time.Minute,
	}
}

// LoadRetentionConfigFromEnv returns the defaults with env overrides applied.
func LoadRetentionConfigFromEnv() (RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	var err error
	if cfg.SucceededJobTTL, err = getEnvDuration("RETENTION_SUCCEEDED_JOB_TTL", cfg.SucceededJobTTL); err != nil {
		return RetentionConfig{}, err
	}
	if cfg.FailedJobTTL, err = getEnvDuration("RETENTION_FAILED_JOB_TTL", cfg.FailedJobTTL); err != nil {
		return RetentionConfig{}, err
	}
	if cfg.BlobMaxAge, err = getEnvDuration("RETENTION_BLOB_MAX_AGE", cfg.BlobMaxAge); err != nil {
		return RetentionConfig{}, err
	}
	if cfg.Interval, err = getEnvDuration("RETENTION_INTERVAL", cfg.Interval); err != nil {
		return RetentionConfig{}, err
	}

	return cfg, nil
}
