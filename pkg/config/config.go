// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root configuration for the bot service.
type Config struct {
	Telegram  TelegramConfig
	Redis     RedisConfig
	Storage   StorageConfig
	FraudLens FraudLensConfig
	Queue     *QueueConfig
	RateLimit RateLimitConfig
	Quota     QuotaConfig
	Retention RetentionConfig

	// HTTPPort is where the operational API (health, lookups) listens.
	HTTPPort int

	// MaxUploadSizeMB is the largest accepted image, in megabytes.
	MaxUploadSizeMB int

	// DuplicateWindow is how long a repeated upload of the same image
	// by the same user is answered from the previous result.
	DuplicateWindow time.Duration
}

// TelegramConfig configures the Bot API client.
type TelegramConfig struct {
	Token string
	// PollTimeout is the long-poll timeout passed to getUpdates.
	PollTimeout time.Duration
}

// RedisConfig configures the Redis client used for conversation state,
// rate limiting, and the duplicate-upload index.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// StorageConfig configures the S3-compatible object store holding
// uploaded images while their jobs are queued.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// FraudLensConfig configures the remote image-forensics API client.
type FraudLensConfig struct {
	BaseURL string
	APIKey  string
	// Timeout bounds a single verify call, including the upload.
	Timeout time.Duration
}

// RateLimitConfig bounds how many uploads a user may start per window.
type RateLimitConfig struct {
	Capacity int
	Window   time.Duration
}

// QuotaConfig controls per-day analysis allowances.
type QuotaConfig struct {
	FreeChecksPerDay int
}

// Load reads the full configuration from the environment.
func Load() (*Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	httpPort, err := getEnvInt("HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	maxUploadMB, err := getEnvInt("MAX_UPLOAD_SIZE_MB", 20)
	if err != nil {
		return nil, err
	}

	dupWindow, err := getEnvDuration("DUPLICATE_WINDOW", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	pollTimeout, err := getEnvDuration("TELEGRAM_POLL_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	apiTimeout, err := getEnvDuration("ANALYSIS_API_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	rlCapacity, err := getEnvInt("RATE_LIMIT_CAPACITY", 5)
	if err != nil {
		return nil, err
	}
	rlWindow, err := getEnvDuration("RATE_LIMIT_WINDOW", 60*time.Second)
	if err != nil {
		return nil, err
	}

	freeChecks, err := getEnvInt("FREE_CHECKS_PER_DAY", 3)
	if err != nil {
		return nil, err
	}

	queueCfg, err := LoadQueueConfigFromEnv()
	if err != nil {
		return nil, err
	}

	retentionCfg, err := LoadRetentionConfigFromEnv()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Telegram: TelegramConfig{
			Token:       token,
			PollTimeout: pollTimeout,
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Storage: StorageConfig{
			Endpoint:  getEnvOrDefault("S3_ENDPOINT", "localhost:9000"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Bucket:    getEnvOrDefault("S3_BUCKET", "truthsnap-uploads"),
			UseSSL:    getEnvBool("S3_USE_SSL", false),
		},
		FraudLens: FraudLensConfig{
			BaseURL: getEnvOrDefault("FRAUDLENS_BASE_URL", "http://localhost:8000"),
			APIKey:  os.Getenv("FRAUDLENS_API_KEY"),
			Timeout: apiTimeout,
		},
		Queue:     queueCfg,
		RateLimit: RateLimitConfig{Capacity: rlCapacity, Window: rlWindow},
		Quota:     QuotaConfig{FreeChecksPerDay: freeChecks},
		Retention: retentionCfg,

		HTTPPort:        httpPort,
		MaxUploadSizeMB: maxUploadMB,
		DuplicateWindow: dupWindow,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints not caught during parsing.
func (c *Config) Validate() error {
	if c.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE_MB must be positive")
	}
	if c.RateLimit.Capacity <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit capacity and window must be positive")
	}
	if c.Quota.FreeChecksPerDay < 0 {
		return fmt.Errorf("FREE_CHECKS_PER_DAY must not be negative")
	}
	if err := c.Queue.Validate(); err != nil {
		return err
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
