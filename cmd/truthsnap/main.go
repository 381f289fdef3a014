// TruthSnap bot server — polls Telegram, manages queue workers, and
// serves the operational API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sevrusik/turthsnapbot/pkg/api"
	"github.com/sevrusik/turthsnapbot/pkg/bot"
	"github.com/sevrusik/turthsnapbot/pkg/cleanup"
	"github.com/sevrusik/turthsnapbot/pkg/config"
	"github.com/sevrusik/turthsnapbot/pkg/database"
	"github.com/sevrusik/turthsnapbot/pkg/dedup"
	"github.com/sevrusik/turthsnapbot/pkg/fraudlens"
	"github.com/sevrusik/turthsnapbot/pkg/imagecheck"
	"github.com/sevrusik/turthsnapbot/pkg/notify"
	"github.com/sevrusik/turthsnapbot/pkg/queue"
	"github.com/sevrusik/turthsnapbot/pkg/ratelimit"
	"github.com/sevrusik/turthsnapbot/pkg/services"
	"github.com/sevrusik/turthsnapbot/pkg/storage"
	"github.com/sevrusik/turthsnapbot/pkg/telegram"
	"github.com/sevrusik/turthsnapbot/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica job
// coordination. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting TruthSnap", "version", version.Full(), "pod_id", podID)

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Reclaim jobs this pod was holding when it last died.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, cfg.Queue, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan covers what this missed
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()
	slog.Info("Connected to Redis")

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize object storage", "error", err)
		os.Exit(1)
	}

	users := services.NewUserService(dbClient.Client, cfg.Quota)
	analyses := services.NewAnalysisService(dbClient.Client)
	validator := imagecheck.NewValidator(cfg.MaxUploadSizeMB)
	detector := fraudlens.NewClient(cfg.FraudLens)
	dedupIndex := dedup.NewIndex(rdb, cfg.DuplicateWindow)
	limiter := ratelimit.NewLimiter(rdb, cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	states := bot.NewStateStore(rdb)
	slog.Info("Services initialized")

	tgClient := telegram.NewClient(cfg.Telegram.Token)
	renderer := notify.NewRenderer(notify.NewGeocoder())
	notifier := notify.NewTelegramNotifier(tgClient, renderer, states)

	executor := queue.NewAnalysisExecutor(
		cfg.Queue, store, detector, validator, users, analyses, dedupIndex, notifier)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	retention := cleanup.NewService(cfg.Retention, dbClient.Client, store)
	retention.Start(ctx)

	tgBot := bot.New(bot.Deps{
		Client:    tgClient,
		Config:    cfg,
		States:    states,
		Limiter:   limiter,
		Users:     users,
		Analyses:  analyses,
		Validator: validator,
		Store:     store,
		Dedup:     dedupIndex,
		Enqueuer:  queue.NewEnqueuer(dbClient.Client, cfg.Queue),
		Detector:  detector,
		Renderer:  renderer,
	})

	botCtx, botCancel := context.WithCancel(ctx)
	botDone := make(chan struct{})
	go func() {
		tgBot.Run(botCtx)
		close(botDone)
	}()

	httpServer := api.NewServer(dbClient, rdb, store, workerPool, analyses)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(cfg.HTTPPort); err != nil {
			errCh <- err
		}
	}()

	slog.Info("TruthSnap started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"http_port", cfg.HTTPPort)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop taking new updates first so no job is enqueued mid-shutdown.
	botCancel()
	<-botDone
	slog.Info("Bot dispatcher drained")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete jobs will be orphan-recovered")
	}

	retention.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
