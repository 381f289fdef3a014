package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
	"github.com/sevrusik/turthsnapbot/pkg/config"
	"github.com/sevrusik/turthsnapbot/pkg/dedup"
	"github.com/sevrusik/turthsnapbot/pkg/fraudlens"
	"github.com/sevrusik/turthsnapbot/pkg/imagecheck"
	"github.com/sevrusik/turthsnapbot/pkg/models"
	"github.com/sevrusik/turthsnapbot/pkg/privacy"
	"github.com/sevrusik/turthsnapbot/pkg/services"
	"github.com/sevrusik/turthsnapbot/pkg/storage"
	"github.com/sevrusik/turthsnapbot/pkg/verdict"
)

const (
	blobRetryAttempts = 3
	blobRetryDelay    = 500 * time.Millisecond

	persistRetryAttempts = 3
	persistRetryDelay    = 250 * time.Millisecond
)

// AnalysisExecutor runs the full analysis pipeline for one job:
// download, detection, verdict fusion, persistence, notification.
type AnalysisExecutor struct {
	config    *config.QueueConfig
	store     *storage.Store
	detector  *fraudlens.Client
	validator *imagecheck.Validator
	users     *services.UserService
	analyses  *services.AnalysisService
	dedup     *dedup.Index
	notifier  Notifier
}

// NewAnalysisExecutor creates a new AnalysisExecutor.
func NewAnalysisExecutor(
	cfg *config.QueueConfig,
	store *storage.Store,
	detector *fraudlens.Client,
	validator *imagecheck.Validator,
	users *services.UserService,
	analyses *services.AnalysisService,
	dedupIdx *dedup.Index,
	notifier Notifier,
) *AnalysisExecutor {
	return &AnalysisExecutor{
		config:    cfg,
		store:     store,
		detector:  detector,
		validator: validator,
		users:     users,
		analyses:  analyses,
		dedup:     dedupIdx,
		notifier:  notifier,
	}
}

// Execute runs the pipeline for one claimed job.
//
// Failure handling follows one rule: the user's check is refunded for
// every failure that is not their fault, and exactly one terminal
// message is delivered per job. Refunds and failure messages use a
// fresh context because the job context may already be dead.
func (e *AnalysisExecutor) Execute(ctx context.Context, job *ent.AnalysisJob) *ExecutionResult {
	start := time.Now()
	log := slog.With("component", "executor", "job_id", job.ID, privacy.UserAttr(job.UserID))

	scenario, err := models.ParseScenario(job.Scenario)
	if err != nil {
		// Malformed jobs never become runnable again. Dead-letter them
		// so the queue is not poisoned by retries.
		log.Error("Dead-lettering malformed job", "error", err)
		e.refundAndNotify(job, models.FailureInternal, log)
		return &ExecutionResult{
			Status: analysisjob.StatusDead,
			Error:  fmt.Errorf("malformed job: %w", err),
		}
	}

	e.notifier.Stage(ctx, job, models.StageDownloading)

	data, err := e.downloadBlob(ctx, job.BlobKey)
	if err != nil {
		if ctx.Err() != nil {
			// Shutdown or job timeout mid-download: let another attempt
			// (possibly on another pod) pick the job up.
			return &ExecutionResult{
				Status:    analysisjob.StatusFailed,
				Retryable: true,
				Error:     fmt.Errorf("download interrupted: %w", ctx.Err()),
			}
		}
		if job.Attempts < e.config.MaxAttempts {
			log.Warn("Blob download failed, will retry", "error", err)
			return &ExecutionResult{
				Status:    analysisjob.StatusFailed,
				Retryable: true,
				Error:     fmt.Errorf("blob download failed: %w", err),
			}
		}
		log.Error("Blob download failed on final attempt", "error", err)
		e.refundAndNotify(job, models.FailureUnavailable, log)
		return &ExecutionResult{
			Status: analysisjob.StatusFailed,
			Error:  fmt.Errorf("blob download failed: %w", err),
		}
	}

	e.notifier.Stage(ctx, job, models.StageExifExtraction)

	report, err := e.validator.Validate(data)
	if err != nil {
		// The upload handler already validated this image; failing here
		// means the stored blob is unusable.
		log.Error("Stored blob failed validation", "error", err)
		e.refundAndNotify(job, models.FailureInternal, log)
		return &ExecutionResult{
			Status: analysisjob.StatusFailed,
			Error:  fmt.Errorf("stored blob invalid: %w", err),
		}
	}

	e.notifier.Stage(ctx, job, models.StageAIDetection)

	det, err := e.detector.Verify(ctx, fraudlens.VerifyRequest{
		Image:        data,
		Filename:     fmt.Sprintf("upload.%s", report.Format.Ext()),
		DetailLevel:  fraudlens.DetailFor(job.PreserveExif),
		PreserveEXIF: job.PreserveExif,
	})
	if err != nil {
		kind := models.FailureUnavailable
		if errors.Is(err, fraudlens.ErrTimeout) {
			kind = models.FailureTimeout
		}
		log.Error("Detection API call failed", "error", err, "failure_kind", kind)
		e.refundAndNotify(job, kind, log)
		return &ExecutionResult{
			Status: analysisjob.StatusFailed,
			Error:  fmt.Errorf("detection failed: %w", err),
		}
	}

	e.notifier.Stage(ctx, job, models.StageFrequencyAnalysis)
	e.notifier.Stage(ctx, job, models.StageFinalScoring)

	fused := verdict.Fuse(*det)
	analysisID := models.AnalysisIDFor(time.Now(), report.SHA256)

	req := models.CreateAnalysisRequest{
		AnalysisID:       analysisID,
		UserID:           job.UserID,
		Scenario:         scenario,
		Verdict:          fused.Verdict,
		Confidence:       fused.Confidence,
		VerdictReason:    fused.Reason,
		ImageSHA256:      report.SHA256,
		PHash:            report.Fingerprint,
		BlobKey:          job.BlobKey,
		PreserveEXIF:     job.PreserveExif,
		ProcessingTimeMs: int(time.Since(start).Milliseconds()),
		ResultBlob:       resultBlob(det),
	}

	persistErr := e.persistAnalysis(ctx, req)
	if persistErr != nil {
		log.Error("Failed to persist analysis record", "error", persistErr)
	}

	// The verdict is delivered even when persistence failed: the user
	// already paid for the answer with their wait (and a check).
	if err := e.notifier.Result(context.Background(), job, analysisID, fused, det); err != nil {
		log.Warn("Failed to deliver result message", "error", err)
	}

	if persistErr != nil {
		return &ExecutionResult{
			Status:     analysisjob.StatusFailed,
			AnalysisID: analysisID,
			Error:      fmt.Errorf("result delivered but record not persisted: %w", persistErr),
		}
	}

	if err := e.users.RecordUsage(ctx, job.UserID, time.Now()); err != nil {
		log.Warn("Failed to record daily usage", "error", err)
	}

	e.dedup.Remember(context.Background(), job.UserID, report.Fingerprint, analysisID)

	if err := e.store.Delete(context.Background(), job.BlobKey); err != nil {
		// Lifecycle expiry cleans up leftovers.
		log.Warn("Failed to delete analyzed blob", "error", err)
	}

	log.Info("Analysis completed",
		"verdict", fused.Verdict,
		"confidence", fused.Confidence,
		"duration_ms", time.Since(start).Milliseconds())

	return &ExecutionResult{
		Status:     analysisjob.StatusSucceeded,
		AnalysisID: analysisID,
	}
}

// downloadBlob fetches the uploaded image with short in-attempt retries
// against transient store hiccups.
func (e *AnalysisExecutor) downloadBlob(ctx context.Context, key string) ([]byte, error) {
	return retry.DoWithData(
		func() ([]byte, error) {
			return e.store.Get(ctx, key)
		},
		retry.Context(ctx),
		retry.Attempts(blobRetryAttempts),
		retry.Delay(blobRetryDelay),
		retry.LastErrorOnly(true),
	)
}

// persistAnalysis writes the analysis record with short retries.
func (e *AnalysisExecutor) persistAnalysis(ctx context.Context, req models.CreateAnalysisRequest) error {
	return retry.Do(
		func() error {
			_, err := e.analyses.CreateAnalysis(ctx, req)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(persistRetryAttempts),
		retry.Delay(persistRetryDelay),
		retry.LastErrorOnly(true),
	)
}

// refundAndNotify returns the consumed check and tells the user the
// analysis failed. For pro accounts only the lifetime counter is
// walked back; there is no daily balance to restore.
func (e *AnalysisExecutor) refundAndNotify(job *ent.AnalysisJob, kind models.FailureKind, log *slog.Logger) {
	ctx := context.Background()
	if err := e.users.RefundCheck(ctx, job.UserID); err != nil {
		log.Error("Failed to refund check", "error", err)
	}
	if err := e.notifier.Failure(ctx, job, kind); err != nil {
		log.Warn("Failed to deliver failure message", "error", err)
	}
}

// resultBlob flattens the detection payload for the stored record.
func resultBlob(det *models.DetectionResult) map[string]any {
	blob := map[string]any{
		"ai_detection_score":   det.Details.AIDetectionScore,
		"fft_score":            det.Details.FFTScore,
		"metadata_fraud_score": det.Details.MetadataFraudScore,
		"face_swap_score":      det.Details.FaceSwapScore,
		"exif_field_count":     det.Details.ExifFieldCount,
		"screenshot_detected":  det.Details.ScreenshotDetected,
		"c2pa_present":         det.Details.C2PAPresent,
		"watermark_detected":   det.WatermarkDetected,
		"processing_time_ms":   det.ProcessingTimeMs,
	}
	if len(det.Details.RedFlags) > 0 {
		flags := make([]map[string]any, 0, len(det.Details.RedFlags))
		for _, f := range det.Details.RedFlags {
			flags = append(flags, map[string]any{
				"reason":   f.Reason,
				"severity": f.Severity,
			})
		}
		blob["red_flags"] = flags
	}
	if det.Details.Software != nil {
		blob["software"] = *det.Details.Software
	}
	if det.Details.CameraMake != nil {
		blob["camera_make"] = *det.Details.CameraMake
	}
	if det.Details.CameraModel != nil {
		blob["camera_model"] = *det.Details.CameraModel
	}
	if wm := det.Details.VisualWatermark; wm != nil {
		blob["visual_watermark"] = map[string]any{
			"generator":  wm.Generator,
			"confidence": wm.Confidence,
		}
	}
	return blob
}
