package bot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/sevrusik/turthsnapbot/pkg/imagecheck"
	"github.com/sevrusik/turthsnapbot/pkg/models"
	"github.com/sevrusik/turthsnapbot/pkg/notify"
	"github.com/sevrusik/turthsnapbot/pkg/privacy"
	"github.com/sevrusik/turthsnapbot/pkg/queue"
	"github.com/sevrusik/turthsnapbot/pkg/services"
	"github.com/sevrusik/turthsnapbot/pkg/storage"
	"github.com/sevrusik/turthsnapbot/pkg/telegram"
	"github.com/sevrusik/turthsnapbot/pkg/verdict"
)

const (
	putRetryAttempts = 3
	putRetryDelay    = 500 * time.Millisecond
)

// handleUpload runs the ingest pipeline for a photo or document:
// quota, validation, duplicate check, blob upload, progress message,
// enqueue. A consumed check is refunded on every abort after the
// quota step.
func (b *Bot) handleUpload(ctx context.Context, msg *telegram.Message) {
	log := b.logger.With(privacy.UserAttr(msg.From.ID))

	st, err := b.states.Get(ctx, msg.Chat.ID, msg.From.ID)
	if err != nil {
		log.Warn("Failed to load state for upload, proceeding as general", "error", err)
	}
	scenario := st.UploadScenario()
	isDocument := msg.Document != nil

	u, err := b.users.EnsureUser(ctx, msg.From.ID, msg.From.Username, msg.From.FirstName)
	if err != nil {
		log.Error("Failed to ensure user for upload", "error", err)
		b.reply(ctx, msg.Chat.ID, notify.UploadFailedMessage, nil)
		return
	}

	if err := b.users.ConsumeCheck(ctx, u); err != nil {
		if errors.Is(err, services.ErrQuotaExhausted) {
			b.reply(ctx, msg.Chat.ID, notify.QuotaExhaustedMessage, nil)
			return
		}
		log.Error("Failed to consume check", "error", err)
		b.reply(ctx, msg.Chat.ID, notify.UploadFailedMessage, nil)
		return
	}

	data, err := b.downloadUpload(ctx, msg)
	if err != nil {
		log.Warn("Failed to download upload from Telegram", "error", err)
		b.refund(ctx, msg.From.ID, log)
		b.reply(ctx, msg.Chat.ID, notify.UploadFailedMessage, nil)
		return
	}

	report, err := b.validator.Validate(data)
	if err != nil {
		b.refund(ctx, msg.From.ID, log)
		switch {
		case errors.Is(err, imagecheck.ErrTooLarge):
			b.reply(ctx, msg.Chat.ID, notify.TooLargeMessage(b.cfg.MaxUploadSizeMB), nil)
		case errors.Is(err, imagecheck.ErrUnsupportedFormat):
			b.reply(ctx, msg.Chat.ID, notify.UnsupportedMediaMessage("That file is not a supported image"), nil)
		default:
			log.Warn("Upload validation failed", "error", err)
			b.reply(ctx, msg.Chat.ID, notify.UploadFailedMessage, nil)
		}
		return
	}

	// A generator watermark found during validation settles the verdict
	// without a remote analysis.
	if report.AISoftware != "" {
		b.shortCircuitWatermark(ctx, msg, scenario, report, log)
		return
	}

	if priorID, ok := b.dedup.Lookup(ctx, msg.From.ID, report.Fingerprint); ok {
		b.refund(ctx, msg.From.ID, log)
		b.reply(ctx, msg.Chat.ID, notify.DuplicateMessage(priorID), nil)
		log.Info("Duplicate upload answered from prior analysis")
		return
	}

	blobKey := storage.BlobKey(msg.From.ID, report.Format.Ext())
	if err := b.putBlob(ctx, blobKey, data, contentTypeFor(report.Format)); err != nil {
		log.Error("Failed to store upload blob", "error", err)
		b.refund(ctx, msg.From.ID, log)
		b.reply(ctx, msg.Chat.ID, notify.UploadFailedMessage, nil)
		return
	}

	progress, err := b.client.SendMessage(ctx, msg.Chat.ID, notify.ProgressText(models.StagePreparing), nil)
	if err != nil {
		log.Error("Failed to send progress message", "error", err)
		b.refund(ctx, msg.From.ID, log)
		b.deleteBlob(blobKey, log)
		return
	}

	job, err := b.enqueuer.Enqueue(ctx, queue.EnqueueRequest{
		UserID:            msg.From.ID,
		ChatID:            msg.Chat.ID,
		SourceMessageID:   msg.MessageID,
		ProgressMessageID: progress.MessageID,
		BlobKey:           blobKey,
		FileExt:           report.Format.Ext(),
		Scenario:          scenario,
		Tier:              services.Tier(u),
		PreserveEXIF:      isDocument,
	})
	if err != nil {
		b.refund(ctx, msg.From.ID, log)
		b.deleteBlob(blobKey, log)
		if errors.Is(err, queue.ErrOverloaded) {
			b.editOrSend(ctx, msg.Chat.ID, progress.MessageID, notify.OverloadedMessage, nil)
			return
		}
		log.Error("Failed to enqueue analysis job", "error", err)
		b.editOrSend(ctx, msg.Chat.ID, progress.MessageID, notify.UploadFailedMessage, nil)
		return
	}

	if err := b.states.Set(ctx, msg.Chat.ID, msg.From.ID, &State{
		Kind:              StateAnalysisInFlight,
		Scenario:          scenario,
		JobID:             job.ID,
		ProgressMessageID: progress.MessageID,
	}); err != nil {
		log.Warn("Failed to store in-flight state", "error", err)
	}

	log.Info("Analysis job enqueued",
		"job_id", job.ID,
		"scenario", scenario,
		"preserve_exif", isDocument)
}

// shortCircuitWatermark settles an upload whose EXIF names a known AI
// generator: the verdict is final without calling the remote analysis.
func (b *Bot) shortCircuitWatermark(
	ctx context.Context,
	msg *telegram.Message,
	scenario models.Scenario,
	report *imagecheck.Report,
	log *slog.Logger,
) {
	start := time.Now()
	software := report.AISoftware

	fused := verdict.Result{
		Verdict:    models.VerdictAIGenerated,
		Confidence: 0.98,
		Reason:     "AI generation software recorded in EXIF: " + software,
	}
	det := &models.DetectionResult{
		Verdict:    string(models.VerdictAIGenerated),
		Confidence: 0.98,
		Details: models.Details{
			AIDetectionScore: 1,
			AISoftwareInExif: true,
			Software:         &software,
		},
	}

	analysisID := models.AnalysisIDFor(time.Now(), report.SHA256)
	_, err := b.analyses.CreateAnalysis(ctx, models.CreateAnalysisRequest{
		AnalysisID:       analysisID,
		UserID:           msg.From.ID,
		Scenario:         scenario,
		Verdict:          fused.Verdict,
		Confidence:       fused.Confidence,
		VerdictReason:    fused.Reason,
		ImageSHA256:      report.SHA256,
		PHash:            report.Fingerprint,
		ProcessingTimeMs: int(time.Since(start).Milliseconds()),
		ResultBlob: map[string]any{
			"ai_software_in_exif": true,
			"software":            software,
		},
	})
	if err != nil {
		log.Error("Failed to persist short-circuit analysis", "error", err)
	}

	b.dedup.Remember(ctx, msg.From.ID, report.Fingerprint, analysisID)
	if err := b.users.RecordUsage(ctx, msg.From.ID, time.Now()); err != nil {
		log.Warn("Failed to record usage", "error", err)
	}

	body, kb := b.renderer.RenderResult(ctx, scenario, analysisID, fused, det)
	b.reply(ctx, msg.Chat.ID, body, kb)

	if err := b.states.Set(ctx, msg.Chat.ID, msg.From.ID, &State{
		Kind:       StateReviewingResult,
		Scenario:   scenario,
		AnalysisID: analysisID,
	}); err != nil {
		log.Warn("Failed to store reviewing state", "error", err)
	}

	log.Info("Upload short-circuited on generator watermark", "software", software)
}

// downloadUpload fetches the raw bytes of the attached image. Photos
// come recompressed by Telegram; documents keep their original bytes
// and therefore their EXIF.
func (b *Bot) downloadUpload(ctx context.Context, msg *telegram.Message) ([]byte, error) {
	var fileID string
	if msg.Document != nil {
		fileID = msg.Document.FileID
	} else {
		// The last photo size is the largest.
		fileID = msg.Photo[len(msg.Photo)-1].FileID
	}
	return b.client.DownloadFile(ctx, fileID)
}

func (b *Bot) putBlob(ctx context.Context, key string, data []byte, contentType string) error {
	return retry.Do(
		func() error {
			return b.store.Put(ctx, key, data, contentType)
		},
		retry.Context(ctx),
		retry.Attempts(putRetryAttempts),
		retry.Delay(putRetryDelay),
		retry.LastErrorOnly(true),
	)
}

func (b *Bot) refund(ctx context.Context, userID int64, log *slog.Logger) {
	if err := b.users.RefundCheck(ctx, userID); err != nil {
		log.Error("Failed to refund check", "error", err)
	}
}

func (b *Bot) deleteBlob(key string, log *slog.Logger) {
	if err := b.store.Delete(context.Background(), key); err != nil {
		log.Warn("Failed to delete orphaned blob", "error", err)
	}
}

func contentTypeFor(f imagecheck.Format) string {
	switch f {
	case imagecheck.FormatPNG:
		return "image/png"
	case imagecheck.FormatWebP:
		return "image/webp"
	case imagecheck.FormatHEIC:
		return "image/heic"
	default:
		return "image/jpeg"
	}
}
