package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/pkg/models"
	"github.com/sevrusik/turthsnapbot/pkg/privacy"
	"github.com/sevrusik/turthsnapbot/pkg/telegram"
	"github.com/sevrusik/turthsnapbot/pkg/verdict"
)

type stageText struct {
	emoji   string
	title   string
	details string
}

var stageTexts = map[models.Stage]stageText{
	models.StagePreparing: {
		emoji: "⏳",
		title: "Preparing analysis",
	},
	models.StageDownloading: {
		emoji:   "📥",
		title:   "Retrieving image from cloud",
		details: "⏱ ETA: ~20 seconds",
	},
	models.StageExifExtraction: {
		emoji: "🔍",
		title: "Extracting metadata",
		details: "Analyzing:\n" +
			"• Camera fingerprint\n" +
			"• GPS coordinates\n" +
			"• Edit history\n" +
			"• Timestamps",
	},
	models.StageAIDetection: {
		emoji: "🤖",
		title: "AI detectors running",
		details: "Deep analysis:\n" +
			"• GAN pattern detection\n" +
			"• Diffusion model signatures\n" +
			"• Face-swap artifacts\n" +
			"• Watermark detection",
	},
	models.StageFrequencyAnalysis: {
		emoji: "🔬",
		title: "Frequency domain analysis",
		details: "Running forensic tests:\n" +
			"• FFT pattern analysis\n" +
			"• Compression artifacts\n" +
			"• Smoothing detection",
	},
	models.StageFinalScoring: {
		emoji:   "📊",
		title:   "Generating final report",
		details: "Almost done...",
	},
}

// ProgressText renders the body of the in-place progress message for
// one stage.
func ProgressText(stage models.Stage) string {
	t, ok := stageTexts[stage]
	if !ok {
		t = stageText{emoji: "⏳", title: string(stage)}
	}

	msg := fmt.Sprintf("%s <b>%s</b>\n\n", t.emoji, t.title)
	if t.details != "" {
		msg += t.details + "\n\n"
	}
	msg += "━━━━━━━━━━━━━━━━━━━━\n"
	msg += "<i>Analysis in progress...</i>"
	return msg
}

// ResultStateRecorder moves the conversation into its reviewing
// position once a result message has been delivered.
type ResultStateRecorder interface {
	RecordResultDelivered(ctx context.Context, chatID, userID int64, scenario models.Scenario, analysisID string)
}

// TelegramNotifier delivers progress, result, and failure messages by
// editing the progress message that was sent at enqueue time.
type TelegramNotifier struct {
	client   *telegram.Client
	renderer *Renderer
	states   ResultStateRecorder
}

// NewTelegramNotifier creates a TelegramNotifier. states may be nil
// when no conversation flow should track deliveries.
func NewTelegramNotifier(client *telegram.Client, renderer *Renderer, states ResultStateRecorder) *TelegramNotifier {
	return &TelegramNotifier{client: client, renderer: renderer, states: states}
}

// Stage edits the progress message in place. Edit failures never fail
// the analysis; they are logged and swallowed. Re-emitting the same
// stage is harmless because the platform rejects identical edits.
func (n *TelegramNotifier) Stage(ctx context.Context, job *ent.AnalysisJob, stage models.Stage) {
	err := n.client.EditMessageText(ctx, job.ChatID, job.ProgressMessageID, ProgressText(stage), nil)
	if err != nil && !telegram.IsNotModified(err) {
		slog.Warn("Failed to update progress message",
			"component", "notify",
			"job_id", job.ID,
			"stage", stage,
			"error", err)
	}
}

// Result replaces the progress message with the final verdict and its
// scenario keyboard. When the edit fails, for example because the
// message was deleted, the result is sent as a fresh message instead.
func (n *TelegramNotifier) Result(
	ctx context.Context,
	job *ent.AnalysisJob,
	analysisID string,
	fused verdict.Result,
	det *models.DetectionResult,
) error {
	scenario, err := models.ParseScenario(job.Scenario)
	if err != nil {
		scenario = models.ScenarioGeneral
	}

	body, keyboard := n.renderer.RenderResult(ctx, scenario, analysisID, fused, det)

	err = n.client.EditMessageText(ctx, job.ChatID, job.ProgressMessageID, body, keyboard)
	if err == nil || telegram.IsNotModified(err) {
		n.recordDelivered(ctx, job.ChatID, job.UserID, scenario, analysisID)
		return nil
	}

	slog.Warn("Result edit failed, sending as new message",
		"component", "notify",
		"job_id", job.ID,
		privacy.UserAttr(job.UserID),
		"error", err)

	if _, sendErr := n.client.SendMessage(ctx, job.ChatID, body, keyboard); sendErr != nil {
		return fmt.Errorf("delivering result: %w", sendErr)
	}
	n.recordDelivered(ctx, job.ChatID, job.UserID, scenario, analysisID)
	return nil
}

func (n *TelegramNotifier) recordDelivered(ctx context.Context, chatID, userID int64, scenario models.Scenario, analysisID string) {
	if n.states != nil {
		n.states.RecordResultDelivered(ctx, chatID, userID, scenario, analysisID)
	}
}

// Failure replaces the progress message with a failure notice.
func (n *TelegramNotifier) Failure(ctx context.Context, job *ent.AnalysisJob, kind models.FailureKind) error {
	body := RenderFailure(kind)

	err := n.client.EditMessageText(ctx, job.ChatID, job.ProgressMessageID, body, nil)
	if err == nil || telegram.IsNotModified(err) {
		return nil
	}

	if _, sendErr := n.client.SendMessage(ctx, job.ChatID, body, nil); sendErr != nil {
		return fmt.Errorf("delivering failure notice: %w", sendErr)
	}
	return nil
}
