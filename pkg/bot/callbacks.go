package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/pkg/models"
	"github.com/sevrusik/turthsnapbot/pkg/notify"
	"github.com/sevrusik/turthsnapbot/pkg/privacy"
	"github.com/sevrusik/turthsnapbot/pkg/services"
	"github.com/sevrusik/turthsnapbot/pkg/telegram"
)

// handleCallback routes a keyboard button press. Every callback is
// acknowledged so the client stops showing a spinner.
func (b *Bot) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) {
	if cb.Message == nil {
		// Message too old for the API to reference; nothing to edit.
		b.answer(ctx, cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID
	userID := cb.From.ID
	log := b.logger.With(privacy.UserAttr(userID))

	if id, ok := strings.CutPrefix(cb.Data, notify.PDFReportPrefix); ok {
		b.handlePDFRequest(ctx, cb, id)
		return
	}

	switch cb.Data {
	case notify.CallbackScenarioSelect:
		if err := b.states.Set(ctx, chatID, userID, &State{Kind: StateSelectingScenario}); err != nil {
			log.Warn("Failed to reset state", "error", err)
		}
		b.editOrSend(ctx, chatID, msgID, notify.WelcomeShortMessage, notify.ScenarioSelectionKeyboard())
		b.answer(ctx, cb.ID, "")

	case notify.CallbackScenarioAdult:
		if err := b.states.Set(ctx, chatID, userID, &State{
			Kind:     StateAdultWaitingForEvidence,
			Scenario: models.ScenarioAdultBlackmail,
		}); err != nil {
			log.Warn("Failed to store state", "error", err)
		}
		b.editOrSend(ctx, chatID, msgID, notify.AdultIntroMessage, notify.MainMenuOnlyKeyboard())
		b.answer(ctx, cb.ID, "")

	case notify.CallbackScenarioTeenager:
		if err := b.states.Set(ctx, chatID, userID, &State{
			Kind:     StateTeenagerStopShown,
			Scenario: models.ScenarioTeenagerSOS,
		}); err != nil {
			log.Warn("Failed to store state", "error", err)
		}
		b.editOrSend(ctx, chatID, msgID, notify.TeenIntroMessage, notify.TeenIntroKeyboard())
		b.answer(ctx, cb.ID, notify.TeenIntroToast)

	case notify.CallbackTeenReady:
		if err := b.states.Set(ctx, chatID, userID, &State{
			Kind:     StateTeenagerWaitingForPhoto,
			Scenario: models.ScenarioTeenagerSOS,
		}); err != nil {
			log.Warn("Failed to store state", "error", err)
		}
		b.editOrSend(ctx, chatID, msgID, notify.TeenReadyMessage, notify.MainMenuOnlyKeyboard())
		b.answer(ctx, cb.ID, "")

	case notify.CallbackKnowledgeBase:
		b.editOrSend(ctx, chatID, msgID, notify.KnowledgeBaseMessage, notify.MainMenuOnlyKeyboard())
		b.answer(ctx, cb.ID, "")

	case notify.CallbackAdultCounterMeasures:
		analysisID := b.reviewedAnalysisID(ctx, chatID, userID)
		b.editOrSend(ctx, chatID, msgID, notify.CounterMeasuresMessage, notify.CounterMeasuresKeyboard(analysisID))
		b.answer(ctx, cb.ID, "")

	case notify.CallbackCounterSafeResponse:
		b.editOrSend(ctx, chatID, msgID, notify.SafeResponseMessage, notify.BackAndMenuKeyboard(notify.CallbackAdultCounterMeasures))
		b.answer(ctx, cb.ID, "")

	case notify.CallbackAdultBackToAnalysis, notify.CallbackTeenBackToResult:
		b.showStoredAnalysis(ctx, cb, log)

	case notify.CallbackTeenTellParents:
		analysisID := b.reviewedAnalysisID(ctx, chatID, userID)
		b.editOrSend(ctx, chatID, msgID, notify.TellParentsMessage, notify.TellParentsKeyboard(analysisID))
		b.answer(ctx, cb.ID, "")

	case notify.CallbackTeenScript:
		b.editOrSend(ctx, chatID, msgID, notify.ConversationScriptMessage, notify.BackAndMenuKeyboard(notify.CallbackTeenTellParents))
		b.answer(ctx, cb.ID, "")

	case notify.CallbackTeenStopSpread:
		b.editOrSend(ctx, chatID, msgID, notify.StopSpreadMessage, notify.StopSpreadKeyboard())
		b.answer(ctx, cb.ID, "")

	case notify.CallbackTeenEducation:
		b.editOrSend(ctx, chatID, msgID, notify.TeenEducationMessage, notify.BackAndMenuKeyboard(notify.CallbackTeenBackToResult))
		b.answer(ctx, cb.ID, "")

	case notify.CallbackGeneralWhatIsAI:
		b.editOrSend(ctx, chatID, msgID, notify.WhatIsAIMessage, notify.MainMenuOnlyKeyboard())
		b.answer(ctx, cb.ID, "")

	case notify.CallbackGeneralSpotFakes:
		b.editOrSend(ctx, chatID, msgID, notify.SpotFakesMessage, notify.MainMenuOnlyKeyboard())
		b.answer(ctx, cb.ID, "")

	default:
		log.Warn("Unknown callback data")
		b.answer(ctx, cb.ID, "")
	}
}

// handlePDFRequest renders and delivers the forensic PDF for an
// analysis the requesting user owns.
func (b *Bot) handlePDFRequest(ctx context.Context, cb *telegram.CallbackQuery, analysisID string) {
	log := b.logger.With(privacy.UserAttr(cb.From.ID), "analysis_id", analysisID)
	chatID := cb.Message.Chat.ID

	record, err := b.analyses.GetAnalysis(ctx, analysisID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			b.answer(ctx, cb.ID, "This analysis has expired.")
			return
		}
		log.Error("Failed to load analysis for PDF", "error", err)
		b.answer(ctx, cb.ID, "Could not load the report. Please try again.")
		return
	}

	if record.UserID != cb.From.ID {
		log.Warn("PDF requested for analysis owned by another user")
		b.answer(ctx, cb.ID, "This report belongs to another user.")
		return
	}

	b.answer(ctx, cb.ID, "Generating PDF report...")

	pdf, err := b.detector.RenderPDF(ctx, pdfPayload(record))
	if err != nil {
		log.Error("PDF rendering failed", "error", err)
		b.reply(ctx, chatID, "❌ PDF generation failed. Please try again later.", nil)
		return
	}

	caption := notify.PDFCaption(record.ID, models.Verdict(record.Verdict), record.Confidence, time.Now())
	filename := fmt.Sprintf("truthsnap-report-%s.pdf", record.ID)
	if _, err := b.client.SendDocument(ctx, chatID, filename, pdf, caption); err != nil {
		log.Error("Failed to send PDF document", "error", err)
		b.reply(ctx, chatID, "❌ Could not deliver the PDF. Please try again later.", nil)
	}
}

// pdfPayload is the analysis record as the PDF renderer expects it.
func pdfPayload(a *ent.Analysis) map[string]any {
	return map[string]any{
		"analysis_id":        a.ID,
		"scenario":           string(a.Scenario),
		"verdict":            string(a.Verdict),
		"confidence":         a.Confidence,
		"verdict_reason":     a.VerdictReason,
		"image_sha256":       a.ImageSha256,
		"processing_time_ms": a.ProcessingTimeMs,
		"created_at":         a.CreatedAt.UTC().Format(time.RFC3339),
		"result":             a.ResultBlob,
	}
}

// showStoredAnalysis re-renders the result summary from the persisted
// record when the user navigates back from an informational page.
func (b *Bot) showStoredAnalysis(ctx context.Context, cb *telegram.CallbackQuery, log *slog.Logger) {
	chatID := cb.Message.Chat.ID
	userID := cb.From.ID

	st, err := b.states.Get(ctx, chatID, userID)
	if err != nil || st == nil || st.AnalysisID == "" {
		b.editOrSend(ctx, chatID, cb.Message.MessageID, notify.WelcomeShortMessage, notify.ScenarioSelectionKeyboard())
		b.answer(ctx, cb.ID, "")
		return
	}

	record, err := b.analyses.GetAnalysis(ctx, st.AnalysisID)
	if err != nil || record.UserID != userID {
		if err != nil {
			log.Warn("Failed to load reviewed analysis", "error", err)
		}
		b.editOrSend(ctx, chatID, cb.Message.MessageID, notify.WelcomeShortMessage, notify.ScenarioSelectionKeyboard())
		b.answer(ctx, cb.ID, "")
		return
	}

	body := storedAnalysisSummary(record)
	kb := notify.ResultKeyboard(models.Scenario(record.Scenario), record.ID, notify.VerdictLabel(models.Verdict(record.Verdict)))
	b.editOrSend(ctx, chatID, cb.Message.MessageID, body, kb)
	b.answer(ctx, cb.ID, "")
}

func storedAnalysisSummary(a *ent.Analysis) string {
	v := models.Verdict(a.Verdict)
	var body strings.Builder
	fmt.Fprintf(&body, "%s <b>%s (%.1f%%)</b>\n\n", notify.VerdictEmoji(v), notify.VerdictLabel(v), a.Confidence*100)
	if a.VerdictReason != "" {
		fmt.Fprintf(&body, "%s\n\n", a.VerdictReason)
	}
	fmt.Fprintf(&body, "🔐 <b>SHA-256:</b> <code>%s</code>\n", a.ImageSha256)
	fmt.Fprintf(&body, "📄 <b>Analysis ID:</b> <code>%s</code>", a.ID)
	return body.String()
}

// reviewedAnalysisID returns the analysis the user is reviewing, or ""
// when the state has expired. Keyboards built with an empty id still
// work for navigation; only the PDF button becomes a no-op.
func (b *Bot) reviewedAnalysisID(ctx context.Context, chatID, userID int64) string {
	st, err := b.states.Get(ctx, chatID, userID)
	if err != nil || st == nil {
		return ""
	}
	return st.AnalysisID
}

func (b *Bot) answer(ctx context.Context, callbackID, text string) {
	if err := b.client.AnswerCallbackQuery(ctx, callbackID, text); err != nil && !errIgnorable(err) {
		b.logger.Warn("Failed to answer callback query", "error", err)
	}
}
