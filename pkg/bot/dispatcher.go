package bot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sevrusik/turthsnapbot/pkg/config"
	"github.com/sevrusik/turthsnapbot/pkg/dedup"
	"github.com/sevrusik/turthsnapbot/pkg/fraudlens"
	"github.com/sevrusik/turthsnapbot/pkg/imagecheck"
	"github.com/sevrusik/turthsnapbot/pkg/notify"
	"github.com/sevrusik/turthsnapbot/pkg/queue"
	"github.com/sevrusik/turthsnapbot/pkg/ratelimit"
	"github.com/sevrusik/turthsnapbot/pkg/services"
	"github.com/sevrusik/turthsnapbot/pkg/storage"
	"github.com/sevrusik/turthsnapbot/pkg/telegram"
)

// pollErrorBackoff spaces out retries when getUpdates itself fails.
const pollErrorBackoff = 3 * time.Second

// Bot wires the Telegram front end together and runs the long-poll
// loop. Updates from one getUpdates batch are dispatched serially in
// arrival order, matching the ordering the platform guarantees per
// chat.
type Bot struct {
	client    *telegram.Client
	cfg       *config.Config
	states    *StateStore
	users     *services.UserService
	analyses  *services.AnalysisService
	validator *imagecheck.Validator
	store     *storage.Store
	dedup     *dedup.Index
	enqueuer  *queue.Enqueuer
	detector  *fraudlens.Client
	renderer  *notify.Renderer

	handler HandlerFunc
	logger  *slog.Logger
}

// Deps carries the collaborators a Bot needs.
type Deps struct {
	Client    *telegram.Client
	Config    *config.Config
	States    *StateStore
	Limiter   *ratelimit.Limiter
	Users     *services.UserService
	Analyses  *services.AnalysisService
	Validator *imagecheck.Validator
	Store     *storage.Store
	Dedup     *dedup.Index
	Enqueuer  *queue.Enqueuer
	Detector  *fraudlens.Client
	Renderer  *notify.Renderer
}

// New creates a Bot with the fixed middleware order: logging, rate
// limiting, dispatch.
func New(deps Deps) *Bot {
	b := &Bot{
		client:    deps.Client,
		cfg:       deps.Config,
		states:    deps.States,
		users:     deps.Users,
		analyses:  deps.Analyses,
		validator: deps.Validator,
		store:     deps.Store,
		dedup:     deps.Dedup,
		enqueuer:  deps.Enqueuer,
		detector:  deps.Detector,
		renderer:  deps.Renderer,
		logger:    slog.With("component", "bot"),
	}
	b.handler = Chain(
		b.dispatch,
		LoggingMiddleware(b.logger),
		RateLimitMiddleware(deps.Limiter, deps.Client),
	)
	return b
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	b.logger.Info("Bot dispatcher started")
	var offset int64

	for {
		updates, err := b.client.GetUpdates(ctx, offset, b.cfg.Telegram.PollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				b.logger.Info("Bot dispatcher stopped")
				return
			}
			b.logger.Error("getUpdates failed", "error", err)
			select {
			case <-time.After(pollErrorBackoff):
			case <-ctx.Done():
				b.logger.Info("Bot dispatcher stopped")
				return
			}
			continue
		}

		for _, upd := range updates {
			offset = upd.UpdateID + 1
			b.handler(ctx, upd)
		}
	}
}

// dispatch routes one update to its handler based on event kind and
// conversation state.
func (b *Bot) dispatch(ctx context.Context, upd telegram.Update) {
	switch classify(upd) {
	case eventCallback:
		b.handleCallback(ctx, upd.CallbackQuery)
	case eventCommand:
		b.handleCommand(ctx, upd.Message)
	case eventUpload:
		b.handleUpload(ctx, upd.Message)
	case eventText:
		b.handleText(ctx, upd.Message)
	}
}

// handleText nudges users who type instead of uploading.
func (b *Bot) handleText(ctx context.Context, msg *telegram.Message) {
	st, err := b.states.Get(ctx, msg.Chat.ID, msg.From.ID)
	if err != nil {
		b.logger.Warn("Failed to load state for text message", "error", err)
	}

	var reply string
	switch {
	case st == nil:
		b.sendWelcome(ctx, msg.Chat.ID)
		return
	case st.Kind == StateAdultWaitingForEvidence,
		st.Kind == StateTeenagerWaitingForPhoto,
		st.Kind == StateTeenagerStopShown:
		reply = "📸 Please send the photo you want analyzed.\n\n💡 Sending it as a file preserves the most evidence."
	case st.Kind == StateAnalysisInFlight:
		reply = "⏳ Your analysis is still running. I'll update the progress message above."
	default:
		b.sendWelcome(ctx, msg.Chat.ID)
		return
	}

	if _, err := b.client.SendMessage(ctx, msg.Chat.ID, reply, nil); err != nil {
		b.logger.Warn("Failed to send hint reply", "error", err)
	}
}

func (b *Bot) sendWelcome(ctx context.Context, chatID int64) {
	if _, err := b.client.SendMessage(ctx, chatID, notify.WelcomeMessage, notify.ScenarioSelectionKeyboard()); err != nil {
		b.logger.Warn("Failed to send welcome", "error", err)
	}
}

// editOrSend edits the message a callback originated from, sending a
// fresh message when the edit is rejected.
func (b *Bot) editOrSend(ctx context.Context, chatID, messageID int64, text string, kb *telegram.InlineKeyboardMarkup) {
	err := b.client.EditMessageText(ctx, chatID, messageID, text, kb)
	if err == nil || telegram.IsNotModified(err) {
		return
	}
	if _, err := b.client.SendMessage(ctx, chatID, text, kb); err != nil {
		b.logger.Warn("Failed to deliver page", "error", err)
	}
}

// errIgnorable filters context cancellation out of warn logs during
// shutdown.
func errIgnorable(err error) bool {
	return errors.Is(err, context.Canceled)
}
