package bot

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/sevrusik/turthsnapbot/pkg/notify"
	"github.com/sevrusik/turthsnapbot/pkg/privacy"
	"github.com/sevrusik/turthsnapbot/pkg/ratelimit"
	"github.com/sevrusik/turthsnapbot/pkg/telegram"
)

// HandlerFunc processes one update.
type HandlerFunc func(ctx context.Context, upd telegram.Update)

// Middleware wraps a handler. Middlewares run in a fixed order:
// logging, rate limiting, then dispatch. A middleware short-circuits
// by replying and not calling next.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain composes middlewares so the first listed runs outermost.
func Chain(h HandlerFunc, mws ...Middleware) HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type eventKind string

const (
	eventCommand  eventKind = "command"
	eventText     eventKind = "text"
	eventUpload   eventKind = "upload"
	eventCallback eventKind = "callback"
	eventIgnored  eventKind = "ignored"
)

func classify(upd telegram.Update) eventKind {
	switch {
	case upd.CallbackQuery != nil:
		return eventCallback
	case upd.Message == nil || upd.Message.From == nil:
		return eventIgnored
	case len(upd.Message.Photo) > 0 || upd.Message.Document != nil:
		return eventUpload
	case len(upd.Message.Text) > 0 && upd.Message.Text[0] == '/':
		return eventCommand
	case upd.Message.Text != "":
		return eventText
	default:
		return eventIgnored
	}
}

// updateActor returns the acting user and chat for an update.
// ok is false for updates with no identifiable sender.
func updateActor(upd telegram.Update) (userID, chatID int64, ok bool) {
	switch {
	case upd.CallbackQuery != nil:
		cb := upd.CallbackQuery
		if cb.Message == nil {
			return cb.From.ID, 0, false
		}
		return cb.From.ID, cb.Message.Chat.ID, true
	case upd.Message != nil && upd.Message.From != nil:
		return upd.Message.From.ID, upd.Message.Chat.ID, true
	default:
		return 0, 0, false
	}
}

// LoggingMiddleware records every handled event with the anonymized
// user id and handling latency. Raw user ids, message text, and image
// bytes are never logged.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, upd telegram.Update) {
			kind := classify(upd)
			if kind == eventIgnored {
				return
			}

			userID, _, _ := updateActor(upd)
			start := time.Now()
			next(ctx, upd)
			logger.Info("Handled update",
				privacy.UserAttr(userID),
				"event_kind", string(kind),
				"latency_ms", time.Since(start).Milliseconds())
		}
	}
}

// RateLimitMiddleware rejects users who exceed the sliding-window
// budget, telling them how long to wait. The limiter fails open on
// store errors.
func RateLimitMiddleware(limiter *ratelimit.Limiter, client *telegram.Client) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, upd telegram.Update) {
			userID, chatID, ok := updateActor(upd)
			if !ok {
				return
			}

			decision := limiter.Allow(ctx, userID)
			if decision.Allowed {
				next(ctx, upd)
				return
			}

			wait := int(math.Ceil(decision.RetryAfter.Seconds()))
			if wait < 1 {
				wait = 1
			}

			if cb := upd.CallbackQuery; cb != nil {
				if err := client.AnswerCallbackQuery(ctx, cb.ID, notify.RateLimitedMessage(wait)); err != nil {
					slog.Warn("Failed to answer rate-limited callback", "error", err)
				}
				return
			}
			if _, err := client.SendMessage(ctx, chatID, notify.RateLimitedMessage(wait), nil); err != nil {
				slog.Warn("Failed to send rate limit reply", "error", err)
			}
		}
	}
}
