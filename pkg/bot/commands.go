package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/pkg/models"
	"github.com/sevrusik/turthsnapbot/pkg/notify"
	"github.com/sevrusik/turthsnapbot/pkg/services"
	"github.com/sevrusik/turthsnapbot/pkg/telegram"
)

func (b *Bot) handleCommand(ctx context.Context, msg *telegram.Message) {
	cmd := strings.ToLower(strings.Fields(msg.Text)[0])
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}

	switch cmd {
	case "/start":
		b.cmdStart(ctx, msg)
	case "/help":
		b.reply(ctx, msg.Chat.ID, notify.HelpMessage, nil)
	case "/status":
		b.cmdStatus(ctx, msg)
	case "/support":
		b.reply(ctx, msg.Chat.ID, notify.SupportMessage, nil)
	default:
		b.reply(ctx, msg.Chat.ID, "Unknown command. Try /help.", nil)
	}
}

// cmdStart resets the conversation and shows the scenario selection.
// An in-flight analysis keeps running; only the flow position resets.
func (b *Bot) cmdStart(ctx context.Context, msg *telegram.Message) {
	if _, err := b.users.EnsureUser(ctx, msg.From.ID, msg.From.Username, msg.From.FirstName); err != nil {
		b.logger.Error("Failed to ensure user on /start", "error", err)
	}

	if err := b.states.Clear(ctx, msg.Chat.ID, msg.From.ID); err != nil {
		b.logger.Warn("Failed to clear state on /start", "error", err)
	}
	if err := b.states.Set(ctx, msg.Chat.ID, msg.From.ID, &State{Kind: StateSelectingScenario}); err != nil {
		b.logger.Warn("Failed to set initial state", "error", err)
	}

	b.reply(ctx, msg.Chat.ID, notify.WelcomeMessage, notify.ScenarioSelectionKeyboard())
}

func (b *Bot) cmdStatus(ctx context.Context, msg *telegram.Message) {
	u, err := b.users.EnsureUser(ctx, msg.From.ID, msg.From.Username, msg.From.FirstName)
	if err != nil {
		b.logger.Error("Failed to load user for /status", "error", err)
		b.reply(ctx, msg.Chat.ID, "❌ Could not load your account right now. Please try again.", nil)
		return
	}

	b.reply(ctx, msg.Chat.ID, statusMessage(u), nil)
}

func statusMessage(u *ent.User) string {
	var body strings.Builder
	body.WriteString("📊 <b>Your Account</b>\n\n")

	if services.Tier(u) == models.TierPro {
		body.WriteString("💎 <b>Plan:</b> Pro\n")
		body.WriteString("🔍 <b>Checks:</b> Unlimited\n")
	} else {
		body.WriteString("🆓 <b>Plan:</b> Free\n")
		fmt.Fprintf(&body, "🔍 <b>Checks left today:</b> %d\n", u.DailyChecksRemaining)
		fmt.Fprintf(&body, "🔄 <b>Resets:</b> %s\n", u.QuotaResetDate.UTC().Format("02 Jan 2006, 15:04 UTC"))
	}

	fmt.Fprintf(&body, "📈 <b>Total analyses:</b> %d", u.TotalChecks)
	return body.String()
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string, kb *telegram.InlineKeyboardMarkup) {
	if _, err := b.client.SendMessage(ctx, chatID, text, kb); err != nil && !errIgnorable(err) {
		b.logger.Warn("Failed to send reply", "error", err)
	}
}
