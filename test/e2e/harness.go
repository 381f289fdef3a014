// Package e2e exercises the bot end to end: real PostgreSQL, real
// Redis semantics via miniredis, and a fake Bot API server standing in
// for Telegram. Tests feed updates through the fake server and assert
// on the calls the bot makes back.
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/sevrusik/turthsnapbot/pkg/bot"
	"github.com/sevrusik/turthsnapbot/pkg/config"
	"github.com/sevrusik/turthsnapbot/pkg/dedup"
	"github.com/sevrusik/turthsnapbot/pkg/imagecheck"
	"github.com/sevrusik/turthsnapbot/pkg/notify"
	"github.com/sevrusik/turthsnapbot/pkg/queue"
	"github.com/sevrusik/turthsnapbot/pkg/ratelimit"
	"github.com/sevrusik/turthsnapbot/pkg/services"
	"github.com/sevrusik/turthsnapbot/pkg/telegram"
	testdb "github.com/sevrusik/turthsnapbot/test/database"
)

// apiCall is one request the bot made against the fake Bot API.
type apiCall struct {
	Method string
	Body   map[string]any
}

// Text returns the "text" field of the call body, if any.
func (c apiCall) Text() string {
	s, _ := c.Body["text"].(string)
	return s
}

// fakeTelegram implements just enough of the Bot API for the
// dispatcher: getUpdates drains a queue, everything else is recorded
// and acknowledged.
type fakeTelegram struct {
	server  *httptest.Server
	updates chan telegram.Update

	mu        sync.Mutex
	calls     []apiCall
	messageID int64
}

func newFakeTelegram() *fakeTelegram {
	f := &fakeTelegram{updates: make(chan telegram.Update, 16)}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *fakeTelegram) handle(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

	if method == "getUpdates" {
		f.serveUpdates(w)
		return
	}

	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.calls = append(f.calls, apiCall{Method: method, Body: body})
	f.messageID++
	id := f.messageID
	f.mu.Unlock()

	chatID := int64(0)
	if v, ok := body["chat_id"].(float64); ok {
		chatID = int64(v)
	}
	fmt.Fprintf(w, `{"ok":true,"result":{"message_id":%d,"chat":{"id":%d,"type":"private"}}}`, id, chatID)
}

// serveUpdates returns at most one queued update per poll, or an empty
// batch after a short wait. Short enough to keep tests fast, long
// enough to avoid a busy loop.
func (f *fakeTelegram) serveUpdates(w http.ResponseWriter) {
	select {
	case upd := <-f.updates:
		raw, _ := json.Marshal([]telegram.Update{upd})
		fmt.Fprintf(w, `{"ok":true,"result":%s}`, raw)
	case <-time.After(50 * time.Millisecond):
		fmt.Fprint(w, `{"ok":true,"result":[]}`)
	}
}

func (f *fakeTelegram) callsOf(method string) []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []apiCall
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// harness runs a full bot against the fake Bot API.
type harness struct {
	t  *testing.T
	tg *fakeTelegram

	States *bot.StateStore

	nextUpdateID int64
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	dbClient := testdb.NewTestClient(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	tg := newFakeTelegram()
	t.Cleanup(tg.server.Close)

	cfg := &config.Config{
		Telegram:        config.TelegramConfig{Token: "123:abc", PollTimeout: time.Second},
		Queue:           config.DefaultQueueConfig(),
		Quota:           config.QuotaConfig{FreeChecksPerDay: 3},
		MaxUploadSizeMB: 20,
		DuplicateWindow: 24 * time.Hour,
	}

	client := telegram.NewClientWithBaseURL(cfg.Telegram.Token, tg.server.URL)
	states := bot.NewStateStore(rdb)

	b := bot.New(bot.Deps{
		Client:    client,
		Config:    cfg,
		States:    states,
		Limiter:   ratelimit.NewLimiter(rdb, 100, time.Minute),
		Users:     services.NewUserService(dbClient.Client, cfg.Quota),
		Analyses:  services.NewAnalysisService(dbClient.Client),
		Validator: imagecheck.NewValidator(cfg.MaxUploadSizeMB),
		Dedup:     dedup.NewIndex(rdb, cfg.DuplicateWindow),
		Enqueuer:  queue.NewEnqueuer(dbClient.Client, cfg.Queue),
		Renderer:  notify.NewRenderer(notify.NewGeocoder()),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return &harness{t: t, tg: tg, States: states}
}

// sendMessage pushes a user text message into the update queue.
func (h *harness) sendMessage(userID, chatID int64, text string) {
	h.nextUpdateID++
	h.tg.updates <- telegram.Update{
		UpdateID: h.nextUpdateID,
		Message: &telegram.Message{
			MessageID: h.nextUpdateID,
			From:      &telegram.User{ID: userID, Username: "e2e", FirstName: "E2E"},
			Chat:      telegram.Chat{ID: chatID, Type: "private"},
			Text:      text,
		},
	}
}

// pressButton pushes a callback query as if the user tapped an inline
// keyboard button on the given message.
func (h *harness) pressButton(userID, chatID, messageID int64, data string) {
	h.nextUpdateID++
	h.tg.updates <- telegram.Update{
		UpdateID: h.nextUpdateID,
		CallbackQuery: &telegram.CallbackQuery{
			ID:   fmt.Sprintf("cb-%d", h.nextUpdateID),
			From: telegram.User{ID: userID},
			Message: &telegram.Message{
				MessageID: messageID,
				Chat:      telegram.Chat{ID: chatID, Type: "private"},
			},
			Data: data,
		},
	}
}

// waitForCall blocks until the bot has made a call of the given method
// whose text contains substr, and returns it.
func (h *harness) waitForCall(method, substr string) apiCall {
	h.t.Helper()
	var found apiCall
	require.Eventually(h.t, func() bool {
		for _, c := range h.tg.callsOf(method) {
			if strings.Contains(c.Text(), substr) {
				found = c
				return true
			}
		}
		return false
	}, 5*time.Second, 20*time.Millisecond, "no %s call containing %q", method, substr)
	return found
}

// answeredCallbacks returns how many callback queries were acknowledged.
func (h *harness) answeredCallbacks() int {
	return len(h.tg.callsOf("answerCallbackQuery"))
}
