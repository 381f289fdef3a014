package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevrusik/turthsnapbot/pkg/ratelimit"
	"github.com/sevrusik/turthsnapbot/pkg/telegram"
)

func messageUpdate(userID, chatID int64, text string) telegram.Update {
	return telegram.Update{
		UpdateID: 1,
		Message: &telegram.Message{
			MessageID: 10,
			From:      &telegram.User{ID: userID, FirstName: "Test"},
			Chat:      telegram.Chat{ID: chatID, Type: "private"},
			Text:      text,
		},
	}
}

func photoUpdate(userID, chatID int64) telegram.Update {
	upd := messageUpdate(userID, chatID, "")
	upd.Message.Photo = []telegram.PhotoSize{{FileID: "small"}, {FileID: "large"}}
	return upd
}

func callbackUpdate(userID, chatID int64, data string) telegram.Update {
	return telegram.Update{
		UpdateID: 2,
		CallbackQuery: &telegram.CallbackQuery{
			ID:   "cb1",
			From: telegram.User{ID: userID},
			Message: &telegram.Message{
				MessageID: 20,
				Chat:      telegram.Chat{ID: chatID, Type: "private"},
			},
			Data: data,
		},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		update   telegram.Update
		expected eventKind
	}{
		{"command", messageUpdate(1, 1, "/start"), eventCommand},
		{"text", messageUpdate(1, 1, "hello"), eventText},
		{"photo", photoUpdate(1, 1), eventUpload},
		{"callback", callbackUpdate(1, 1, "scenario:select"), eventCallback},
		{"empty", telegram.Update{}, eventIgnored},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classify(tt.update))
		})
	}
}

func TestClassifyDocumentIsUpload(t *testing.T) {
	upd := messageUpdate(1, 1, "")
	upd.Message.Document = &telegram.Document{FileID: "doc", FileName: "photo.jpg"}
	assert.Equal(t, eventUpload, classify(upd))
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next HandlerFunc) HandlerFunc {
			return func(ctx context.Context, upd telegram.Update) {
				order = append(order, name)
				next(ctx, upd)
			}
		}
	}

	h := Chain(func(context.Context, telegram.Update) {
		order = append(order, "handler")
	}, mw("first"), mw("second"))

	h(context.Background(), messageUpdate(1, 1, "hi"))
	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestLoggingMiddlewareSkipsIgnoredUpdates(t *testing.T) {
	called := false
	h := Chain(func(context.Context, telegram.Update) {
		called = true
	}, LoggingMiddleware(slog.Default()))

	h(context.Background(), telegram.Update{})
	assert.False(t, called)

	h(context.Background(), messageUpdate(1, 1, "hello"))
	assert.True(t, called)
}

func TestRateLimitMiddlewareShortCircuits(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	limiter := ratelimit.NewLimiter(rdb, 2, time.Minute)

	var sent []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if text, ok := body["text"].(string); ok {
			sent = append(sent, text)
		}
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"chat":{"id":7,"type":"private"}}}`)
	}))
	t.Cleanup(srv.Close)
	client := telegram.NewClientWithBaseURL("123:abc", srv.URL)

	handled := 0
	h := Chain(func(context.Context, telegram.Update) {
		handled++
	}, RateLimitMiddleware(limiter, client))

	upd := messageUpdate(42, 7, "hello")
	h(context.Background(), upd)
	h(context.Background(), upd)
	h(context.Background(), upd)

	assert.Equal(t, 2, handled)
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "Too many requests")
}

func TestRateLimitMiddlewareIsPerUser(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	limiter := ratelimit.NewLimiter(rdb, 1, time.Minute)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"ok":true,"result":{}}`)
	}))
	t.Cleanup(srv.Close)
	client := telegram.NewClientWithBaseURL("123:abc", srv.URL)

	handled := map[int64]int{}
	h := Chain(func(_ context.Context, upd telegram.Update) {
		handled[upd.Message.From.ID]++
	}, RateLimitMiddleware(limiter, client))

	h(context.Background(), messageUpdate(42, 7, "a"))
	h(context.Background(), messageUpdate(42, 7, "b"))
	h(context.Background(), messageUpdate(43, 7, "c"))

	assert.Equal(t, 1, handled[42])
	assert.Equal(t, 1, handled[43])
}
