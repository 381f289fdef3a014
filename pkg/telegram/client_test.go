package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithBaseURL("123:abc", srv.URL)
}

func TestSendMessage(t *testing.T) {
	var captured map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot123:abc/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":42,"chat":{"id":7,"type":"private"}}}`)
	})

	keyboard := Keyboard(Row(CallbackButton("Back", "menu:back")))
	msg, err := client.SendMessage(context.Background(), 7, "<b>hello</b>", keyboard)
	require.NoError(t, err)

	assert.Equal(t, int64(42), msg.MessageID)
	assert.Equal(t, "HTML", captured["parse_mode"])
	assert.Equal(t, "<b>hello</b>", captured["text"])
	assert.NotNil(t, captured["reply_markup"])
}

func TestEditMessageText_NotModifiedIsSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok":false,"error_code":400,"description":"Bad Request: message is not modified"}`)
	})

	err := client.EditMessageText(context.Background(), 7, 42, "same text", nil)
	assert.NoError(t, err)
}

func TestAPIError_RetryAfter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 17","parameters":{"retry_after":17}}`)
	})

	_, err := client.SendMessage(context.Background(), 7, "hi", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 429, apiErr.Code)
	assert.Equal(t, 17, apiErr.RetryAfter)
}

func TestGetUpdates_DecodesCallbackQueries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(100), body["offset"])
		fmt.Fprint(w, `{"ok":true,"result":[
			{"update_id":100,"message":{"message_id":1,"chat":{"id":7,"type":"private"},"text":"/start"}},
			{"update_id":101,"callback_query":{"id":"cb1","from":{"id":9,"first_name":"A"},"data":"scenario:select"}}
		]}`)
	})

	updates, err := client.GetUpdates(context.Background(), 100, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, updates, 2)

	assert.Equal(t, "/start", updates[0].Message.Text)
	require.NotNil(t, updates[1].CallbackQuery)
	assert.Equal(t, "scenario:select", updates[1].CallbackQuery.Data)
}

func TestDownloadFile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bot123:abc/getFile":
			fmt.Fprint(w, `{"ok":true,"result":{"file_id":"f1","file_path":"photos/file_1.jpg"}}`)
		case "/file/bot123:abc/photos/file_1.jpg":
			w.Write([]byte{0xFF, 0xD8, 0xFF})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	data, err := client.DownloadFile(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, data)
}

func TestDownloadFile_EmptyPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok":true,"result":{"file_id":"f1"}}`)
	})

	_, err := client.DownloadFile(context.Background(), "f1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty file_path")
}
