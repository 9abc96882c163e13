package slack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel_PostMessage(t *testing.T) {
	t.Parallel()

	received := make(chan webhookMessage, 2)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got webhookMessage
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		received <- got
		if got.Channel == "#forbidden" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("channel_is_archived"))
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	c := NewChannel(Config{WebhookURL: server.URL, Username: "scheduler"})
	require.NoError(t, c.PostMessage(context.Background(), "#alerts", "投递失败"))
	assert.Equal(t, webhookMessage{Channel: "#alerts", Username: "scheduler", Text: "投递失败"}, <-received)

	err := c.PostMessage(context.Background(), "#forbidden", "投递失败")
	assert.ErrorContains(t, err, "channel_is_archived")
}
