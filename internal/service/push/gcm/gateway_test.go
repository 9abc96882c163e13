package gcm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/errs"
	"gitee.com/flycash/notification-scheduler/internal/service/push"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_Send(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		handler http.HandlerFunc
		targets []string
		assert  func(t *testing.T, resp push.Response, err error)
	}{
		{
			name: "发送成功",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "key=test-key", r.Header.Get("Authorization"))
				body, _ := io.ReadAll(r.Body)
				var req sendRequest
				assert.NoError(t, json.Unmarshal(body, &req))
				assert.Equal(t, []string{"a", "b"}, req.RegistrationIDs)
				assert.Equal(t, "messages", req.CollapseKey)
				assert.Equal(t, int64(3600), req.TimeToLive)
				assert.JSONEq(t, `{"id":1}`, string(req.Data))
				_, _ = w.Write([]byte(`{"multicast_id":1,"success":1,"failure":1,"canonical_ids":0,
					"results":[{"message_id":"0:1"},{"error":"NotRegistered"}]}`))
			},
			targets: []string{"a", "b"},
			assert: func(t *testing.T, resp push.Response, err error) {
				require.NoError(t, err)
				assert.True(t, resp.Succeeded())
				assert.Equal(t, 1, resp.Success)
				assert.Equal(t, 1, resp.Failure)
				require.Len(t, resp.Results, 2)
				assert.Equal(t, "0:1", resp.Results[0].MessageID)
				assert.Equal(t, []string{"b"}, resp.InvalidTargets())
				assert.NotEmpty(t, resp.Raw)
			},
		},
		{
			name: "没有注册ID也照样发送",
			handler: func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				assert.Contains(t, string(body), `"registration_ids":[]`)
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte("registration_ids field cannot be empty"))
			},
			assert: func(t *testing.T, resp push.Response, err error) {
				require.NoError(t, err)
				assert.False(t, resp.Succeeded())
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
				assert.Empty(t, resp.Raw)
			},
		},
		{
			name: "鉴权失败",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			targets: []string{"a"},
			assert: func(t *testing.T, resp push.Response, err error) {
				require.NoError(t, err)
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
				assert.Empty(t, resp.Results)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			g := NewGateway(Config{Endpoint: server.URL, APIKey: "test-key", Timeout: time.Second})
			resp, err := g.Send(context.Background(), tc.targets, []byte(`{"id":1}`), push.Options{
				CollapseKey: "messages",
				TimeToLive:  time.Hour,
			})
			tc.assert(t, resp, err)
		})
	}
}

func TestGateway_TransportError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := server.URL
	server.Close()

	g := NewGateway(Config{Endpoint: endpoint, APIKey: "test-key", Timeout: time.Second})
	_, err := g.Send(context.Background(), []string{"a"}, []byte(`{}`), push.Options{})
	assert.ErrorIs(t, err, errs.ErrGatewaySendFailed)
}
