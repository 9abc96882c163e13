package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"gitee.com/flycash/notification-scheduler/internal/service/push"
	pushmocks "gitee.com/flycash/notification-scheduler/internal/service/push/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGateway_Send(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := pushmocks.NewMockGateway(ctrl)
	gomock.InOrder(
		mockGateway.EXPECT().Send(gomock.Any(), []string{"a", "b"}, gomock.Any(), gomock.Any()).
			Return(push.Response{StatusCode: http.StatusOK, Success: 1, Failure: 1}, nil),
		mockGateway.EXPECT().Send(gomock.Any(), []string{"a"}, gomock.Any(), gomock.Any()).
			Return(push.Response{}, errors.New("连接超时")),
	)

	reg := prometheus.NewRegistry()
	g := NewGateway("gcm", mockGateway, reg)

	resp, err := g.Send(context.Background(), []string{"a", "b"}, []byte(`{}`), push.Options{})
	require.NoError(t, err)
	assert.True(t, resp.Succeeded())
	_, err = g.Send(context.Background(), []string{"a"}, []byte(`{}`), push.Options{})
	assert.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(g.sendStatusCounter.WithLabelValues("gcm", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(g.sendStatusCounter.WithLabelValues("gcm", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(g.targetCounter.WithLabelValues("gcm", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(g.targetCounter.WithLabelValues("gcm", "failure")))
}
