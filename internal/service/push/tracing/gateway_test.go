package tracing

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"gitee.com/flycash/notification-scheduler/internal/service/push"
	pushmocks "gitee.com/flycash/notification-scheduler/internal/service/push/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

func TestGateway_Send(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := pushmocks.NewMockGateway(ctrl)
	gomock.InOrder(
		mockGateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(push.Response{StatusCode: http.StatusOK, Success: 2}, nil),
		mockGateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(push.Response{}, errors.New("连接超时")),
	)

	g := NewGateway(mockGateway)
	_, err := g.Send(context.Background(), []string{"a", "b"}, []byte(`{}`), push.Options{})
	require.NoError(t, err)
	_, err = g.Send(context.Background(), []string{"a"}, []byte(`{}`), push.Options{})
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "Gateway.Send", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
