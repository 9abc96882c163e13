package tracing

import (
	"context"

	"gitee.com/flycash/notification-scheduler/internal/service/push"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ push.Gateway = (*Gateway)(nil)

// Gateway 为推送网关添加链路追踪的装饰器
type Gateway struct {
	gateway push.Gateway
	tracer  trace.Tracer
}

func NewGateway(g push.Gateway) *Gateway {
	return &Gateway{
		gateway: g,
		tracer:  otel.Tracer("notification-scheduler/push"),
	}
}

func (g *Gateway) Send(ctx context.Context, targets []string, payload []byte, opts push.Options) (push.Response, error) {
	ctx, span := g.tracer.Start(ctx, "Gateway.Send",
		trace.WithAttributes(
			attribute.Int("push.targets", len(targets)),
			attribute.Int("push.payload_size", len(payload)),
			attribute.String("push.collapse_key", opts.CollapseKey),
		))
	defer span.End()

	resp, err := g.gateway.Send(ctx, targets, payload, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return resp, err
	}
	span.SetAttributes(
		attribute.Int("push.status_code", resp.StatusCode),
		attribute.Int("push.success", resp.Success),
		attribute.Int("push.failure", resp.Failure),
	)
	if !resp.Succeeded() {
		span.SetStatus(codes.Error, resp.Status)
	}
	return resp, nil
}
