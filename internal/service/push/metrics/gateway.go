package metrics

import (
	"context"
	"strconv"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/service/push"
	"github.com/prometheus/client_golang/prometheus"
)

var _ push.Gateway = (*Gateway)(nil)

// Gateway 为推送网关添加指标收集的装饰器
type Gateway struct {
	gateway             push.Gateway
	sendDurationSummary *prometheus.SummaryVec
	sendStatusCounter   *prometheus.CounterVec
	targetCounter       *prometheus.CounterVec
	name                string
}

func NewGateway(name string, g push.Gateway, reg prometheus.Registerer) *Gateway {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "push_gateway_send_duration_seconds",
			Help:       "推送网关发送耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"gateway", "status"},
	)
	sendStatusCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_gateway_send_status_total",
			Help: "推送网关返回的状态码统计",
		},
		[]string{"gateway", "status"},
	)
	targetCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_gateway_targets_total",
			Help: "推送到的注册ID数量，按结果区分",
		},
		[]string{"gateway", "result"},
	)
	reg.MustRegister(sendDurationSummary, sendStatusCounter, targetCounter)

	return &Gateway{
		gateway:             g,
		sendDurationSummary: sendDurationSummary,
		sendStatusCounter:   sendStatusCounter,
		targetCounter:       targetCounter,
		name:                name,
	}
}

func (g *Gateway) Send(ctx context.Context, targets []string, payload []byte, opts push.Options) (push.Response, error) {
	startTime := time.Now()
	resp, err := g.gateway.Send(ctx, targets, payload, opts)
	duration := time.Since(startTime).Seconds()

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	g.sendStatusCounter.WithLabelValues(g.name, status).Inc()
	g.sendDurationSummary.WithLabelValues(g.name, status).Observe(duration)
	if resp.Success > 0 {
		g.targetCounter.WithLabelValues(g.name, "success").Add(float64(resp.Success))
	}
	if resp.Failure > 0 {
		g.targetCounter.WithLabelValues(g.name, "failure").Add(float64(resp.Failure))
	}
	return resp, err
}
