package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/service/push"
	"gitee.com/flycash/notification-scheduler/internal/service/push/gcm"
	"gitee.com/flycash/notification-scheduler/internal/service/push/metrics"
	"gitee.com/flycash/notification-scheduler/internal/service/push/tracing"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
)

// InitPushGateway 外层是 tracing，里面是 metrics，最里面才是真正发请求的 GCM
func InitPushGateway() push.Gateway {
	cfg := gcm.Config{Endpoint: gcm.DefaultEndpoint}
	if err := econf.UnmarshalKey("push.gcm", &cfg); err != nil {
		panic(err)
	}
	g := gcm.NewGateway(cfg)
	return tracing.NewGateway(metrics.NewGateway("gcm", g, prometheus.DefaultRegisterer))
}
