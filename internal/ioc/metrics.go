package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func InitMetricsSink() metrics.Sink {
	return metrics.NewPrometheusSink(prometheus.DefaultRegisterer)
}
