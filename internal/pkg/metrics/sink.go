package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Sink 业务打点，调用方不关心打点是否成功
//
//go:generate mockgen -source=./sink.go -destination=./mocks/sink.mock.go -package=metricsmocks -typed Sink
type Sink interface {
	// Increment 计数加一
	Increment(name, category string)
	Gauge(name string, value float64)
}

type PrometheusSink struct {
	counters *prometheus.CounterVec
	gauges   *prometheus.GaugeVec
}

func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	s := &PrometheusSink{
		counters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "notification_scheduler",
			Name:      "events_total",
			Help:      "业务事件计数",
		}, []string{"category", "name"}),
		gauges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "notification_scheduler",
			Name:      "gauge",
			Help:      "业务指标当前值",
		}, []string{"name"}),
	}
	reg.MustRegister(s.counters, s.gauges)
	return s
}

func (s *PrometheusSink) Increment(name, category string) {
	s.counters.WithLabelValues(category, name).Inc()
}

func (s *PrometheusSink) Gauge(name string, value float64) {
	s.gauges.WithLabelValues(name).Set(value)
}
