package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/pkg/metrics"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/service/alert"
	"gitee.com/flycash/notification-scheduler/internal/service/delivery"
	"gitee.com/flycash/notification-scheduler/internal/service/push"
	"github.com/gotomicro/ego/core/econf"
)

func InitDeliveryWorker(
	repo repository.MessageRepository,
	devices repository.DeviceRepository,
	gateway push.Gateway,
	sink metrics.Sink,
	alerts alert.Channel,
) *delivery.Worker {
	cfg := delivery.DefaultConfig()
	if err := econf.UnmarshalKey("delivery", &cfg); err != nil {
		panic(err)
	}
	return delivery.NewWorker(repo, devices, gateway, sink, alerts, cfg)
}
