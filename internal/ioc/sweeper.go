package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/service/dailyqueue"
	"gitee.com/flycash/notification-scheduler/internal/service/delivery"
	"gitee.com/flycash/notification-scheduler/internal/service/sweeper"
	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"
)

func InitResendTask(
	dclient dlock.Client,
	repo repository.MessageRepository,
	queue dailyqueue.Queue,
	worker *delivery.Worker,
) *sweeper.ResendTask {
	cfg := sweeper.DefaultResendConfig()
	if err := econf.UnmarshalKey("sweeper.resend", &cfg); err != nil {
		panic(err)
	}
	return sweeper.NewResendTask(dclient, repo, queue, worker, cfg)
}
