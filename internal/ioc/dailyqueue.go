package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/pkg/metrics"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache"
	"gitee.com/flycash/notification-scheduler/internal/service/dailyqueue"
	"gitee.com/flycash/notification-scheduler/internal/service/delayscheduler"
	"gitee.com/flycash/notification-scheduler/internal/service/profile"
	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"
)

func InitDailyQueue(
	c cache.DailyQueueCache,
	scheduler delayscheduler.Scheduler,
	repo repository.MessageRepository,
	profiles profile.Service,
	sink metrics.Sink,
	dclient dlock.Client,
) dailyqueue.Queue {
	var opts []dailyqueue.Option
	// 默认允许并发的时候稍微超过上限
	if econf.GetBool("dailyqueue.strict") {
		opts = append(opts, dailyqueue.WithStrictLimit(dclient))
	}
	return dailyqueue.NewQueue(c, scheduler, repo, profiles, sink, opts...)
}
