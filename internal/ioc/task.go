package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/service/delayscheduler"
	"gitee.com/flycash/notification-scheduler/internal/service/sweeper"
)

func InitTasks(t1 delayscheduler.Scheduler,
	t2 *sweeper.ResendTask,
) []Task {
	return []Task{
		t1,
		t2,
	}
}
