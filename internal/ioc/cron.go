package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/service/sweeper"
	"github.com/gotomicro/ego/task/ecron"
)

func Crons(c *sweeper.ExpiryCron) []ecron.Ecron {
	c1 := ecron.Load("cron.expiry").Build(ecron.WithJob(c.Do))
	return []ecron.Ecron{c1}
}
