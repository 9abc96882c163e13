package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/service/delayscheduler"
	"gitee.com/flycash/notification-scheduler/internal/service/delivery"
	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"
	"github.com/redis/go-redis/v9"
)

// InitDelayScheduler memory 只在单机调试的时候用，重启之后任务会丢
func InitDelayScheduler(rdb redis.Cmdable, dclient dlock.Client, worker *delivery.Worker) delayscheduler.Scheduler {
	type Config struct {
		Type  string                     `yaml:"type"`
		Redis delayscheduler.RedisConfig `yaml:"redis"`
	}
	cfg := Config{
		Type:  "redis",
		Redis: delayscheduler.DefaultRedisConfig(),
	}
	if err := econf.UnmarshalKey("scheduler", &cfg); err != nil {
		panic(err)
	}
	if cfg.Type == "memory" {
		return delayscheduler.NewMemoryScheduler(worker.HandleJob)
	}
	return delayscheduler.NewRedisScheduler(rdb, dclient, worker.HandleJob, cfg.Redis)
}
