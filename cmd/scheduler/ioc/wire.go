//go:build wireinject

package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/ioc"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache/local"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache/redis"
	"gitee.com/flycash/notification-scheduler/internal/repository/dao"
	"gitee.com/flycash/notification-scheduler/internal/service/message"
	"gitee.com/flycash/notification-scheduler/internal/service/profile"
	"gitee.com/flycash/notification-scheduler/internal/service/sweeper"
	"gitee.com/flycash/notification-scheduler/internal/web"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRedisClient,
		ioc.InitRedisCmdable,
		ioc.InitDistributedLock,
		ioc.InitIDGenerator,
		ioc.InitMetricsSink,
		ioc.InitMQ,
	)
	messageSvcSet = wire.NewSet(
		message.NewService,
		repository.NewMessageRepository,
		dao.NewMessageDAO,
		ioc.InitSnoozeProducer,
	)
	deviceSet = wire.NewSet(
		repository.NewDeviceRepository,
		dao.NewDeviceDAO,
	)
	profileSvcSet = wire.NewSet(
		profile.NewService,
		repository.NewUserProfileRepository,
		dao.NewUserProfileDAO,
		local.NewDefaultUserProfileCache,
		wire.Bind(new(cache.UserProfileCache), new(*local.UserProfileCache)),
	)
	dailyQueueSet = wire.NewSet(
		ioc.InitDailyQueue,
		redis.NewDailyQueueCache,
		wire.Bind(new(cache.DailyQueueCache), new(*redis.DailyQueueCache)),
	)
	deliverySet = wire.NewSet(
		ioc.InitDeliveryWorker,
		ioc.InitDelayScheduler,
		ioc.InitPushGateway,
		ioc.InitAlertChannel,
	)
	sweeperSet = wire.NewSet(
		sweeper.NewSweeper,
		sweeper.NewExpiryCron,
		ioc.InitResendTask,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 消息、设备、用户配置
		messageSvcSet,
		deviceSet,
		profileSvcSet,

		// 准入和投递
		dailyQueueSet,
		deliverySet,

		// 清理和补发
		sweeperSet,
		ioc.Crons,
		ioc.InitTasks,

		// HTTP 服务器
		web.NewHandler,
		ioc.InitWebServer,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
