package ioc

import (
	"context"
	"database/sql"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/pkg/retry"
	"gitee.com/flycash/notification-scheduler/internal/repository/dao"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitDB() *egorm.Component {
	type Config struct {
		DSN   string       `yaml:"dsn"`
		Retry retry.Config `yaml:"retry"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("mysql", &cfg); err != nil {
		panic(err)
	}
	WaitForDBSetup(cfg.DSN, cfg.Retry)
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 容器一起启动的时候数据库可能还没有准备好
func WaitForDBSetup(dsn string, retryCfg retry.Config) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()
	strategy, err := retry.NewRetry(retryCfg)
	if err != nil {
		panic(err)
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			panic("WaitForDBSetup 重试失败......")
		}
		elog.DefaultLogger.Warn("数据库还没有准备好", elog.Any("next", next), elog.FieldErr(err))
		time.Sleep(next)
	}
}
