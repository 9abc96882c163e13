package main

import (
	"context"
	"time"

	schedulerioc "gitee.com/flycash/notification-scheduler/cmd/scheduler/ioc"
	"gitee.com/flycash/notification-scheduler/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

func main() {
	// 先初始化 ego，后面的组件才能读到配置
	egoApp := ego.New()

	tp := ioc.InitZipkinTracer()
	defer func() {
		const timeout = 5 * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			elog.Error("关闭 TracerProvider 失败", elog.FieldErr(err))
		}
	}()

	app := schedulerioc.InitApp()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.StartTasks(ctx)

	if err := egoApp.Serve(
		egovernor.Load("server.governor").Build(),
		app.Web,
	).Cron(app.Crons...).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
