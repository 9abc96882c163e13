package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

// Task 常驻后台的任务，Start 阻塞到 ctx 被取消
type Task interface {
	Start(ctx context.Context)
}

type App struct {
	Web   *egin.Component
	Crons []ecron.Ecron
	Tasks []Task
}

func (a *App) StartTasks(ctx context.Context) {
	for _, t := range a.Tasks {
		go func(t Task) {
			t.Start(ctx)
		}(t)
	}
}
