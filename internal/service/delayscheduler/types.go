package delayscheduler

import (
	"context"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
)

// Handler 任务到期之后执行，返回 error 时任务会被重新调度
type Handler func(ctx context.Context, job domain.Job) error

// Scheduler 延迟调度器，到点之后至少执行一次 Handler
//
//go:generate mockgen -source=./types.go -destination=./mocks/scheduler.mock.go -package=schedulermocks -typed Scheduler
type Scheduler interface {
	// ScheduleAt 注册一个任务，返回任务ID
	ScheduleAt(ctx context.Context, at time.Time, messageID uint64) (string, error)
	// Schedule 用调用方生成的任务ID注册任务，ID 必须是新的
	Schedule(ctx context.Context, job domain.Job) error
	// Cancel 取消任务，任务不存在或者已经执行过也不会返回 error
	Cancel(ctx context.Context, jobID string) error
	// List 还没有执行的任务，按执行时间排序
	List(ctx context.Context) ([]domain.Job, error)
	// Start 阻塞执行到期任务，直到 ctx 被取消
	Start(ctx context.Context)
}

const defaultRetryDelay = time.Minute
