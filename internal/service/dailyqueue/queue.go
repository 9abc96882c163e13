package dailyqueue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/errs"
	"gitee.com/flycash/notification-scheduler/internal/pkg/metrics"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache"
	"gitee.com/flycash/notification-scheduler/internal/service/delayscheduler"
	"gitee.com/flycash/notification-scheduler/internal/service/profile"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

const metricCategory = "daily_queue"

// Queue 每个用户每天一个准入队列，控制当天最多推送多少条
//
//go:generate mockgen -source=./queue.go -destination=./mocks/queue.mock.go -package=queuemocks -typed Queue
type Queue interface {
	// Full 当天已经调度的数量是否达到上限
	Full(ctx context.Context, userID int64, day time.Time, limit int) (bool, error)
	// Add 尝试把消息加入当天的队列，成功时返回调度器任务ID
	// 队列满了的时候 High 不受限制，Medium 挤掉最近加入的一条 Low，其它情况直接拒绝
	Add(ctx context.Context, msg domain.Message) (jobID string, admitted bool, err error)
	// Remove 取消消息对应的任务并从队列里删除
	Remove(ctx context.Context, msg domain.Message) error
	Count(ctx context.Context, userID int64, day time.Time) (int64, error)
	List(ctx context.Context, userID int64, day time.Time, p domain.Priority) ([]string, error)
	Clear(ctx context.Context, userID int64, day time.Time) error
}

type queue struct {
	cache     cache.DailyQueueCache
	scheduler delayscheduler.Scheduler
	repo      repository.MessageRepository
	profiles  profile.Service
	sink      metrics.Sink
	// 不为 nil 的时候同一个队列的 Add 串行执行
	dclient dlock.Client
	logger  *elog.Component
}

type Option func(q *queue)

// WithStrictLimit 用分布式锁保证并发加入时也不会超过上限
func WithStrictLimit(dclient dlock.Client) Option {
	return func(q *queue) {
		q.dclient = dclient
	}
}

func NewQueue(
	c cache.DailyQueueCache,
	scheduler delayscheduler.Scheduler,
	repo repository.MessageRepository,
	profiles profile.Service,
	sink metrics.Sink,
	opts ...Option,
) Queue {
	q := &queue{
		cache:     c,
		scheduler: scheduler,
		repo:      repo,
		profiles:  profiles,
		sink:      sink,
		logger:    elog.DefaultLogger.With(elog.String("component", "daily_queue")),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *queue) Full(ctx context.Context, userID int64, day time.Time, limit int) (bool, error) {
	return q.full(ctx, cache.NewQueueKey(userID, day), limit)
}

func (q *queue) full(ctx context.Context, key cache.QueueKey, limit int) (bool, error) {
	cnt, err := q.cache.Count(ctx, key)
	if err != nil {
		return false, err
	}
	return cnt >= int64(limit), nil
}

func (q *queue) Add(ctx context.Context, msg domain.Message) (string, bool, error) {
	key := cache.NewQueueKey(msg.UserID, msg.DeliverOn)
	if q.dclient != nil {
		unlock, err := q.lock(ctx, key)
		if err != nil {
			return "", false, err
		}
		defer unlock()
	}

	limit := q.profiles.DailyLimit(ctx, msg.UserID)
	full, err := q.full(ctx, key, limit)
	if err != nil {
		return "", false, err
	}
	if full {
		admitted, er := q.makeRoom(ctx, key, msg)
		if er != nil {
			return "", false, er
		}
		if !admitted {
			q.sink.Increment("rejected", metricCategory)
			q.logger.Info("当天推送数量已达上限，拒绝消息",
				elog.Any("messageID", msg.ID),
				elog.String("queue", key.String()),
				elog.String("priority", msg.Priority.String()),
				elog.Int("limit", limit))
			return "", false, nil
		}
	}

	// 任务ID先落库再注册任务，任务一旦触发就能对上消息
	jobID := uuid.NewString()
	if err = q.repo.SetSchedulerJobID(ctx, msg.ID, jobID); err != nil {
		return "", false, err
	}
	if _, err = q.cache.Push(ctx, key, msg.Priority, jobID); err != nil {
		q.clearJobID(ctx, jobID)
		return "", false, err
	}
	err = q.scheduler.Schedule(ctx, domain.Job{ID: jobID, MessageID: msg.ID, RunAt: msg.DeliverOn})
	if err != nil {
		if _, er := q.cache.Remove(ctx, key, msg.Priority, jobID); er != nil {
			q.logger.Error("回滚日队列失败", elog.String("jobID", jobID), elog.FieldErr(er))
		}
		q.clearJobID(ctx, jobID)
		return "", false, fmt.Errorf("%w: %w", errs.ErrSchedulerUnavailable, err)
	}
	q.sink.Increment("admitted", metricCategory)
	return jobID, true, nil
}

// makeRoom 队列已满时决定消息能不能进入，Medium 会挤掉最近加入的一条 Low
func (q *queue) makeRoom(ctx context.Context, key cache.QueueKey, msg domain.Message) (bool, error) {
	switch msg.Priority {
	case domain.PriorityHigh:
		return true, nil
	case domain.PriorityMedium:
		bumped, err := q.cache.PopLatest(ctx, key, domain.PriorityLow)
		if errors.Is(err, cache.ErrKeyNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		q.cancel(ctx, bumped)
		q.clearJobID(ctx, bumped)
		q.sink.Increment("bumped", metricCategory)
		q.logger.Info("挤掉低优先级消息",
			elog.String("queue", key.String()),
			elog.String("bumpedJobID", bumped),
			elog.Any("messageID", msg.ID))
		return true, nil
	default:
		return false, nil
	}
}

func (q *queue) Remove(ctx context.Context, msg domain.Message) error {
	if !msg.Scheduled() {
		return nil
	}
	if err := q.scheduler.Cancel(ctx, msg.SchedulerJobID); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSchedulerUnavailable, err)
	}
	key := cache.NewQueueKey(msg.UserID, msg.DeliverOn)
	if _, err := q.cache.Remove(ctx, key, msg.Priority, msg.SchedulerJobID); err != nil {
		return err
	}
	return q.repo.ClearSchedulerJobID(ctx, msg.SchedulerJobID)
}

func (q *queue) Count(ctx context.Context, userID int64, day time.Time) (int64, error) {
	return q.cache.Count(ctx, cache.NewQueueKey(userID, day))
}

func (q *queue) List(ctx context.Context, userID int64, day time.Time, p domain.Priority) ([]string, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: Priority = %q", errs.ErrInvalidParameter, p)
	}
	return q.cache.List(ctx, cache.NewQueueKey(userID, day), p)
}

func (q *queue) Clear(ctx context.Context, userID int64, day time.Time) error {
	return q.cache.Clear(ctx, cache.NewQueueKey(userID, day))
}

// cancel 取消失败只记录日志，过期任务触发时投递流程会发现任务ID对不上而忽略它
func (q *queue) cancel(ctx context.Context, jobID string) {
	if err := q.scheduler.Cancel(ctx, jobID); err != nil {
		q.logger.Error("取消调度任务失败", elog.String("jobID", jobID), elog.FieldErr(err))
	}
}

func (q *queue) clearJobID(ctx context.Context, jobID string) {
	if err := q.repo.ClearSchedulerJobID(ctx, jobID); err != nil {
		q.logger.Error("清理消息的任务ID失败", elog.String("jobID", jobID), elog.FieldErr(err))
	}
}

func (q *queue) lock(ctx context.Context, key cache.QueueKey) (func(), error) {
	const (
		lockTTL     = 5 * time.Second
		lockTimeout = 3 * time.Second
	)
	lock, err := q.dclient.NewLock(ctx, key.String()+":lock", lockTTL)
	if err != nil {
		return nil, err
	}
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	if err = lock.Lock(lockCtx); err != nil {
		return nil, fmt.Errorf("获取日队列锁失败 %w", err)
	}
	return func() {
		unCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockTimeout)
		defer cancel()
		if er := lock.Unlock(unCtx); er != nil {
			q.logger.Error("释放日队列锁失败", elog.String("queue", key.String()), elog.FieldErr(er))
		}
	}, nil
}
