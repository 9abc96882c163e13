package loopjob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

const (
	defaultTimeout       = 3 * time.Second
	defaultLockTTL       = time.Minute
	defaultRetryInterval = time.Minute
)

// InfiniteLoop 多个实例里面只有抢到分布式锁的那个会执行 biz
// biz 会被反复调用，没有活干的时候应该自己休眠一会
type InfiniteLoop struct {
	dclient       dlock.Client
	key           string
	biz           func(ctx context.Context) error
	lockTTL       time.Duration
	retryInterval time.Duration
	logger        *elog.Component
}

type Option func(l *InfiniteLoop)

// WithLockTTL 锁的过期时间，每执行一次 biz 续约一次
func WithLockTTL(ttl time.Duration) Option {
	return func(l *InfiniteLoop) {
		l.lockTTL = ttl
	}
}

// WithRetryInterval 没有抢到锁，或者续约失败之后等多久再抢
func WithRetryInterval(interval time.Duration) Option {
	return func(l *InfiniteLoop) {
		l.retryInterval = interval
	}
}

func NewInfiniteLoop(
	dclient dlock.Client,
	biz func(ctx context.Context) error,
	key string,
	opts ...Option,
) *InfiniteLoop {
	l := &InfiniteLoop{
		dclient:       dclient,
		key:           key,
		biz:           biz,
		lockTTL:       defaultLockTTL,
		retryInterval: defaultRetryInterval,
		logger:        elog.DefaultLogger.With(elog.String("key", key)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run 阻塞到 ctx 被取消为止
func (l *InfiniteLoop) Run(ctx context.Context) {
	for {
		if l.runOnce(ctx) {
			l.logger.Info("任务被取消，退出任务循环")
			return
		}
		if !Sleep(ctx, l.retryInterval) {
			return
		}
	}
}

// runOnce 抢锁并执行业务，返回 true 代表 ctx 已经结束
func (l *InfiniteLoop) runOnce(ctx context.Context) bool {
	lock, err := l.dclient.NewLock(ctx, l.key, l.lockTTL)
	if err != nil {
		l.logger.Error("初始化分布式锁失败，稍后重试", elog.FieldErr(err))
		return isDone(ctx)
	}

	lockCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	err = lock.Lock(lockCtx)
	cancel()
	if err != nil {
		// 锁被别的实例持有也会走到这里
		l.logger.Debug("没有抢到分布式锁", elog.FieldErr(err))
		return isDone(ctx)
	}

	err = l.bizLoop(ctx, lock)
	if err != nil && !isDone(ctx) {
		l.logger.Error("执行业务中断，稍后重试", elog.FieldErr(err))
	}

	// ctx 可能已经被取消了，解锁不能再用它
	unCtx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	//nolint:contextcheck // 原始 ctx 可能已经取消，但仍然要尝试释放锁
	unErr := lock.Unlock(unCtx)
	cancel()
	if unErr != nil {
		l.logger.Error("释放分布式锁失败", elog.FieldErr(unErr))
	}
	return isDone(ctx)
}

func (l *InfiniteLoop) bizLoop(ctx context.Context, lock dlock.Lock) error {
	for {
		if err := l.biz(ctx); err != nil {
			l.logger.Error("业务执行失败", elog.FieldErr(err))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		refCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		err := lock.Refresh(refCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("分布式锁续约失败 %w", err)
		}
	}
}

// Sleep 可以被 ctx 打断的休眠，返回 false 代表 ctx 已经结束
func Sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func isDone(ctx context.Context) bool {
	err := ctx.Err()
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
