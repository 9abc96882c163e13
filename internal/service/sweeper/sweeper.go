package sweeper

import (
	"context"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// Filter 零值字段不参与过滤
type Filter struct {
	UserID int64
	// 按照投递时间过滤，开区间
	Before time.Time
	After  time.Time
	// 关联对象的类型
	Kind string
	// 删除所有已经有投递结果的消息，不管有没有过期
	All bool
}

func (f Filter) isDefault() bool {
	return f.UserID == 0 && f.Before.IsZero() && f.After.IsZero() && f.Kind == "" && !f.All
}

// Sweeper 清理已经投递完成的消息，投递结果未知的消息永远不会被删除
type Sweeper struct {
	repo   repository.MessageRepository
	logger *elog.Component
}

func NewSweeper(repo repository.MessageRepository) *Sweeper {
	return &Sweeper{
		repo:   repo,
		logger: elog.DefaultLogger.With(elog.String("component", "sweeper")),
	}
}

// Sweep 没有任何过滤条件时删除 expire_on <= now 的消息
func (s *Sweeper) Sweep(ctx context.Context, f Filter) (int64, error) {
	var (
		cnt int64
		err error
	)
	if f.isDefault() {
		cnt, err = s.repo.DeleteExpired(ctx, time.Now())
	} else {
		cnt, err = s.repo.DeleteDelivered(ctx, repository.MessageFilter{
			UserID:      f.UserID,
			Before:      f.Before,
			After:       f.After,
			RelatedKind: f.Kind,
		})
	}
	if err != nil {
		s.logger.Error("清理消息失败", elog.FieldErr(err))
		return 0, err
	}
	s.logger.Info("清理消息完成",
		elog.Int64("count", cnt),
		elog.Int64("userID", f.UserID),
		elog.String("kind", f.Kind),
		elog.Any("all", f.All))
	return cnt, nil
}

// ExpiryCron 每天定时执行默认清理
type ExpiryCron struct {
	sweeper *Sweeper
}

func NewExpiryCron(sweeper *Sweeper) *ExpiryCron {
	return &ExpiryCron{sweeper: sweeper}
}

func (c *ExpiryCron) Do(ctx context.Context) error {
	_, err := c.sweeper.Sweep(ctx, Filter{})
	return err
}
