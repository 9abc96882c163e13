package sweeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/pkg/loopjob"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/service/dailyqueue"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"github.com/meoying/dlock-go"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const ResendTaskKey = "message_resend_task"

// Deliverer 由投递流程实现
//
//go:generate mockgen -source=./resend.go -destination=./mocks/deliverer.mock.go -package=sweepermocks -typed Deliverer
type Deliverer interface {
	Deliver(ctx context.Context, messageID uint64) error
}

type ResendConfig struct {
	BatchSize   int `yaml:"batchSize"`
	Concurrency int `yaml:"concurrency"`
	// 每秒最多投递多少条
	RatePerSecond int `yaml:"ratePerSecond"`
	// 过了投递时间这么久还没有结果才补发，给调度器留出余量
	Grace time.Duration `yaml:"grace"`
	// 更早的消息不再补发
	Lookback time.Duration `yaml:"lookback"`
	// 两轮扫描之间休眠多久
	Interval time.Duration `yaml:"interval"`
}

func DefaultResendConfig() ResendConfig {
	return ResendConfig{
		BatchSize:     100,
		Concurrency:   10,
		RatePerSecond: 50,
		Grace:         5 * time.Minute,
		Lookback:      24 * time.Hour,
		Interval:      time.Minute,
	}
}

// ResendTask 定期扫描到了时间还没有投递结果的消息
// 已经进入日队列的直接投递，没有进入的重新走一遍准入
type ResendTask struct {
	dclient   dlock.Client
	repo      repository.MessageRepository
	queue     dailyqueue.Queue
	deliverer Deliverer
	limiter   *rate.Limiter
	cfg       ResendConfig
	logger    *elog.Component
}

func NewResendTask(
	dclient dlock.Client,
	repo repository.MessageRepository,
	queue dailyqueue.Queue,
	deliverer Deliverer,
	cfg ResendConfig,
) *ResendTask {
	return &ResendTask{
		dclient:   dclient,
		repo:      repo,
		queue:     queue,
		deliverer: deliverer,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RatePerSecond),
		cfg:       cfg,
		logger:    elog.DefaultLogger.With(elog.String("component", "resend")),
	}
}

func (t *ResendTask) Start(ctx context.Context) {
	// 休眠期间也要持有锁
	loopjob.NewInfiniteLoop(t.dclient, t.oneLoop, ResendTaskKey,
		loopjob.WithLockTTL(t.cfg.Interval+time.Minute)).Run(ctx)
}

// oneLoop 每轮都休眠，Resend 内部已经翻完所有批次
func (t *ResendTask) oneLoop(ctx context.Context) error {
	_, err := t.Resend(ctx)
	loopjob.Sleep(ctx, t.cfg.Interval)
	return err
}

// Resend 扫描一轮，返回处理的消息数量
func (t *ResendTask) Resend(ctx context.Context) (int, error) {
	now := time.Now()
	before := now.Add(-t.cfg.Grace)
	after := now.Add(-t.cfg.Lookback)

	var (
		startID uint64
		total   int
		mu      sync.Mutex
		result  error
	)
	for {
		msgs, err := t.repo.FindReady(ctx, startID, before, t.cfg.BatchSize)
		if err != nil {
			return total, err
		}
		if len(msgs) == 0 {
			break
		}
		startID = msgs[len(msgs)-1].ID

		var eg errgroup.Group
		eg.SetLimit(t.cfg.Concurrency)
		for _, msg := range msgs {
			if msg.DeliverOn.Before(after) {
				continue
			}
			if err = t.limiter.Wait(ctx); err != nil {
				_ = eg.Wait()
				return total, err
			}
			total++
			eg.Go(func() error {
				if er := t.resend(ctx, msg); er != nil {
					mu.Lock()
					result = multierror.Append(result, er)
					mu.Unlock()
				}
				return nil
			})
		}
		_ = eg.Wait()
		if len(msgs) < t.cfg.BatchSize {
			break
		}
	}
	if total > 0 {
		t.logger.Info("补发消息", elog.Int("count", total))
	}
	return total, result
}

func (t *ResendTask) resend(ctx context.Context, msg domain.Message) error {
	if msg.Scheduled() {
		if err := t.deliverer.Deliver(ctx, msg.ID); err != nil {
			return fmt.Errorf("补发消息 %d 失败 %w", msg.ID, err)
		}
		return nil
	}
	jobID, admitted, err := t.queue.Add(ctx, msg)
	if err != nil {
		return fmt.Errorf("消息 %d 重新准入失败 %w", msg.ID, err)
	}
	if admitted {
		t.logger.Info("消息重新进入日队列", elog.Any("messageID", msg.ID), elog.String("jobID", jobID))
	}
	return nil
}
