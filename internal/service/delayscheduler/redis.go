package delayscheduler

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/pkg/loopjob"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
	"github.com/redis/go-redis/v9"
)

//go:embed lua/claim.lua
var claimScript string

var _ Scheduler = (*RedisScheduler)(nil)

// RedisConfig 调度器在 redis 里的配置
type RedisConfig struct {
	// Prefix 任务存放的 key 前缀
	Prefix string `yaml:"prefix"`
	// BatchSize 每次最多取出多少个到期任务
	BatchSize int `yaml:"batchSize"`
	// PollInterval 没有到期任务的时候休眠多久
	PollInterval time.Duration `yaml:"pollInterval"`
	// RetryDelay 执行失败之后多久重试
	RetryDelay time.Duration `yaml:"retryDelay"`
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Prefix:       "delay",
		BatchSize:    100,
		PollInterval: time.Second,
		RetryDelay:   defaultRetryDelay,
	}
}

// RedisScheduler 任务放在有序集合里，分数是执行时间，重启之后任务不会丢
// 多实例部署时，只有抢到分布式锁的实例负责取出到期任务
type RedisScheduler struct {
	rdb     redis.Cmdable
	dclient dlock.Client
	handler Handler
	cfg     RedisConfig
	logger  *elog.Component
}

func NewRedisScheduler(rdb redis.Cmdable, dclient dlock.Client, handler Handler, cfg RedisConfig) *RedisScheduler {
	return &RedisScheduler{
		rdb:     rdb,
		dclient: dclient,
		handler: handler,
		cfg:     cfg,
		logger:  elog.DefaultLogger.With(elog.String("component", "delay_scheduler")),
	}
}

func (s *RedisScheduler) jobsKey() string {
	return s.cfg.Prefix + ":jobs"
}

func (s *RedisScheduler) messagesKey() string {
	return s.cfg.Prefix + ":job_messages"
}

func (s *RedisScheduler) ScheduleAt(ctx context.Context, at time.Time, messageID uint64) (string, error) {
	jobID := uuid.NewString()
	if err := s.Schedule(ctx, domain.Job{ID: jobID, MessageID: messageID, RunAt: at}); err != nil {
		return "", err
	}
	return jobID, nil
}

func (s *RedisScheduler) Schedule(ctx context.Context, job domain.Job) error {
	return s.add(ctx, job)
}

func (s *RedisScheduler) add(ctx context.Context, job domain.Job) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, s.jobsKey(), redis.Z{
			Score:  float64(job.RunAt.UnixMilli()),
			Member: job.ID,
		})
		pipe.HSet(ctx, s.messagesKey(), job.ID, job.MessageID)
		return nil
	})
	return err
}

func (s *RedisScheduler) Cancel(ctx context.Context, jobID string) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, s.jobsKey(), jobID)
		pipe.HDel(ctx, s.messagesKey(), jobID)
		return nil
	})
	return err
}

func (s *RedisScheduler) List(ctx context.Context) ([]domain.Job, error) {
	zs, err := s.rdb.ZRangeWithScores(ctx, s.jobsKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(zs) == 0 {
		return []domain.Job{}, nil
	}
	ids := make([]string, 0, len(zs))
	for _, z := range zs {
		ids = append(ids, z.Member.(string))
	}
	vals, err := s.rdb.HMGet(ctx, s.messagesKey(), ids...).Result()
	if err != nil {
		return nil, err
	}
	res := make([]domain.Job, 0, len(zs))
	for i, z := range zs {
		str, ok := vals[i].(string)
		if !ok {
			continue
		}
		messageID, er := strconv.ParseUint(str, 10, 64)
		if er != nil {
			continue
		}
		res = append(res, domain.Job{
			ID:        ids[i],
			MessageID: messageID,
			RunAt:     time.UnixMilli(int64(z.Score)).UTC(),
		})
	}
	return res, nil
}

func (s *RedisScheduler) Start(ctx context.Context) {
	const key = "delay_scheduler_poll"
	loopjob.NewInfiniteLoop(s.dclient, s.poll, key,
		loopjob.WithRetryInterval(10*time.Second)).Run(ctx)
}

func (s *RedisScheduler) poll(ctx context.Context) error {
	cnt, err := s.fire(ctx, time.Now())
	if err != nil || cnt < s.cfg.BatchSize {
		// 没有那么多到期任务，休息一下
		loopjob.Sleep(ctx, s.cfg.PollInterval)
	}
	return err
}

// fire 取出 now 之前到期的任务并执行，返回取出的任务数
func (s *RedisScheduler) fire(ctx context.Context, now time.Time) (int, error) {
	vals, err := s.rdb.Eval(ctx, claimScript,
		[]string{s.jobsKey(), s.messagesKey()},
		now.UnixMilli(), s.cfg.BatchSize,
	).StringSlice()
	if err != nil {
		return 0, fmt.Errorf("取出到期任务失败 %w", err)
	}
	for i := 0; i+1 < len(vals); i += 2 {
		messageID, er := strconv.ParseUint(vals[i+1], 10, 64)
		if er != nil {
			s.logger.Error("任务数据格式错误", elog.String("jobID", vals[i]), elog.String("messageID", vals[i+1]))
			continue
		}
		s.run(ctx, domain.Job{ID: vals[i], MessageID: messageID})
	}
	return len(vals) / 2, nil
}

func (s *RedisScheduler) run(ctx context.Context, job domain.Job) {
	err := s.handler(ctx, job)
	if err == nil {
		return
	}
	s.logger.Error("执行延迟任务失败，稍后重试",
		elog.String("jobID", job.ID),
		elog.Any("messageID", job.MessageID),
		elog.FieldErr(err))
	job.RunAt = time.Now().Add(s.cfg.RetryDelay)
	// 重新放回去，任务ID不变
	if er := s.add(context.WithoutCancel(ctx), job); er != nil {
		s.logger.Error("重新调度任务失败", elog.String("jobID", job.ID), elog.FieldErr(er))
	}
}
