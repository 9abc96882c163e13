package redis

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache"
	"github.com/redis/go-redis/v9"
)

var (
	//go:embed lua/queue_push.lua
	pushScript string
	//go:embed lua/queue_pop_latest.lua
	popLatestScript string
	//go:embed lua/queue_remove.lua
	removeScript string

	_ cache.DailyQueueCache = (*DailyQueueCache)(nil)
)

// DailyQueueCache 计数和三个优先级队列分开存放，修改都通过 lua 脚本保证原子性
type DailyQueueCache struct {
	rdb redis.Cmdable
}

func NewDailyQueueCache(rdb redis.Cmdable) *DailyQueueCache {
	return &DailyQueueCache{rdb: rdb}
}

func (c *DailyQueueCache) Count(ctx context.Context, key cache.QueueKey) (int64, error) {
	cnt, err := c.rdb.Get(ctx, key.CountKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return cnt, err
}

func (c *DailyQueueCache) Push(ctx context.Context, key cache.QueueKey, p domain.Priority, jobID string) (int64, error) {
	return c.rdb.Eval(ctx, pushScript,
		[]string{key.LaneKey(p), key.CountKey()},
		jobID, int64(cache.QueueTTL.Seconds()),
	).Int64()
}

func (c *DailyQueueCache) PopLatest(ctx context.Context, key cache.QueueKey, p domain.Priority) (string, error) {
	jobID, err := c.rdb.Eval(ctx, popLatestScript,
		[]string{key.LaneKey(p), key.CountKey()},
	).Text()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s 队列为空", cache.ErrKeyNotFound, key.LaneKey(p))
	}
	return jobID, err
}

func (c *DailyQueueCache) Remove(ctx context.Context, key cache.QueueKey, p domain.Priority, jobID string) (bool, error) {
	removed, err := c.rdb.Eval(ctx, removeScript,
		[]string{key.LaneKey(p), key.CountKey()},
		jobID,
	).Int64()
	return removed > 0, err
}

func (c *DailyQueueCache) List(ctx context.Context, key cache.QueueKey, p domain.Priority) ([]string, error) {
	return c.rdb.LRange(ctx, key.LaneKey(p), 0, -1).Result()
}

func (c *DailyQueueCache) Clear(ctx context.Context, key cache.QueueKey) error {
	return c.rdb.Del(ctx,
		key.CountKey(),
		key.LaneKey(domain.PriorityLow),
		key.LaneKey(domain.PriorityMedium),
		key.LaneKey(domain.PriorityHigh),
	).Err()
}
