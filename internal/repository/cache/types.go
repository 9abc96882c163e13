package cache

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"github.com/pkg/errors"
)

var ErrKeyNotFound = errors.New("key not found")

const (
	queuePrefix = "uq"
	// QueueTTL 日队列只在当天和前后一天有意义
	QueueTTL = 48 * time.Hour
)

// QueueKey 一个用户一天一个日队列
type QueueKey struct {
	UserID int64
	Day    string // 2006-01-02，UTC
}

func NewQueueKey(userID int64, deliverOn time.Time) QueueKey {
	return QueueKey{UserID: userID, Day: deliverOn.UTC().Format(time.DateOnly)}
}

func (k QueueKey) CountKey() string {
	return fmt.Sprintf("%s:%d:%s:count", queuePrefix, k.UserID, k.Day)
}

func (k QueueKey) LaneKey(p domain.Priority) string {
	return fmt.Sprintf("%s:%d:%s:%s", queuePrefix, k.UserID, k.Day, p)
}

func (k QueueKey) String() string {
	return fmt.Sprintf("%s:%d:%s", queuePrefix, k.UserID, k.Day)
}

// DailyQueueCache 日队列的存储，每个方法本身都是原子的
type DailyQueueCache interface {
	Count(ctx context.Context, key QueueKey) (int64, error)
	// Push 任务追加到对应优先级的队尾，同时计数加一，返回新的计数
	Push(ctx context.Context, key QueueKey, p domain.Priority, jobID string) (int64, error)
	// PopLatest 弹出队尾，也就是最近加入的任务，计数减一但不会小于 0
	// 队列为空时返回 ErrKeyNotFound
	PopLatest(ctx context.Context, key QueueKey, p domain.Priority) (string, error)
	// Remove 从队列里删除指定任务，删除成功时计数减一但不会小于 0
	Remove(ctx context.Context, key QueueKey, p domain.Priority, jobID string) (bool, error)
	List(ctx context.Context, key QueueKey, p domain.Priority) ([]string, error)
	Clear(ctx context.Context, key QueueKey) error
}

type UserProfileCache interface {
	Get(ctx context.Context, userID int64) (domain.UserProfile, error)
	Set(ctx context.Context, profile domain.UserProfile) error
	Del(ctx context.Context, userID int64) error
	Clear(ctx context.Context) error
}
