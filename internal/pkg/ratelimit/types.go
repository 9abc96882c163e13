package ratelimit

import "context"

// Limiter 限流器
type Limiter interface {
	// Limit 返回 true 表示这一次请求应该被拒绝
	Limit(ctx context.Context, key string) (bool, error)
}
