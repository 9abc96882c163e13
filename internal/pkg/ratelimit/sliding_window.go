package ratelimit

import (
	"context"
	_ "embed"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:embed lua/slide_window.lua
var slidingWindowLua string

var (
	slidingWindow = redis.NewScript(slidingWindowLua)

	_ Limiter = (*SlidingWindowLimiter)(nil)
)

// SlidingWindowLimiter 窗口放在 redis 里，多个实例共享
type SlidingWindowLimiter struct {
	cmd    redis.Scripter
	window time.Duration
	rate   int
	prefix string
}

type Option func(l *SlidingWindowLimiter)

// WithPrefix 修改 key 前缀，默认是 ratelimit
func WithPrefix(prefix string) Option {
	return func(l *SlidingWindowLimiter) {
		l.prefix = prefix
	}
}

// NewSlidingWindowLimiter window 内最多允许 rate 个请求
func NewSlidingWindowLimiter(cmd redis.Scripter, window time.Duration, rate int, opts ...Option) *SlidingWindowLimiter {
	l := &SlidingWindowLimiter{
		cmd:    cmd,
		window: window,
		rate:   rate,
		prefix: "ratelimit",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *SlidingWindowLimiter) Limit(ctx context.Context, key string) (bool, error) {
	// 先 EVALSHA，脚本不存在的时候再 EVAL
	return slidingWindow.Run(ctx, l.cmd,
		[]string{l.prefix + ":" + key},
		l.window.Milliseconds(),
		l.rate,
		time.Now().UnixMilli(),
		uuid.NewString(),
	).Bool()
}
