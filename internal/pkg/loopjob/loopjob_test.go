package loopjob

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSleep(t *testing.T) {
	t.Parallel()

	assert.True(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	assert.False(t, Sleep(ctx, time.Hour))
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewInfiniteLoop_Options(t *testing.T) {
	t.Parallel()

	l := NewInfiniteLoop(nil, func(ctx context.Context) error { return nil }, "key",
		WithLockTTL(time.Second), WithRetryInterval(2*time.Second))
	assert.Equal(t, time.Second, l.lockTTL)
	assert.Equal(t, 2*time.Second, l.retryInterval)
	assert.Equal(t, "key", l.key)
}
