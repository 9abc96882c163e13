package metrics

import (
	"context"
	"testing"

	testioc "gitee.com/flycash/notification-scheduler/internal/test/ioc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHook(t *testing.T) {
	t.Parallel()
	mr, rdb := testioc.InitRedis()
	defer mr.Close()
	defer rdb.Close()

	h := NewMetricsHook(prometheus.NewRegistry())
	rdb.AddHook(h)

	ctx := context.Background()
	require.NoError(t, rdb.Set(ctx, "uq:1:2026-10-17:count", 1, 0).Err())
	_, err := rdb.Get(ctx, "not-exist").Result()
	require.ErrorIs(t, err, redis.Nil)
	// 类型不对，LPUSH 会失败
	require.Error(t, rdb.LPush(ctx, "uq:1:2026-10-17:count", "job").Err())

	pipe := rdb.Pipeline()
	pipe.Incr(ctx, "counter")
	pipe.Expire(ctx, "counter", 0)
	_, err = pipe.Exec(ctx)
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(h.commandCounter.WithLabelValues("set", successStatus)))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.commandCounter.WithLabelValues("get", successStatus)))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.commandCounter.WithLabelValues("lpush", errorStatus)))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.pipelineCounter.WithLabelValues(successStatus)))
	assert.GreaterOrEqual(t, testutil.ToFloat64(h.connectionCounter.WithLabelValues(successStatus)), float64(1))
}
