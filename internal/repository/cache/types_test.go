package cache

import (
	"testing"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestQueueKey(t *testing.T) {
	t.Parallel()

	// 北京时间 10 月 17 日早上，UTC 还是 16 日
	shanghai := time.FixedZone("CST", 8*3600)
	key := NewQueueKey(42, time.Date(2026, 10, 17, 7, 0, 0, 0, shanghai))

	assert.Equal(t, "2026-10-16", key.Day)
	assert.Equal(t, "uq:42:2026-10-16:count", key.CountKey())
	assert.Equal(t, "uq:42:2026-10-16:low", key.LaneKey(domain.PriorityLow))
	assert.Equal(t, "uq:42:2026-10-16:high", key.LaneKey(domain.PriorityHigh))
	assert.Equal(t, "uq:42:2026-10-16", key.String())
}
