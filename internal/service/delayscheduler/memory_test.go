package delayscheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	fired []uint64
	ch    chan uint64
	// 每个消息前几次执行返回 error
	failures map[uint64]int
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan uint64, 16), failures: map[uint64]int{}}
}

func (r *recorder) handle(_ context.Context, job domain.Job) error {
	messageID := job.MessageID
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failures[messageID] > 0 {
		r.failures[messageID]--
		return errors.New("mock error")
	}
	r.fired = append(r.fired, messageID)
	r.ch <- messageID
	return nil
}

func (r *recorder) wait(t *testing.T) uint64 {
	t.Helper()
	select {
	case id := <-r.ch:
		return id
	case <-time.After(3 * time.Second):
		t.Fatal("任务没有按时执行")
		return 0
	}
}

func TestMemoryScheduler_Fire(t *testing.T) {
	t.Parallel()
	rec := newRecorder()
	s := NewMemoryScheduler(rec.handle)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx)

	now := time.Now()
	_, err := s.ScheduleAt(ctx, now.Add(100*time.Millisecond), 2)
	require.NoError(t, err)
	_, err = s.ScheduleAt(ctx, now.Add(-time.Second), 1)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), rec.wait(t))
	assert.Equal(t, uint64(2), rec.wait(t))

	jobs, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestMemoryScheduler_Cancel(t *testing.T) {
	t.Parallel()
	rec := newRecorder()
	s := NewMemoryScheduler(rec.handle)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now()
	cancelled, err := s.ScheduleAt(ctx, now.Add(50*time.Millisecond), 1)
	require.NoError(t, err)
	_, err = s.ScheduleAt(ctx, now.Add(100*time.Millisecond), 2)
	require.NoError(t, err)

	jobs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, cancelled, jobs[0].ID)
	assert.Equal(t, uint64(1), jobs[0].MessageID)

	require.NoError(t, s.Cancel(ctx, cancelled))
	// 重复取消，取消不存在的任务都没问题
	require.NoError(t, s.Cancel(ctx, cancelled))
	require.NoError(t, s.Cancel(ctx, "not-exist"))

	go s.Start(ctx)
	assert.Equal(t, uint64(2), rec.wait(t))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []uint64{2}, rec.fired)
}

func TestMemoryScheduler_Schedule(t *testing.T) {
	t.Parallel()
	rec := newRecorder()
	s := NewMemoryScheduler(rec.handle)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	local := time.FixedZone("UTC+8", 8*3600)
	runAt := time.Date(2026, 10, 16, 17, 0, 0, 0, local)
	require.NoError(t, s.Schedule(ctx, domain.Job{ID: "job-1", MessageID: 3, RunAt: runAt}))

	jobs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-1", jobs[0].ID)
	assert.Equal(t, uint64(3), jobs[0].MessageID)
	assert.Equal(t, runAt.UTC(), jobs[0].RunAt)

	require.NoError(t, s.Cancel(ctx, "job-1"))
	jobs, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestMemoryScheduler_RetryOnError(t *testing.T) {
	t.Parallel()
	rec := newRecorder()
	rec.failures[1] = 1
	s := NewMemoryScheduler(rec.handle)
	s.retryDelay = 10 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx)

	jobID, err := s.ScheduleAt(ctx, time.Now(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rec.wait(t))

	// 重试的时候任务ID不变
	jobs, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.NotEmpty(t, jobID)
}

func TestMemoryScheduler_StopOnCancel(t *testing.T) {
	t.Parallel()
	s := NewMemoryScheduler(newRecorder().handle)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("取消之后没有退出")
	}
}
