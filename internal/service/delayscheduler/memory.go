package delayscheduler

import (
	"container/heap"
	"context"
	"sort"
	"sync"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
)

var _ Scheduler = (*MemoryScheduler)(nil)

// MemoryScheduler 进程内的实现，重启之后任务全部丢失，用于测试和本地开发
type MemoryScheduler struct {
	mu sync.Mutex
	// 取消的任务只从 jobs 里面删除，出堆的时候再跳过
	queue      jobHeap
	jobs       map[string]domain.Job
	wakeup     chan struct{}
	handler    Handler
	retryDelay time.Duration
	logger     *elog.Component
}

func NewMemoryScheduler(handler Handler) *MemoryScheduler {
	return &MemoryScheduler{
		jobs:       make(map[string]domain.Job),
		wakeup:     make(chan struct{}, 1),
		handler:    handler,
		retryDelay: defaultRetryDelay,
		logger:     elog.DefaultLogger,
	}
}

func (s *MemoryScheduler) ScheduleAt(ctx context.Context, at time.Time, messageID uint64) (string, error) {
	job := domain.Job{ID: uuid.NewString(), MessageID: messageID, RunAt: at}
	return job.ID, s.Schedule(ctx, job)
}

func (s *MemoryScheduler) Schedule(_ context.Context, job domain.Job) error {
	job.RunAt = job.RunAt.UTC()
	s.add(job)
	return nil
}

func (s *MemoryScheduler) add(job domain.Job) {
	s.mu.Lock()
	s.jobs[job.ID] = job
	heap.Push(&s.queue, job)
	s.mu.Unlock()
	select {
	case s.wakeup <- struct{}{}:
	default:
	}
}

func (s *MemoryScheduler) Cancel(_ context.Context, jobID string) error {
	s.mu.Lock()
	delete(s.jobs, jobID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryScheduler) List(_ context.Context) ([]domain.Job, error) {
	s.mu.Lock()
	res := make([]domain.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		res = append(res, job)
	}
	s.mu.Unlock()
	sort.Slice(res, func(i, j int) bool {
		return res[i].RunAt.Before(res[j].RunAt)
	})
	return res, nil
}

func (s *MemoryScheduler) Start(ctx context.Context) {
	for ctx.Err() == nil {
		job, wait, ok := s.next(time.Now())
		if ok {
			s.run(ctx, job)
			continue
		}
		s.wait(ctx, wait)
	}
}

// wait d 为 0 时一直等到有新任务加入
func (s *MemoryScheduler) wait(ctx context.Context, d time.Duration) {
	var timeout <-chan time.Time
	if d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		timeout = timer.C
	}
	select {
	case <-ctx.Done():
	case <-s.wakeup:
	case <-timeout:
	}
}

// next 取出一个到期任务，没有到期任务的时候返回需要等待的时间，队列为空时等待时间为 0
func (s *MemoryScheduler) next(now time.Time) (domain.Job, time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.queue.Len() > 0 {
		head := s.queue[0]
		if current, ok := s.jobs[head.ID]; !ok || !current.RunAt.Equal(head.RunAt) {
			// 已经取消，或者被重新调度过
			heap.Pop(&s.queue)
			continue
		}
		if head.RunAt.After(now) {
			return domain.Job{}, head.RunAt.Sub(now), false
		}
		heap.Pop(&s.queue)
		delete(s.jobs, head.ID)
		return head, 0, true
	}
	return domain.Job{}, 0, false
}

func (s *MemoryScheduler) run(ctx context.Context, job domain.Job) {
	err := s.handler(ctx, job)
	if err == nil {
		return
	}
	s.logger.Error("执行延迟任务失败，稍后重试",
		elog.String("jobID", job.ID),
		elog.Any("messageID", job.MessageID),
		elog.FieldErr(err))
	job.RunAt = time.Now().Add(s.retryDelay).UTC()
	s.add(job)
}

type jobHeap []domain.Job

func (h jobHeap) Len() int { return len(h) }

func (h jobHeap) Less(i, j int) bool { return h[i].RunAt.Before(h[j].RunAt) }

func (h jobHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *jobHeap) Push(x any) { *h = append(*h, x.(domain.Job)) }

func (h *jobHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
