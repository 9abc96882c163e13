package dailyqueue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/errs"
	"gitee.com/flycash/notification-scheduler/internal/pkg/metrics"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	redisqueue "gitee.com/flycash/notification-scheduler/internal/repository/cache/redis"
	"gitee.com/flycash/notification-scheduler/internal/repository/dao"
	"gitee.com/flycash/notification-scheduler/internal/service/delayscheduler"
	schedulermocks "gitee.com/flycash/notification-scheduler/internal/service/delayscheduler/mocks"
	profilemocks "gitee.com/flycash/notification-scheduler/internal/service/profile/mocks"
	testioc "gitee.com/flycash/notification-scheduler/internal/test/ioc"
	"github.com/alicebob/miniredis/v2"
	dlockredis "github.com/meoying/dlock-go/redis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestQueueSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(QueueTestSuite))
}

type QueueTestSuite struct {
	suite.Suite
	mr        *miniredis.Miniredis
	rdb       *redis.Client
	repo      repository.MessageRepository
	scheduler *delayscheduler.MemoryScheduler
	ctrl      *gomock.Controller
	profiles  *profilemocks.MockService
	queue     Queue
	day       time.Time
	nextID    uint64
}

func (s *QueueTestSuite) SetupTest() {
	db := testioc.InitDB()
	s.Require().NoError(dao.InitTables(db))
	s.repo = repository.NewMessageRepository(dao.NewMessageDAO(db))
	s.mr, s.rdb = testioc.InitRedis()
	s.scheduler = delayscheduler.NewMemoryScheduler(func(context.Context, domain.Job) error { return nil })
	s.ctrl = gomock.NewController(s.T())
	s.profiles = profilemocks.NewMockService(s.ctrl)
	s.queue = s.newQueue(s.scheduler)
	s.day = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	s.nextID = 0
}

func (s *QueueTestSuite) TearDownTest() {
	s.ctrl.Finish()
	_ = s.rdb.Close()
	s.mr.Close()
}

func (s *QueueTestSuite) newQueue(scheduler delayscheduler.Scheduler, opts ...Option) Queue {
	return NewQueue(redisqueue.NewDailyQueueCache(s.rdb), scheduler, s.repo, s.profiles,
		metrics.NewPrometheusSink(prometheus.NewRegistry()), opts...)
}

func (s *QueueTestSuite) limit(n int) {
	s.profiles.EXPECT().DailyLimit(gomock.Any(), int64(1)).Return(n).AnyTimes()
}

// createMessage 消息先落库，这样才能验证任务ID的写回
func (s *QueueTestSuite) createMessage(p domain.Priority) domain.Message {
	s.nextID++
	msg, err := s.repo.Create(context.Background(), domain.Message{
		ID:        s.nextID,
		UserID:    1,
		Title:     fmt.Sprintf("消息 %d", s.nextID),
		Body:      "body",
		DeliverOn: s.day.Add(time.Duration(s.nextID) * time.Hour),
		Priority:  p,
	})
	s.Require().NoError(err)
	return msg
}

func (s *QueueTestSuite) add(p domain.Priority) (domain.Message, bool) {
	msg := s.createMessage(p)
	jobID, admitted, err := s.queue.Add(context.Background(), msg)
	s.Require().NoError(err)
	if admitted {
		s.NotEmpty(jobID)
		msg.SchedulerJobID = jobID
	} else {
		s.Empty(jobID)
	}
	return msg, admitted
}

// assertConsistent 计数等于三个队列长度之和
func (s *QueueTestSuite) assertConsistent() int64 {
	ctx := context.Background()
	cnt, err := s.queue.Count(ctx, 1, s.day)
	s.Require().NoError(err)
	var total int
	for _, p := range []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh} {
		jobs, er := s.queue.List(ctx, 1, s.day, p)
		s.Require().NoError(er)
		total += len(jobs)
	}
	s.Equal(int64(total), cnt)
	return cnt
}

func (s *QueueTestSuite) TestLowRejectedWhenFull() {
	t := s.T()
	s.limit(3)

	for i := 0; i < 3; i++ {
		_, admitted := s.add(domain.PriorityLow)
		assert.True(t, admitted)
	}
	full, err := s.queue.Full(context.Background(), 1, s.day, 3)
	require.NoError(t, err)
	assert.True(t, full)

	msg, admitted := s.add(domain.PriorityLow)
	assert.False(t, admitted)
	assert.Equal(t, int64(3), s.assertConsistent())

	// 被拒绝的消息没有任务
	found, err := s.repo.GetByID(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Empty(t, found.SchedulerJobID)
	jobs, err := s.scheduler.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}

func (s *QueueTestSuite) TestMediumBumpsLatestLow() {
	t := s.T()
	ctx := context.Background()
	s.limit(3)

	lows := make([]domain.Message, 0, 3)
	for i := 0; i < 3; i++ {
		msg, admitted := s.add(domain.PriorityLow)
		require.True(t, admitted)
		lows = append(lows, msg)
	}

	medium, admitted := s.add(domain.PriorityMedium)
	assert.True(t, admitted)
	assert.Equal(t, int64(3), s.assertConsistent())

	lowJobs, err := s.queue.List(ctx, 1, s.day, domain.PriorityLow)
	require.NoError(t, err)
	assert.Equal(t, []string{lows[0].SchedulerJobID, lows[1].SchedulerJobID}, lowJobs)
	mediumJobs, err := s.queue.List(ctx, 1, s.day, domain.PriorityMedium)
	require.NoError(t, err)
	assert.Equal(t, []string{medium.SchedulerJobID}, mediumJobs)

	// 被挤掉的消息任务已经取消，任务ID也被清理
	jobs, err := s.scheduler.List(ctx)
	require.NoError(t, err)
	for _, job := range jobs {
		assert.NotEqual(t, lows[2].SchedulerJobID, job.ID)
	}
	bumped, err := s.repo.GetByID(ctx, lows[2].ID)
	require.NoError(t, err)
	assert.Empty(t, bumped.SchedulerJobID)
	kept, err := s.repo.GetByID(ctx, lows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, lows[0].SchedulerJobID, kept.SchedulerJobID)
}

func (s *QueueTestSuite) TestMediumRejectedWithoutLow() {
	t := s.T()
	s.limit(2)

	_, admitted := s.add(domain.PriorityMedium)
	require.True(t, admitted)
	_, admitted = s.add(domain.PriorityHigh)
	require.True(t, admitted)

	_, admitted = s.add(domain.PriorityMedium)
	assert.False(t, admitted)
	assert.Equal(t, int64(2), s.assertConsistent())
}

func (s *QueueTestSuite) TestHighBypassesLimit() {
	t := s.T()
	s.limit(2)

	for i := 0; i < 2; i++ {
		_, admitted := s.add(domain.PriorityLow)
		require.True(t, admitted)
	}
	_, admitted := s.add(domain.PriorityHigh)
	assert.True(t, admitted)
	_, admitted = s.add(domain.PriorityHigh)
	assert.True(t, admitted)
	assert.Equal(t, int64(4), s.assertConsistent())

	// 超过上限之后 Medium 仍然只能挤掉 Low
	_, admitted = s.add(domain.PriorityMedium)
	assert.True(t, admitted)
	assert.Equal(t, int64(4), s.assertConsistent())
}

func (s *QueueTestSuite) TestRemove() {
	t := s.T()
	ctx := context.Background()
	s.limit(3)

	msg, admitted := s.add(domain.PriorityMedium)
	require.True(t, admitted)
	_, admitted = s.add(domain.PriorityLow)
	require.True(t, admitted)

	require.NoError(t, s.queue.Remove(ctx, msg))
	assert.Equal(t, int64(1), s.assertConsistent())

	jobs, err := s.scheduler.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.NotEqual(t, msg.SchedulerJobID, jobs[0].ID)

	found, err := s.repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Empty(t, found.SchedulerJobID)

	// 没有调度过的消息直接忽略
	require.NoError(t, s.queue.Remove(ctx, s.createMessage(domain.PriorityLow)))
	assert.Equal(t, int64(1), s.assertConsistent())
}

func (s *QueueTestSuite) TestSchedulerUnavailable() {
	t := s.T()
	ctx := context.Background()
	s.limit(3)

	mockScheduler := schedulermocks.NewMockScheduler(s.ctrl)
	mockScheduler.EXPECT().Schedule(gomock.Any(), gomock.Any()).
		Return(errors.New("redis 挂了"))
	q := s.newQueue(mockScheduler)

	msg := s.createMessage(domain.PriorityLow)
	jobID, admitted, err := q.Add(ctx, msg)
	assert.ErrorIs(t, err, errs.ErrSchedulerUnavailable)
	assert.False(t, admitted)
	assert.Empty(t, jobID)
	assert.Zero(t, s.assertConsistent())

	// 消息本身还在，写回的任务ID也被清掉
	found, err := s.repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Empty(t, found.SchedulerJobID)
}

// 任务注册之后可能马上触发，触发时消息上必须已经是这个任务ID
func (s *QueueTestSuite) TestJobFiresDuringSchedule() {
	t := s.T()
	ctx := context.Background()
	s.limit(3)

	msg := s.createMessage(domain.PriorityMedium)
	var fired domain.Job
	mockScheduler := schedulermocks.NewMockScheduler(s.ctrl)
	mockScheduler.EXPECT().Schedule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, job domain.Job) error {
			fired = job
			found, err := s.repo.GetByID(ctx, job.MessageID)
			if err != nil {
				return err
			}
			assert.Equal(t, job.ID, found.SchedulerJobID)
			return nil
		})
	q := s.newQueue(mockScheduler)

	jobID, admitted, err := q.Add(ctx, msg)
	require.NoError(t, err)
	assert.True(t, admitted)
	assert.Equal(t, jobID, fired.ID)
	assert.Equal(t, msg.ID, fired.MessageID)
	assert.True(t, msg.DeliverOn.Equal(fired.RunAt))
	assert.Equal(t, int64(1), s.assertConsistent())
}

func (s *QueueTestSuite) TestClearAndList() {
	t := s.T()
	ctx := context.Background()
	s.limit(3)

	_, admitted := s.add(domain.PriorityLow)
	require.True(t, admitted)

	_, err := s.queue.List(ctx, 1, s.day, domain.Priority("urgent"))
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	require.NoError(t, s.queue.Clear(ctx, 1, s.day))
	assert.Zero(t, s.assertConsistent())
}

func (s *QueueTestSuite) TestStrictLimit() {
	t := s.T()
	ctx := context.Background()
	s.limit(3)
	q := s.newQueue(s.scheduler, WithStrictLimit(dlockredis.NewClient(s.rdb)))

	msgs := make([]domain.Message, 0, 10)
	for i := 0; i < 10; i++ {
		msgs = append(msgs, s.createMessage(domain.PriorityLow))
	}
	var wg sync.WaitGroup
	for _, msg := range msgs {
		wg.Add(1)
		go func(msg domain.Message) {
			defer wg.Done()
			// 拿不到锁的请求会返回 error，这里只关心计数
			_, _, _ = q.Add(ctx, msg)
		}(msg)
	}
	wg.Wait()

	cnt := s.assertConsistent()
	assert.LessOrEqual(t, cnt, int64(3))
}
