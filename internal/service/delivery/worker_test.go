package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	metricsmocks "gitee.com/flycash/notification-scheduler/internal/pkg/metrics/mocks"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/repository/dao"
	alertmocks "gitee.com/flycash/notification-scheduler/internal/service/alert/mocks"
	"gitee.com/flycash/notification-scheduler/internal/service/push"
	pushmocks "gitee.com/flycash/notification-scheduler/internal/service/push/mocks"
	testioc "gitee.com/flycash/notification-scheduler/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestWorkerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WorkerTestSuite))
}

type WorkerTestSuite struct {
	suite.Suite
	repo    repository.MessageRepository
	devices repository.DeviceRepository
	ctrl    *gomock.Controller
	gateway *pushmocks.MockGateway
	alerts  *alertmocks.MockChannel
	sink    *metricsmocks.MockSink
	worker  *Worker
	nextID  uint64
}

func (s *WorkerTestSuite) SetupTest() {
	db := testioc.InitDB()
	s.Require().NoError(dao.InitTables(db))
	s.repo = repository.NewMessageRepository(dao.NewMessageDAO(db))
	s.devices = repository.NewDeviceRepository(dao.NewDeviceDAO(db))
	s.ctrl = gomock.NewController(s.T())
	s.gateway = pushmocks.NewMockGateway(s.ctrl)
	s.alerts = alertmocks.NewMockChannel(s.ctrl)
	s.sink = metricsmocks.NewMockSink(s.ctrl)
	s.worker = NewWorker(s.repo, s.devices, s.gateway, s.sink, s.alerts, DefaultConfig())
	s.nextID = 0

	for _, regID := range []string{"reg-1", "reg-2"} {
		_, err := s.devices.Create(context.Background(), domain.Device{
			UserID:         1,
			RegistrationID: regID,
			DeviceID:       "device-" + regID,
			DeviceType:     domain.DeviceTypeAndroid,
		})
		s.Require().NoError(err)
	}
}

func (s *WorkerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *WorkerTestSuite) createMessage(userID int64) domain.Message {
	s.nextID++
	msg, err := s.repo.Create(context.Background(), domain.Message{
		ID:        s.nextID,
		UserID:    userID,
		Title:     "新的评论",
		Body:      "有人回复了你的帖子",
		Related:   &domain.Related{Kind: "comment", ID: 42},
		DeliverOn: time.Now().Add(-time.Minute).UTC().Truncate(time.Millisecond),
		Priority:  domain.PriorityLow,
	})
	s.Require().NoError(err)
	return msg
}

func (s *WorkerTestSuite) TestDeliver_Sent() {
	t := s.T()
	ctx := context.Background()
	msg := s.createMessage(1)

	raw := json.RawMessage(`{"success":1,"failure":1}`)
	s.gateway.EXPECT().Send(gomock.Any(), []string{"reg-1", "reg-2"}, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []string, payload []byte, _ push.Options) (push.Response, error) {
			var p map[string]any
			assert.NoError(t, json.Unmarshal(payload, &p))
			assert.Equal(t, "新的评论", p["title"])
			assert.Equal(t, "comment", p["object_type"])
			return push.Response{
				StatusCode: http.StatusOK,
				Status:     "200 OK",
				Success:    1,
				Failure:    1,
				Results: []push.TargetResult{
					{RegistrationID: "reg-1", MessageID: "0:1"},
					{RegistrationID: "reg-2", Error: "NotRegistered"},
				},
				Raw: raw,
			}, nil
		})
	s.sink.EXPECT().Increment("GCM Message Attempted", metricCategory)
	s.sink.EXPECT().Increment("GCM Message Sent", metricCategory)

	start := time.Now()
	require.NoError(t, s.worker.Deliver(ctx, msg.ID))

	found, err := s.repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSent, found.Outcome)
	require.NotNil(t, found.ExpireOn)
	assert.WithinDuration(t, start.Add(7*24*time.Hour), *found.ExpireOn, time.Minute)
	assert.Equal(t, http.StatusOK, found.ResponseCode)
	assert.Equal(t, "200 OK", found.ResponseText)
	assert.JSONEq(t, string(raw), string(found.ResponseData))
	assert.Equal(t, []string{"reg-1", "reg-2"}, found.RegistrationIDs)

	// 失效的注册ID被删掉了
	endpoints, err := s.devices.ActiveEndpoints(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"reg-1"}, endpoints)

	// 重复触发不会再发一次
	require.NoError(t, s.worker.Deliver(ctx, msg.ID))
}

func (s *WorkerTestSuite) TestDeliver_Rejected() {
	t := s.T()
	ctx := context.Background()
	msg := s.createMessage(1)

	s.gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(push.Response{StatusCode: http.StatusServiceUnavailable, Status: "503 Service Unavailable"}, nil)
	s.sink.EXPECT().Increment("GCM Message Attempted", metricCategory)
	s.alerts.EXPECT().PostMessage(gomock.Any(), "#tech", gomock.Any()).Return(nil)

	require.NoError(t, s.worker.Deliver(ctx, msg.ID))

	found, err := s.repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnknown, found.Outcome)
	assert.Nil(t, found.ExpireOn)
	assert.Equal(t, http.StatusServiceUnavailable, found.ResponseCode)

	// 还能被补发任务找到
	ready, err := s.repo.FindReady(ctx, 0, time.Now(), 10)
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, msg.ID, ready[0].ID)
}

func (s *WorkerTestSuite) TestDeliver_TransportError() {
	t := s.T()
	ctx := context.Background()
	msg := s.createMessage(1)

	s.gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(push.Response{}, errors.New("连接超时"))
	s.sink.EXPECT().Increment("GCM Message Attempted", metricCategory)
	// 告警失败不影响投递流程
	s.alerts.EXPECT().PostMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("slack 不可用"))

	require.NoError(t, s.worker.Deliver(ctx, msg.ID))

	found, err := s.repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnknown, found.Outcome)
	assert.Nil(t, found.ExpireOn)
	assert.Equal(t, "连接超时", found.ResponseText)
}

func (s *WorkerTestSuite) TestDeliver_NoDevice() {
	t := s.T()
	ctx := context.Background()
	msg := s.createMessage(2)

	s.gateway.EXPECT().Send(gomock.Any(), gomock.Len(0), gomock.Any(), gomock.Any()).
		Return(push.Response{StatusCode: http.StatusBadRequest}, nil)
	s.sink.EXPECT().Increment("GCM Message Attempted", metricCategory)
	s.alerts.EXPECT().PostMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.worker.Deliver(ctx, msg.ID))
}

func (s *WorkerTestSuite) TestDeliver_NotFound() {
	require.NoError(s.T(), s.worker.Deliver(context.Background(), 404))
}

func (s *WorkerTestSuite) TestDeliver_Panic() {
	t := s.T()
	msg := s.createMessage(1)

	s.gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []string, []byte, push.Options) (push.Response, error) {
			panic("网关客户端出 bug 了")
		})
	s.sink.EXPECT().Increment("GCM Message Attempted", metricCategory).Times(1)
	s.alerts.EXPECT().PostMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, text string) error {
			assert.Contains(t, text, "panic")
			assert.Contains(t, text, "goroutine")
			return nil
		})

	assert.NoError(t, s.worker.Deliver(context.Background(), msg.ID))
}

// 发送期间用户把消息延后了
func (s *WorkerTestSuite) TestDeliver_RescheduledDuringSend() {
	t := s.T()
	ctx := context.Background()
	msg := s.createMessage(1)
	newDeliverOn := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Millisecond)

	s.gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []string, []byte, push.Options) (push.Response, error) {
			require.NoError(t, s.repo.Reschedule(ctx, msg.ID, newDeliverOn))
			return push.Response{StatusCode: http.StatusOK, Status: "200 OK"}, nil
		})
	s.sink.EXPECT().Increment("GCM Message Attempted", metricCategory)
	s.sink.EXPECT().Increment("GCM Message Sent", metricCategory)

	require.NoError(t, s.worker.Deliver(ctx, msg.ID))

	found, err := s.repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnknown, found.Outcome)
	assert.Nil(t, found.ExpireOn)
	assert.True(t, newDeliverOn.Equal(found.DeliverOn))
}

// 发送之后才 panic，尝试次数只算一次
func (s *WorkerTestSuite) TestDeliver_PanicAfterSend() {
	t := s.T()
	msg := s.createMessage(1)

	s.gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(push.Response{}, errors.New("连接超时"))
	s.sink.EXPECT().Increment("GCM Message Attempted", metricCategory).Times(1)
	s.alerts.EXPECT().PostMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) error {
			panic("slack 客户端出 bug 了")
		})
	s.alerts.EXPECT().PostMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, s.worker.Deliver(context.Background(), msg.ID))
}

func (s *WorkerTestSuite) TestHandleJob() {
	t := s.T()
	ctx := context.Background()
	msg := s.createMessage(1)
	require.NoError(t, s.repo.SetSchedulerJobID(ctx, msg.ID, "job-current"))

	// 旧任务直接忽略
	require.NoError(t, s.worker.HandleJob(ctx, domain.Job{ID: "job-stale", MessageID: msg.ID}))
	// 消息已经被删除
	require.NoError(t, s.worker.HandleJob(ctx, domain.Job{ID: "job-gone", MessageID: 404}))

	s.gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(push.Response{StatusCode: http.StatusOK, Status: "200 OK"}, nil)
	s.sink.EXPECT().Increment(gomock.Any(), metricCategory).Times(2)
	require.NoError(t, s.worker.HandleJob(ctx, domain.Job{ID: "job-current", MessageID: msg.ID}))

	found, err := s.repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSent, found.Outcome)
}
