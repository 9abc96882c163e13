package message

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/errs"
	snoozeevt "gitee.com/flycash/notification-scheduler/internal/event/snooze"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/service/dailyqueue"
	"gitee.com/flycash/notification-scheduler/internal/service/profile"
	"github.com/gotomicro/ego/core/elog"
	"github.com/sony/sonyflake"
)

// EnqueueHorizon 只有未来这段时间内要投递的消息才会进入日队列
const EnqueueHorizon = 24 * time.Hour

// CreateRequest 创建消息的参数
type CreateRequest struct {
	UserID int64
	Title  string
	Body   string
	// Location 为 time.Local 的时间视为没有时区，按照用户配置的时区解释
	DeliverOn time.Time
	Related   *domain.Related
	Priority  domain.Priority
}

// SnoozeRequest Hours 和 NewDeliverOn 二选一，Hours 优先
type SnoozeRequest struct {
	Hours        int
	NewDeliverOn time.Time
}

// Service 消息存储和去重
//
//go:generate mockgen -source=./service.go -destination=./mocks/message.mock.go -package=messagemocks -typed Service
type Service interface {
	// Create 同样的消息只会存一份，重复创建返回已有的记录
	Create(ctx context.Context, req CreateRequest) (domain.Message, error)
	GetByID(ctx context.Context, id uint64) (domain.Message, error)
	// Enqueue 尝试进入日队列，投递时间不在 (now, now+24h) 内的消息直接跳过
	Enqueue(ctx context.Context, msg domain.Message) (jobID string, admitted bool, err error)
	Snooze(ctx context.Context, id uint64, req SnoozeRequest) (domain.Message, error)
	Delete(ctx context.Context, id uint64) error
	Expired(ctx context.Context) ([]domain.Message, error)
	ReadyForDelivery(ctx context.Context, limit int) ([]domain.Message, error)
}

type service struct {
	repo        repository.MessageRepository
	devices     repository.DeviceRepository
	profiles    profile.Service
	queue       dailyqueue.Queue
	producer    snoozeevt.Producer
	idGenerator *sonyflake.Sonyflake
	logger      *elog.Component
}

func NewService(
	repo repository.MessageRepository,
	devices repository.DeviceRepository,
	profiles profile.Service,
	queue dailyqueue.Queue,
	producer snoozeevt.Producer,
	idGenerator *sonyflake.Sonyflake,
) Service {
	return &service{
		repo:        repo,
		devices:     devices,
		profiles:    profiles,
		queue:       queue,
		producer:    producer,
		idGenerator: idGenerator,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (domain.Message, error) {
	if req.Priority == "" {
		req.Priority = domain.PriorityLow
	}
	msg := domain.Message{
		UserID:    req.UserID,
		Title:     req.Title,
		Body:      req.Body,
		Related:   req.Related,
		DeliverOn: s.normalize(ctx, req.UserID, req.DeliverOn),
		Priority:  req.Priority,
	}
	if err := msg.Validate(); err != nil {
		return domain.Message{}, err
	}

	endpoints, err := s.devices.ActiveEndpoints(ctx, msg.UserID)
	if err != nil {
		return domain.Message{}, err
	}
	if len(endpoints) == 0 {
		return domain.Message{}, fmt.Errorf("%w: userID = %d", errs.ErrNoRegisteredDevice, msg.UserID)
	}

	existing, err := s.repo.GetByUniqueKey(ctx, msg)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrMessageNotFound) {
		return domain.Message{}, err
	}

	id, err := s.idGenerator.NextID()
	if err != nil {
		return domain.Message{}, fmt.Errorf("生成消息ID失败 %w", err)
	}
	msg.ID = id
	created, err := s.repo.Create(ctx, msg)
	if errors.Is(err, errs.ErrMessageDuplicate) {
		// 并发创建的时候输给了别人，返回别人写入的那一条
		return s.repo.GetByUniqueKey(ctx, msg)
	}
	return created, err
}

// normalize 没有时区的时间按用户时区解释，最终统一成 UTC 毫秒
func (s *service) normalize(ctx context.Context, userID int64, t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	if t.Location() == time.Local {
		loc := s.profiles.Location(ctx, userID)
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	}
	return t.UTC().Truncate(time.Millisecond)
}

func (s *service) GetByID(ctx context.Context, id uint64) (domain.Message, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Enqueue(ctx context.Context, msg domain.Message) (string, bool, error) {
	now := time.Now()
	if !msg.DeliverOn.After(now) || !msg.DeliverOn.Before(now.Add(EnqueueHorizon)) {
		return "", false, nil
	}
	if msg.Scheduled() {
		if err := s.queue.Remove(ctx, msg); err != nil {
			return "", false, err
		}
	}
	return s.queue.Add(ctx, msg)
}

func (s *service) Snooze(ctx context.Context, id uint64, req SnoozeRequest) (domain.Message, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Message{}, err
	}

	var deliverOn time.Time
	switch {
	case req.Hours > 0:
		deliverOn = time.Now().Add(time.Duration(req.Hours) * time.Hour).UTC().Truncate(time.Millisecond)
	case !req.NewDeliverOn.IsZero():
		deliverOn = s.normalize(ctx, msg.UserID, req.NewDeliverOn)
	default:
		return domain.Message{}, fmt.Errorf("%w: 需要指定延后的小时数或者新的投递时间", errs.ErrInvalidParameter)
	}

	// 先从原来那天的队列里拿出来，失败的话消息保持原样
	if err = s.queue.Remove(ctx, msg); err != nil {
		return domain.Message{}, err
	}
	if err = s.repo.Reschedule(ctx, id, deliverOn); err != nil {
		return domain.Message{}, err
	}
	msg.Reschedule(deliverOn)
	msg.SchedulerJobID = ""

	jobID, admitted, err := s.Enqueue(ctx, msg)
	if err != nil {
		s.logger.Error("延后的消息进入日队列失败", elog.Any("messageID", id), elog.FieldErr(err))
		return msg, err
	}
	if admitted {
		msg.SchedulerJobID = jobID
	}
	s.publishSnoozed(ctx, msg)
	return msg, nil
}

func (s *service) publishSnoozed(ctx context.Context, msg domain.Message) {
	evt := snoozeevt.MessageSnoozedEvent{
		MessageID: msg.ID,
		UserID:    msg.UserID,
		DeliverOn: msg.DeliverOn.UnixMilli(),
	}
	if msg.Related != nil {
		evt.RelatedKind = msg.Related.Kind
		evt.RelatedID = msg.Related.ID
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Warn("发送消息延后事件失败", elog.Any("messageID", msg.ID), elog.FieldErr(err))
	}
}

func (s *service) Delete(ctx context.Context, id uint64) error {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = s.queue.Remove(ctx, msg); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Expired(ctx context.Context) ([]domain.Message, error) {
	return s.repo.FindExpired(ctx, time.Now())
}

func (s *service) ReadyForDelivery(ctx context.Context, limit int) ([]domain.Message, error) {
	return s.repo.FindReady(ctx, 0, time.Now(), limit)
}
