package repository

import (
	"context"
	"database/sql"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	pkgdao "gitee.com/flycash/notification-scheduler/internal/pkg/dao"
	"gitee.com/flycash/notification-scheduler/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

// MessageRepository 消息仓储接口
type MessageRepository interface {
	Create(ctx context.Context, msg domain.Message) (domain.Message, error)
	GetByID(ctx context.Context, id uint64) (domain.Message, error)
	// GetByUniqueKey 按照 (用户, 标题, 内容, 投递时间, 关联对象) 查找
	GetByUniqueKey(ctx context.Context, msg domain.Message) (domain.Message, error)

	UpdateDelivery(ctx context.Context, msg domain.Message) error
	SetSchedulerJobID(ctx context.Context, id uint64, jobID string) error
	ClearSchedulerJobID(ctx context.Context, jobID string) error
	Reschedule(ctx context.Context, id uint64, deliverOn time.Time) error
	Delete(ctx context.Context, id uint64) error

	FindExpired(ctx context.Context, now time.Time) ([]domain.Message, error)
	FindReady(ctx context.Context, startID uint64, before time.Time, limit int) ([]domain.Message, error)

	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteDelivered(ctx context.Context, filter MessageFilter) (int64, error)
}

// MessageFilter 零值字段不参与过滤
type MessageFilter struct {
	UserID      int64
	Before      time.Time
	After       time.Time
	RelatedKind string
}

type messageRepository struct {
	dao dao.MessageDAO
}

func NewMessageRepository(d dao.MessageDAO) MessageRepository {
	return &messageRepository{dao: d}
}

func (r *messageRepository) Create(ctx context.Context, msg domain.Message) (domain.Message, error) {
	created, err := r.dao.Create(ctx, r.toEntity(msg))
	if err != nil {
		return domain.Message{}, err
	}
	return r.toDomain(created), nil
}

func (r *messageRepository) GetByID(ctx context.Context, id uint64) (domain.Message, error) {
	entity, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Message{}, err
	}
	return r.toDomain(entity), nil
}

func (r *messageRepository) GetByUniqueKey(ctx context.Context, msg domain.Message) (domain.Message, error) {
	entity, err := r.dao.GetByUniqueKey(ctx, r.toEntity(msg))
	if err != nil {
		return domain.Message{}, err
	}
	return r.toDomain(entity), nil
}

func (r *messageRepository) UpdateDelivery(ctx context.Context, msg domain.Message) error {
	return r.dao.UpdateDelivery(ctx, r.toEntity(msg))
}

func (r *messageRepository) SetSchedulerJobID(ctx context.Context, id uint64, jobID string) error {
	return r.dao.SetSchedulerJobID(ctx, id, jobID)
}

func (r *messageRepository) ClearSchedulerJobID(ctx context.Context, jobID string) error {
	return r.dao.ClearSchedulerJobID(ctx, jobID)
}

func (r *messageRepository) Reschedule(ctx context.Context, id uint64, deliverOn time.Time) error {
	return r.dao.Reschedule(ctx, id, deliverOn.UnixMilli())
}

func (r *messageRepository) Delete(ctx context.Context, id uint64) error {
	return r.dao.Delete(ctx, id)
}

func (r *messageRepository) FindExpired(ctx context.Context, now time.Time) ([]domain.Message, error) {
	entities, err := r.dao.FindExpired(ctx, now.UnixMilli())
	if err != nil {
		return nil, err
	}
	return r.toDomains(entities), nil
}

func (r *messageRepository) FindReady(ctx context.Context, startID uint64, before time.Time, limit int) ([]domain.Message, error) {
	entities, err := r.dao.FindReady(ctx, startID, before.UnixMilli(), limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(entities), nil
}

func (r *messageRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.dao.DeleteExpired(ctx, now.UnixMilli())
}

func (r *messageRepository) DeleteDelivered(ctx context.Context, filter MessageFilter) (int64, error) {
	f := dao.MessageFilter{
		UserID:      filter.UserID,
		RelatedKind: filter.RelatedKind,
	}
	if !filter.Before.IsZero() {
		f.Before = filter.Before.UnixMilli()
	}
	if !filter.After.IsZero() {
		f.After = filter.After.UnixMilli()
	}
	return r.dao.DeleteDelivered(ctx, f)
}

func (r *messageRepository) toDomains(entities []dao.Message) []domain.Message {
	return slice.Map(entities, func(_ int, src dao.Message) domain.Message {
		return r.toDomain(src)
	})
}

func (r *messageRepository) toEntity(msg domain.Message) dao.Message {
	entity := dao.Message{
		ID:             msg.ID,
		UserID:         msg.UserID,
		Title:          msg.Title,
		Body:           msg.Body,
		DeliverOn:      msg.DeliverOn.UnixMilli(),
		Priority:       msg.Priority.String(),
		SchedulerJobID: msg.SchedulerJobID,
		ResponseCode:   msg.ResponseCode,
		ResponseText:   msg.ResponseText,
		Ctime:          msg.CreatedOn.UnixMilli(),
	}
	if msg.Related != nil {
		entity.RelatedKind = msg.Related.Kind
		entity.RelatedID = msg.Related.ID
	}
	switch msg.Outcome {
	case domain.OutcomeSent:
		entity.Success = sql.NullBool{Bool: true, Valid: true}
	case domain.OutcomeFailed:
		entity.Success = sql.NullBool{Bool: false, Valid: true}
	}
	if msg.ExpireOn != nil {
		entity.ExpireOn = sql.NullInt64{Int64: msg.ExpireOn.UnixMilli(), Valid: true}
	}
	if len(msg.ResponseData) > 0 {
		entity.ResponseData = pkgdao.NewJSONColumn(msg.ResponseData)
	}
	if msg.RegistrationIDs != nil {
		entity.RegistrationIDs = pkgdao.NewJSONColumn(msg.RegistrationIDs)
	}
	return entity
}

func (r *messageRepository) toDomain(entity dao.Message) domain.Message {
	msg := domain.Message{
		ID:              entity.ID,
		UserID:          entity.UserID,
		Title:           entity.Title,
		Body:            entity.Body,
		DeliverOn:       time.UnixMilli(entity.DeliverOn).UTC(),
		Outcome:         domain.OutcomeUnknown,
		Priority:        domain.Priority(entity.Priority),
		SchedulerJobID:  entity.SchedulerJobID,
		CreatedOn:       time.UnixMilli(entity.Ctime).UTC(),
		ResponseCode:    entity.ResponseCode,
		ResponseText:    entity.ResponseText,
		ResponseData:    entity.ResponseData.Val,
		RegistrationIDs: entity.RegistrationIDs.Val,
	}
	if entity.RelatedKind != "" {
		msg.Related = &domain.Related{Kind: entity.RelatedKind, ID: entity.RelatedID}
	}
	if entity.Success.Valid {
		msg.Outcome = domain.OutcomeFailed
		if entity.Success.Bool {
			msg.Outcome = domain.OutcomeSent
		}
	}
	if entity.ExpireOn.Valid {
		expireOn := time.UnixMilli(entity.ExpireOn.Int64).UTC()
		msg.ExpireOn = &expireOn
	}
	return msg
}
