package dao

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/errs"
	"gitee.com/flycash/notification-scheduler/internal/pkg/dao"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type MessageDAO interface {
	// Create 插入一条消息，唯一索引冲突的时候返回 errs.ErrMessageDuplicate
	Create(ctx context.Context, data Message) (Message, error)
	GetByID(ctx context.Context, id uint64) (Message, error)
	// GetByUniqueKey 按去重维度查找
	GetByUniqueKey(ctx context.Context, data Message) (Message, error)

	// UpdateDelivery 写回投递结果和网关诊断信息
	// 投递时间已经被修改的时候不写，返回 errs.ErrMessageChanged
	UpdateDelivery(ctx context.Context, data Message) error
	SetSchedulerJobID(ctx context.Context, id uint64, jobID string) error
	// ClearSchedulerJobID 任务被挤掉或者取消之后，解除消息和任务的关联
	ClearSchedulerJobID(ctx context.Context, jobID string) error
	// Reschedule 修改投递时间，并清空投递结果
	Reschedule(ctx context.Context, id uint64, deliverOn int64) error
	Delete(ctx context.Context, id uint64) error

	FindExpired(ctx context.Context, now int64) ([]Message, error)
	// FindReady 按 ID 递增分页查找还没有投递结果并且已经到期的消息
	FindReady(ctx context.Context, startID uint64, before int64, limit int) ([]Message, error)

	DeleteExpired(ctx context.Context, now int64) (int64, error)
	// DeleteDelivered 删除已经有投递结果并且满足条件的消息，不会删除还没有投递结果的消息
	DeleteDelivered(ctx context.Context, filter MessageFilter) (int64, error)
}

// Message 消息表
type Message struct {
	ID              uint64                          `gorm:"primaryKey;autoIncrement:false;comment:'雪花算法ID'"`
	UserID          int64                           `gorm:"NOT NULL;uniqueIndex:uk_user_message,priority:1;comment:'接收用户'"`
	Title           string                          `gorm:"type:VARCHAR(256);NOT NULL;uniqueIndex:uk_user_message,priority:2"`
	Body            string                          `gorm:"type:VARCHAR(256);NOT NULL;uniqueIndex:uk_user_message,priority:3"`
	DeliverOn       int64                           `gorm:"NOT NULL;uniqueIndex:uk_user_message,priority:4;index:idx_success_deliver_on,priority:2;comment:'计划投递时间，UTC毫秒'"`
	RelatedKind     string                          `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uk_user_message,priority:5;comment:'关联对象类型，没有关联对象时为空'"`
	RelatedID       uint64                          `gorm:"NOT NULL;uniqueIndex:uk_user_message,priority:6"`
	Success         sql.NullBool                    `gorm:"index:idx_success_deliver_on,priority:1;comment:'NULL代表还没有投递结果'"`
	ExpireOn        sql.NullInt64                   `gorm:"index:idx_expire_on;comment:'投递成功之后才有值'"`
	Priority        string                          `gorm:"type:VARCHAR(8);NOT NULL"`
	SchedulerJobID  string                          `gorm:"type:VARCHAR(64);NOT NULL;index:idx_scheduler_job_id;comment:'延迟调度器任务ID'"`
	ResponseCode    int                             `gorm:"NOT NULL"`
	ResponseText    string                          `gorm:"type:TEXT"`
	ResponseData    dao.JSONColumn[json.RawMessage] `gorm:"type:TEXT"`
	RegistrationIDs dao.JSONColumn[[]string]        `gorm:"type:TEXT"`
	Ctime           int64
	Utime           int64
}

// MessageFilter 零值字段不参与过滤
type MessageFilter struct {
	UserID      int64
	Before      int64
	After       int64
	RelatedKind string
}

type messageDAO struct {
	db *egorm.Component
}

func NewMessageDAO(db *egorm.Component) MessageDAO {
	return &messageDAO{db: db}
}

func (d *messageDAO) Create(ctx context.Context, data Message) (Message, error) {
	now := time.Now().UnixMilli()
	data.Ctime, data.Utime = now, now
	err := d.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		if isUniqueConstraintError(err) {
			return Message{}, fmt.Errorf("%w", errs.ErrMessageDuplicate)
		}
		return Message{}, err
	}
	return data, nil
}

func (d *messageDAO) GetByID(ctx context.Context, id uint64) (Message, error) {
	var res Message
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Message{}, fmt.Errorf("%w: id = %d", errs.ErrMessageNotFound, id)
	}
	return res, err
}

func (d *messageDAO) GetByUniqueKey(ctx context.Context, data Message) (Message, error) {
	var res Message
	err := d.db.WithContext(ctx).
		Where("user_id = ? AND title = ? AND body = ? AND deliver_on = ? AND related_kind = ? AND related_id = ?",
			data.UserID, data.Title, data.Body, data.DeliverOn, data.RelatedKind, data.RelatedID).
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Message{}, fmt.Errorf("%w", errs.ErrMessageNotFound)
	}
	return res, err
}

func (d *messageDAO) UpdateDelivery(ctx context.Context, data Message) error {
	res := d.db.WithContext(ctx).Model(&Message{}).
		Where("id = ? AND deliver_on = ?", data.ID, data.DeliverOn).
		Updates(map[string]any{
			"success":          data.Success,
			"expire_on":        data.ExpireOn,
			"response_code":    data.ResponseCode,
			"response_text":    data.ResponseText,
			"response_data":    data.ResponseData,
			"registration_ids": data.RegistrationIDs,
			"utime":            time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Message{}).Where("id = ?", data.ID).Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt == 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrMessageNotFound, data.ID)
	}
	return fmt.Errorf("%w: id = %d", errs.ErrMessageChanged, data.ID)
}

func (d *messageDAO) SetSchedulerJobID(ctx context.Context, id uint64, jobID string) error {
	return d.db.WithContext(ctx).Model(&Message{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"scheduler_job_id": jobID,
			"utime":            time.Now().UnixMilli(),
		}).Error
}

func (d *messageDAO) ClearSchedulerJobID(ctx context.Context, jobID string) error {
	if jobID == "" {
		return nil
	}
	return d.db.WithContext(ctx).Model(&Message{}).
		Where("scheduler_job_id = ?", jobID).
		Updates(map[string]any{
			"scheduler_job_id": "",
			"utime":            time.Now().UnixMilli(),
		}).Error
}

func (d *messageDAO) Reschedule(ctx context.Context, id uint64, deliverOn int64) error {
	res := d.db.WithContext(ctx).Model(&Message{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"deliver_on":       deliverOn,
			"success":          nil,
			"expire_on":        nil,
			"scheduler_job_id": "",
			"utime":            time.Now().UnixMilli(),
		})
	if res.Error != nil {
		if isUniqueConstraintError(res.Error) {
			return fmt.Errorf("%w", errs.ErrMessageDuplicate)
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrMessageNotFound, id)
	}
	return nil
}

func (d *messageDAO) Delete(ctx context.Context, id uint64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Message{}).Error
}

func (d *messageDAO) FindExpired(ctx context.Context, now int64) ([]Message, error) {
	var res []Message
	err := d.db.WithContext(ctx).
		Where("expire_on IS NOT NULL AND expire_on <= ?", now).
		Order("id").
		Find(&res).Error
	return res, err
}

func (d *messageDAO) FindReady(ctx context.Context, startID uint64, before int64, limit int) ([]Message, error) {
	var res []Message
	err := d.db.WithContext(ctx).
		Where("success IS NULL AND deliver_on <= ? AND id > ?", before, startID).
		Order("id").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *messageDAO) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	res := d.db.WithContext(ctx).
		Where("expire_on IS NOT NULL AND expire_on <= ?", now).
		Delete(&Message{})
	return res.RowsAffected, res.Error
}

func (d *messageDAO) DeleteDelivered(ctx context.Context, filter MessageFilter) (int64, error) {
	query := d.db.WithContext(ctx).Where("success IS NOT NULL")
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Before > 0 {
		query = query.Where("deliver_on < ?", filter.Before)
	}
	if filter.After > 0 {
		query = query.Where("deliver_on > ?", filter.After)
	}
	if filter.RelatedKind != "" {
		query = query.Where("related_kind = ?", filter.RelatedKind)
	}
	res := query.Delete(&Message{})
	return res.RowsAffected, res.Error
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}
