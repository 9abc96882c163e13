package dao

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/errs"
	"github.com/ego-component/egorm"
)

type DeviceDAO interface {
	Create(ctx context.Context, data Device) (Device, error)
	FindByUserID(ctx context.Context, userID int64) ([]Device, error)
	DeleteByRegistrationIDs(ctx context.Context, registrationIDs []string) (int64, error)
}

// Device 用户的推送终端
type Device struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	UserID         int64  `gorm:"NOT NULL;uniqueIndex:uk_registration_user_device,priority:2;index:idx_user_id"`
	RegistrationID string `gorm:"type:VARCHAR(512);NOT NULL;uniqueIndex:uk_registration_user_device,priority:1;comment:'推送网关分配的注册ID'"`
	DeviceID       string `gorm:"type:VARCHAR(128);NOT NULL;uniqueIndex:uk_registration_user_device,priority:3"`
	DeviceName     string `gorm:"type:VARCHAR(128);NOT NULL"`
	DeviceType     string `gorm:"type:VARCHAR(16);NOT NULL"`
	Ctime          int64
	Utime          int64
}

type deviceDAO struct {
	db *egorm.Component
}

func NewDeviceDAO(db *egorm.Component) DeviceDAO {
	return &deviceDAO{db: db}
}

func (d *deviceDAO) Create(ctx context.Context, data Device) (Device, error) {
	now := time.Now().UnixMilli()
	data.Ctime, data.Utime = now, now
	err := d.db.WithContext(ctx).Create(&data).Error
	if isUniqueConstraintError(err) {
		return Device{}, fmt.Errorf("%w: 设备已经注册", errs.ErrInvalidParameter)
	}
	return data, err
}

func (d *deviceDAO) FindByUserID(ctx context.Context, userID int64) ([]Device, error) {
	var res []Device
	err := d.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&res).Error
	return res, err
}

func (d *deviceDAO) DeleteByRegistrationIDs(ctx context.Context, registrationIDs []string) (int64, error) {
	if len(registrationIDs) == 0 {
		return 0, nil
	}
	res := d.db.WithContext(ctx).Where("registration_id IN ?", registrationIDs).Delete(&Device{})
	return res.RowsAffected, res.Error
}
