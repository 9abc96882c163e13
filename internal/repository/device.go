package repository

import (
	"context"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

// DeviceRepository 设备目录
type DeviceRepository interface {
	Create(ctx context.Context, device domain.Device) (domain.Device, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.Device, error)
	// ActiveEndpoints 用户当前可以接收推送的注册ID
	ActiveEndpoints(ctx context.Context, userID int64) ([]string, error)
	RemoveByRegistrationIDs(ctx context.Context, registrationIDs []string) (int64, error)
}

type deviceRepository struct {
	dao dao.DeviceDAO
}

func NewDeviceRepository(d dao.DeviceDAO) DeviceRepository {
	return &deviceRepository{dao: d}
}

func (r *deviceRepository) Create(ctx context.Context, device domain.Device) (domain.Device, error) {
	entity, err := r.dao.Create(ctx, dao.Device{
		UserID:         device.UserID,
		RegistrationID: device.RegistrationID,
		DeviceID:       device.DeviceID,
		DeviceName:     device.DeviceName,
		DeviceType:     string(device.DeviceType),
	})
	if err != nil {
		return domain.Device{}, err
	}
	return r.toDomain(entity), nil
}

func (r *deviceRepository) FindByUserID(ctx context.Context, userID int64) ([]domain.Device, error) {
	entities, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Device) domain.Device {
		return r.toDomain(src)
	}), nil
}

func (r *deviceRepository) ActiveEndpoints(ctx context.Context, userID int64) ([]string, error) {
	entities, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Device) string {
		return src.RegistrationID
	}), nil
}

func (r *deviceRepository) RemoveByRegistrationIDs(ctx context.Context, registrationIDs []string) (int64, error) {
	return r.dao.DeleteByRegistrationIDs(ctx, registrationIDs)
}

func (r *deviceRepository) toDomain(entity dao.Device) domain.Device {
	return domain.Device{
		ID:             entity.ID,
		UserID:         entity.UserID,
		RegistrationID: entity.RegistrationID,
		DeviceID:       entity.DeviceID,
		DeviceName:     entity.DeviceName,
		DeviceType:     domain.DeviceType(entity.DeviceType),
		CreatedOn:      time.UnixMilli(entity.Ctime).UTC(),
		UpdatedOn:      time.UnixMilli(entity.Utime).UTC(),
	}
}
