package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserProfileDAO interface {
	GetByUserID(ctx context.Context, userID int64) (UserProfile, error)
	Upsert(ctx context.Context, data UserProfile) error
	// ResetDailyLimits 把每日推送上限重置为 newValue，oldValue 不为 nil 时只修改等于 oldValue 的记录
	ResetDailyLimits(ctx context.Context, newValue int, oldValue *int) (int64, error)
}

type UserProfile struct {
	UserID                    int64  `gorm:"primaryKey;autoIncrement:false"`
	Timezone                  string `gorm:"type:VARCHAR(64);NOT NULL;comment:'IANA时区'"`
	MaximumDailyNotifications int    `gorm:"NOT NULL;comment:'每天最多推送多少条'"`
	Ctime                     int64
	Utime                     int64
}

type userProfileDAO struct {
	db *egorm.Component
}

func NewUserProfileDAO(db *egorm.Component) UserProfileDAO {
	return &userProfileDAO{db: db}
}

func (d *userProfileDAO) GetByUserID(ctx context.Context, userID int64) (UserProfile, error) {
	var res UserProfile
	err := d.db.WithContext(ctx).Where("user_id = ?", userID).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return UserProfile{}, fmt.Errorf("%w: user_id = %d", errs.ErrProfileNotFound, userID)
	}
	return res, err
}

func (d *userProfileDAO) Upsert(ctx context.Context, data UserProfile) error {
	now := time.Now().UnixMilli()
	data.Ctime, data.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"timezone":                    data.Timezone,
			"maximum_daily_notifications": data.MaximumDailyNotifications,
			"utime":                       now,
		}),
	}).Create(&data).Error
}

func (d *userProfileDAO) ResetDailyLimits(ctx context.Context, newValue int, oldValue *int) (int64, error) {
	query := d.db.WithContext(ctx).Model(&UserProfile{})
	if oldValue != nil {
		query = query.Where("maximum_daily_notifications = ?", *oldValue)
	} else {
		query = query.Where("1 = 1")
	}
	res := query.Updates(map[string]any{
		"maximum_daily_notifications": newValue,
		"utime":                       time.Now().UnixMilli(),
	})
	return res.RowsAffected, res.Error
}
