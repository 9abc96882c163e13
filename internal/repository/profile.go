package repository

import (
	"context"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache"
	"gitee.com/flycash/notification-scheduler/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type UserProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (domain.UserProfile, error)
	Save(ctx context.Context, profile domain.UserProfile) error
	ResetDailyLimits(ctx context.Context, newValue int, oldValue *int) (int64, error)
}

type userProfileRepository struct {
	dao    dao.UserProfileDAO
	cache  cache.UserProfileCache
	logger *elog.Component
}

func NewUserProfileRepository(d dao.UserProfileDAO, c cache.UserProfileCache) UserProfileRepository {
	return &userProfileRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *userProfileRepository) GetByUserID(ctx context.Context, userID int64) (domain.UserProfile, error) {
	profile, err := r.cache.Get(ctx, userID)
	if err == nil {
		return profile, nil
	}
	entity, err := r.dao.GetByUserID(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, err
	}
	profile = domain.UserProfile{
		UserID:                    entity.UserID,
		Timezone:                  entity.Timezone,
		MaximumDailyNotifications: entity.MaximumDailyNotifications,
	}
	if err = r.cache.Set(ctx, profile); err != nil {
		r.logger.Warn("回写用户配置缓存失败", elog.Int64("userID", userID), elog.FieldErr(err))
	}
	return profile, nil
}

func (r *userProfileRepository) Save(ctx context.Context, profile domain.UserProfile) error {
	err := r.dao.Upsert(ctx, dao.UserProfile{
		UserID:                    profile.UserID,
		Timezone:                  profile.Timezone,
		MaximumDailyNotifications: profile.MaximumDailyNotifications,
	})
	if err != nil {
		return err
	}
	return r.cache.Del(ctx, profile.UserID)
}

func (r *userProfileRepository) ResetDailyLimits(ctx context.Context, newValue int, oldValue *int) (int64, error) {
	cnt, err := r.dao.ResetDailyLimits(ctx, newValue, oldValue)
	if err != nil {
		return 0, err
	}
	return cnt, r.cache.Clear(ctx)
}
