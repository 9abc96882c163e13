package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/errs"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// Service 用户配置，只暴露推送调度关心的部分
//
//go:generate mockgen -source=./service.go -destination=./mocks/profile.mock.go -package=profilemocks -typed Service
type Service interface {
	// DailyLimit 每天最多推送多少条，取不到配置的时候返回默认值
	DailyLimit(ctx context.Context, userID int64) int
	// Location 用户所在时区，取不到配置的时候返回 UTC
	Location(ctx context.Context, userID int64) *time.Location
	Save(ctx context.Context, profile domain.UserProfile) error
	// ResetDailyLimits oldValue 为 nil 时重置所有用户
	ResetDailyLimits(ctx context.Context, newValue int, oldValue *int) (int64, error)
}

type service struct {
	repo   repository.UserProfileRepository
	logger *elog.Component
}

func NewService(repo repository.UserProfileRepository) Service {
	return &service{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) DailyLimit(ctx context.Context, userID int64) int {
	return s.get(ctx, userID).DailyLimit()
}

func (s *service) Location(ctx context.Context, userID int64) *time.Location {
	return s.get(ctx, userID).Location()
}

func (s *service) get(ctx context.Context, userID int64) domain.UserProfile {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrProfileNotFound) {
			s.logger.Warn("获取用户配置失败，使用默认配置", elog.Int64("userID", userID), elog.FieldErr(err))
		}
		return domain.UserProfile{UserID: userID}
	}
	return profile
}

func (s *service) Save(ctx context.Context, profile domain.UserProfile) error {
	if profile.UserID <= 0 {
		return fmt.Errorf("%w: UserID = %d", errs.ErrInvalidParameter, profile.UserID)
	}
	if profile.Timezone != "" {
		if _, err := time.LoadLocation(profile.Timezone); err != nil {
			return fmt.Errorf("%w: Timezone = %q", errs.ErrInvalidParameter, profile.Timezone)
		}
	}
	return s.repo.Save(ctx, profile)
}

func (s *service) ResetDailyLimits(ctx context.Context, newValue int, oldValue *int) (int64, error) {
	if newValue <= 0 {
		return 0, fmt.Errorf("%w: newValue = %d", errs.ErrInvalidParameter, newValue)
	}
	cnt, err := s.repo.ResetDailyLimits(ctx, newValue, oldValue)
	if err != nil {
		return 0, err
	}
	s.logger.Info("重置每日推送上限", elog.Int("newValue", newValue), elog.Int64("count", cnt))
	return cnt, nil
}
