package local

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache"
	ca "github.com/patrickmn/go-cache"
)

var _ cache.UserProfileCache = (*UserProfileCache)(nil)

// UserProfileCache 用户配置变化很少，放本地缓存就够了
type UserProfileCache struct {
	c *ca.Cache
}

func NewUserProfileCache(c *ca.Cache) *UserProfileCache {
	return &UserProfileCache{c: c}
}

// NewDefaultUserProfileCache 缓存十分钟
func NewDefaultUserProfileCache() *UserProfileCache {
	const (
		expiration      = 10 * time.Minute
		cleanupInterval = time.Minute
	)
	return NewUserProfileCache(ca.New(expiration, cleanupInterval))
}

func (l *UserProfileCache) Get(_ context.Context, userID int64) (domain.UserProfile, error) {
	v, ok := l.c.Get(profileKey(userID))
	if !ok {
		return domain.UserProfile{}, cache.ErrKeyNotFound
	}
	return v.(domain.UserProfile), nil
}

func (l *UserProfileCache) Set(_ context.Context, profile domain.UserProfile) error {
	l.c.Set(profileKey(profile.UserID), profile, ca.DefaultExpiration)
	return nil
}

func (l *UserProfileCache) Del(_ context.Context, userID int64) error {
	l.c.Delete(profileKey(userID))
	return nil
}

func (l *UserProfileCache) Clear(_ context.Context) error {
	l.c.Flush()
	return nil
}

func profileKey(userID int64) string {
	return fmt.Sprintf("profile:%d", userID)
}
