package domain

import "time"

// DefaultDailyLimit 用户没有配置时每天最多推送的条数
const DefaultDailyLimit = 20

type UserProfile struct {
	UserID                    int64
	Timezone                  string
	MaximumDailyNotifications int
}

// Location 解析不了的时区一律按 UTC 处理
func (p UserProfile) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (p UserProfile) DailyLimit() int {
	if p.MaximumDailyNotifications <= 0 {
		return DefaultDailyLimit
	}
	return p.MaximumDailyNotifications
}
