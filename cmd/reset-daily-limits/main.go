package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/ioc"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache/local"
	"gitee.com/flycash/notification-scheduler/internal/repository/dao"
	"gitee.com/flycash/notification-scheduler/internal/service/profile"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/eflag"
	"github.com/gotomicro/ego/core/elog"
)

func init() {
	eflag.Register(
		&eflag.StringFlag{Name: "value", Usage: "新的每日推送上限", Default: strconv.Itoa(domain.DefaultDailyLimit)},
		&eflag.StringFlag{Name: "old", Usage: "只修改当前上限等于这个值的用户，不传则修改所有用户"},
	)
}

func main() {
	_ = ego.New()

	newValue, oldValue, err := parseArgs(eflag.String("value"), eflag.String("old"))
	if err != nil {
		elog.Panic("参数错误", elog.FieldErr(err))
	}

	db := ioc.InitDB()
	svc := profile.NewService(repository.NewUserProfileRepository(dao.NewUserProfileDAO(db),
		local.NewDefaultUserProfileCache()))
	const timeout = time.Minute
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	cnt, err := svc.ResetDailyLimits(ctx, newValue, oldValue)
	if err != nil {
		elog.Panic("重置每日推送上限失败", elog.FieldErr(err))
	}
	fmt.Printf("Updated %d profiles\n", cnt)
}

func parseArgs(value, old string) (int, *int, error) {
	newValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, nil, fmt.Errorf("value = %s: %w", value, err)
	}
	if old == "" {
		return newValue, nil, nil
	}
	oldValue, err := strconv.Atoi(old)
	if err != nil {
		return 0, nil, fmt.Errorf("old = %s: %w", old, err)
	}
	return newValue, &oldValue, nil
}
