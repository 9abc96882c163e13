package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/ioc"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/repository/dao"
	"gitee.com/flycash/notification-scheduler/internal/service/sweeper"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/eflag"
	"github.com/gotomicro/ego/core/elog"
)

func init() {
	eflag.Register(
		&eflag.StringFlag{Name: "user", Usage: "只清理这个用户的消息"},
		&eflag.StringFlag{Name: "before", Usage: "只清理投递时间早于这一天的消息，格式 2006-01-02"},
		&eflag.StringFlag{Name: "after", Usage: "只清理投递时间晚于这一天的消息，格式 2006-01-02"},
		&eflag.StringFlag{Name: "type", Usage: "只清理关联对象是这个类型的消息"},
		&eflag.BoolFlag{Name: "all", Usage: "清理所有已经投递过的消息"},
	)
}

// 没有任何参数时只删除已经过期的消息
func main() {
	// ego.New 负责解析命令行参数和加载配置
	_ = ego.New()

	f, err := parseFilter(eflag.String("user"), eflag.String("before"), eflag.String("after"),
		eflag.String("type"), eflag.Bool("all"))
	if err != nil {
		elog.Panic("参数错误", elog.FieldErr(err))
	}

	db := ioc.InitDB()
	s := sweeper.NewSweeper(repository.NewMessageRepository(dao.NewMessageDAO(db)))
	const timeout = 10 * time.Minute
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	cnt, err := s.Sweep(ctx, f)
	if err != nil {
		elog.Panic("清理消息失败", elog.FieldErr(err))
	}
	fmt.Printf("Expired %d notifications\n", cnt)
}

func parseFilter(user, before, after, kind string, all bool) (sweeper.Filter, error) {
	f := sweeper.Filter{Kind: kind, All: all}
	var err error
	if user != "" {
		f.UserID, err = strconv.ParseInt(user, 10, 64)
		if err != nil {
			return sweeper.Filter{}, fmt.Errorf("user = %s: %w", user, err)
		}
	}
	if f.Before, err = parseDate(before); err != nil {
		return sweeper.Filter{}, err
	}
	if f.After, err = parseDate(after); err != nil {
		return sweeper.Filter{}, err
	}
	return f, nil
}

func parseDate(val string) (time.Time, error) {
	if val == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("日期格式应该是 2006-01-02: %w", err)
	}
	return t, nil
}
