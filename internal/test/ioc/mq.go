package ioc

import (
	"context"

	snoozeevt "gitee.com/flycash/notification-scheduler/internal/event/snooze"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

// InitMQ 使用内存实现，方便测试
func InitMQ() mq.MQ {
	q := memory.NewMQ()
	err := q.CreateTopic(context.Background(), snoozeevt.MessageSnoozedTopic, 1)
	if err != nil {
		panic(err)
	}
	return q
}
