package ioc

import (
	"context"

	snoozeevt "gitee.com/flycash/notification-scheduler/internal/event/snooze"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"
)

func InitMQ() mq.MQ {
	type Topic struct {
		Name       string `yaml:"name"`
		Partitions int    `yaml:"partitions"`
	}
	topics := []Topic{
		{
			Name:       snoozeevt.MessageSnoozedTopic,
			Partitions: 1,
		},
	}
	if econf.Get("mq.topics") != nil {
		if err := econf.UnmarshalKey("mq.topics", &topics); err != nil {
			panic(err)
		}
	}
	// 目前只有内存实现，事件只在进程内部消费
	q := memory.NewMQ()
	for _, t := range topics {
		err := q.CreateTopic(context.Background(), t.Name, t.Partitions)
		if err != nil {
			panic(err)
		}
	}
	return q
}

func InitSnoozeProducer(q mq.MQ) snoozeevt.Producer {
	p, err := snoozeevt.NewProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}
