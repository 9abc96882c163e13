package snooze

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

const MessageSnoozedTopic = "message_snoozed"

// MessageSnoozedEvent 用户延后了一条消息
type MessageSnoozedEvent struct {
	MessageID   uint64 `json:"messageId"`
	UserID      int64  `json:"userId"`
	RelatedKind string `json:"relatedKind,omitempty"`
	RelatedID   uint64 `json:"relatedId,omitempty"`
	// UTC 毫秒
	DeliverOn int64 `json:"deliverOn"`
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=../mocks/message_snoozed_producer.mock.go -typed Producer
type Producer interface {
	Produce(ctx context.Context, evt MessageSnoozedEvent) error
}

type producer struct {
	producer mq.Producer
}

func NewProducer(q mq.MQ) (Producer, error) {
	p, err := q.Producer(MessageSnoozedTopic)
	if err != nil {
		return nil, err
	}
	return &producer{producer: p}, nil
}

func (p *producer) Produce(ctx context.Context, evt MessageSnoozedEvent) error {
	val, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("序列化延后事件失败 %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{
		Topic: MessageSnoozedTopic,
		Key:   []byte(fmt.Sprintf("%d", evt.UserID)),
		Value: val,
	})
	return err
}
