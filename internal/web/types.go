package web

import (
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
)

type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// CreateReq DeliverOn 是 RFC3339 或者不带时区的 2006-01-02 15:04:05
type CreateReq struct {
	UserID     int64  `json:"userId"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	DeliverOn  string `json:"deliverOn"`
	ObjectType string `json:"objectType"`
	ObjectID   uint64 `json:"objectId"`
	Priority   string `json:"priority"`
}

type CreateResp struct {
	Message  Message `json:"message"`
	Admitted bool    `json:"admitted"`
}

// SnoozeReq Snooze 是延后的小时数，Date 和 Time 同时提供时优先使用
type SnoozeReq struct {
	Snooze int    `json:"snooze"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

type Message struct {
	ID           uint64     `json:"id"`
	UserID       int64      `json:"userId"`
	Title        string     `json:"title"`
	Body         string     `json:"message"`
	ObjectType   string     `json:"objectType,omitempty"`
	ObjectID     uint64     `json:"objectId,omitempty"`
	DeliverOn    time.Time  `json:"deliverOn"`
	ExpireOn     *time.Time `json:"expireOn,omitempty"`
	Outcome      string     `json:"outcome"`
	Priority     string     `json:"priority"`
	Scheduled    bool       `json:"scheduled"`
	ResponseCode int        `json:"responseCode,omitempty"`
}

func newMessage(msg domain.Message) Message {
	res := Message{
		ID:           msg.ID,
		UserID:       msg.UserID,
		Title:        msg.Title,
		Body:         msg.Body,
		DeliverOn:    msg.DeliverOn,
		ExpireOn:     msg.ExpireOn,
		Outcome:      msg.Outcome.String(),
		Priority:     msg.Priority.String(),
		Scheduled:    msg.Scheduled(),
		ResponseCode: msg.ResponseCode,
	}
	if msg.Related != nil {
		res.ObjectType = msg.Related.Kind
		res.ObjectID = msg.Related.ID
	}
	return res
}

type QueueResp struct {
	UserID int64    `json:"userId"`
	Date   string   `json:"date"`
	Count  int64    `json:"count"`
	Low    []string `json:"low"`
	Medium []string `json:"medium"`
	High   []string `json:"high"`
}

type Job struct {
	ID        string    `json:"id"`
	MessageID uint64    `json:"messageId"`
	RunAt     time.Time `json:"runAt"`
}
