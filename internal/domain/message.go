package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/errs"
)

// Priority 消息优先级，决定当天额度用完之后的准入行为
type Priority string

const (
	PriorityLow    Priority = "low"    // 额度满时直接拒绝，可被 Medium 挤掉
	PriorityMedium Priority = "medium" // 额度满时挤掉最近加入的一条 Low
	PriorityHigh   Priority = "high"   // 不受额度限制
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func (p Priority) String() string {
	return string(p)
}

// Outcome 投递结果，三态
type Outcome int8

const (
	OutcomeUnknown Outcome = iota // 还没投递，或者投递没有成功
	OutcomeSent                   // 推送网关确认收到
	OutcomeFailed                 // 历史数据里明确失败的记录
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Related 弱引用，只用来做展示和查找，不保证对应的对象还存在
type Related struct {
	Kind string
	ID   uint64
}

// Message 一条计划推送给用户的通知
type Message struct {
	ID        uint64
	UserID    int64
	Title     string
	Body      string
	Related   *Related
	DeliverOn time.Time  // UTC
	ExpireOn  *time.Time // 只有 OutcomeSent 的时候才有值
	Outcome   Outcome
	Priority  Priority
	// 空字符串代表还没有在调度器里注册
	SchedulerJobID string
	CreatedOn      time.Time

	// 下面是推送网关返回的诊断信息
	ResponseCode    int
	ResponseText    string
	ResponseData    json.RawMessage
	RegistrationIDs []string
}

func (m *Message) Validate() error {
	if m.UserID <= 0 {
		return fmt.Errorf("%w: UserID = %d", errs.ErrInvalidParameter, m.UserID)
	}
	if m.Title == "" && m.Body == "" {
		return fmt.Errorf("%w: Title 和 Body 不能同时为空", errs.ErrInvalidParameter)
	}
	if len(m.Title) > MaxTitleLength {
		return fmt.Errorf("%w: Title 长度 %d 超过 %d", errs.ErrInvalidParameter, len(m.Title), MaxTitleLength)
	}
	if len(m.Body) > MaxBodyLength {
		return fmt.Errorf("%w: Body 长度 %d 超过 %d", errs.ErrInvalidParameter, len(m.Body), MaxBodyLength)
	}
	if m.DeliverOn.IsZero() {
		return fmt.Errorf("%w: DeliverOn 不能为空", errs.ErrInvalidParameter)
	}
	if !m.Priority.Valid() {
		return fmt.Errorf("%w: Priority = %q", errs.ErrInvalidParameter, m.Priority)
	}
	return nil
}

const (
	MaxTitleLength = 256
	MaxBodyLength  = 256
)

// QueueDay 消息所属的日队列，按 UTC 日期划分
func (m *Message) QueueDay() string {
	return m.DeliverOn.UTC().Format(time.DateOnly)
}

func (m *Message) Scheduled() bool {
	return m.SchedulerJobID != ""
}

// MarkSent 网关确认之后调用，同时设置过期时间
func (m *Message) MarkSent(now time.Time, retention time.Duration) {
	m.Outcome = OutcomeSent
	expireOn := now.Add(retention).UTC()
	m.ExpireOn = &expireOn
}

// Reschedule 延后投递，之前的投递结果全部作废
func (m *Message) Reschedule(deliverOn time.Time) {
	m.DeliverOn = deliverOn.UTC()
	m.Outcome = OutcomeUnknown
	m.ExpireOn = nil
}

// Payload 下发给设备的内容
func (m *Message) Payload(production bool) ([]byte, error) {
	payload := map[string]any{
		"id":         m.ID,
		"to":         m.UserID,
		"title":      m.Title,
		"message":    m.Body,
		"production": production,
	}
	if m.Related != nil {
		payload["object_type"] = m.Related.Kind
		payload["object_id"] = m.Related.ID
	} else {
		payload["object_type"] = nil
		payload["object_id"] = nil
	}
	return json.Marshal(payload)
}
