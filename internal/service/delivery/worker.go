package delivery

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/errs"
	"gitee.com/flycash/notification-scheduler/internal/pkg/metrics"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/service/alert"
	"gitee.com/flycash/notification-scheduler/internal/service/push"
	"github.com/gotomicro/ego/core/elog"
)

const (
	metricCategory = "Notifications"
	// MaxPayloadSize 网关对 payload 的限制，超过了只打日志
	MaxPayloadSize = 4096
)

type Config struct {
	Timeout        time.Duration `yaml:"timeout"`
	Retention      time.Duration `yaml:"retention"`
	Production     bool          `yaml:"production"`
	CollapseKey    string        `yaml:"collapseKey"`
	DelayWhileIdle bool          `yaml:"delayWhileIdle"`
	TimeToLive     time.Duration `yaml:"timeToLive"`
	AlertChannel   string        `yaml:"alertChannel"`
}

func DefaultConfig() Config {
	return Config{
		Timeout:      10 * time.Second,
		Retention:    7 * 24 * time.Hour,
		AlertChannel: "#tech",
	}
}

// Worker 到点之后把消息交给推送网关，并记录结果
type Worker struct {
	repo    repository.MessageRepository
	devices repository.DeviceRepository
	gateway push.Gateway
	sink    metrics.Sink
	alerts  alert.Channel
	cfg     Config
	logger  *elog.Component
}

func NewWorker(
	repo repository.MessageRepository,
	devices repository.DeviceRepository,
	gateway push.Gateway,
	sink metrics.Sink,
	alerts alert.Channel,
	cfg Config,
) *Worker {
	return &Worker{
		repo:    repo,
		devices: devices,
		gateway: gateway,
		sink:    sink,
		alerts:  alerts,
		cfg:     cfg,
		logger:  elog.DefaultLogger.With(elog.String("component", "delivery")),
	}
}

// HandleJob 调度器的回调，消息已经换了任务（延后、被挤掉）的时候忽略旧任务
func (w *Worker) HandleJob(ctx context.Context, job domain.Job) error {
	msg, err := w.repo.GetByID(ctx, job.MessageID)
	if errors.Is(err, errs.ErrMessageNotFound) {
		w.logger.Warn("任务对应的消息不存在", elog.String("jobID", job.ID), elog.Any("messageID", job.MessageID))
		return nil
	}
	if err != nil {
		return err
	}
	if msg.SchedulerJobID != job.ID {
		w.logger.Info("忽略过期的调度任务",
			elog.String("jobID", job.ID),
			elog.String("currentJobID", msg.SchedulerJobID),
			elog.Any("messageID", msg.ID))
		return nil
	}
	return w.deliver(ctx, msg)
}

// Deliver 投递指定的消息，消息不存在的时候什么也不做
func (w *Worker) Deliver(ctx context.Context, messageID uint64) error {
	msg, err := w.repo.GetByID(ctx, messageID)
	if errors.Is(err, errs.ErrMessageNotFound) {
		w.logger.Warn("要投递的消息不存在", elog.Any("messageID", messageID))
		return nil
	}
	if err != nil {
		return err
	}
	return w.deliver(ctx, msg)
}

func (w *Worker) deliver(ctx context.Context, msg domain.Message) (err error) {
	attempted := false
	defer func() {
		if r := recover(); r != nil {
			// panic 也算一次尝试
			if !attempted {
				w.sink.Increment("GCM Message Attempted", metricCategory)
			}
			w.logger.Error("投递消息 panic", elog.Any("messageID", msg.ID), elog.Any("panic", r))
			w.alert(ctx, fmt.Sprintf("FAILED: 投递消息 id = %d panic: %v\n%s", msg.ID, r, debug.Stack()))
			// panic 由补发任务兜底，这里不让调度器重试
			err = nil
		}
	}()

	if msg.Outcome == domain.OutcomeSent {
		w.logger.Info("消息已经投递过", elog.Any("messageID", msg.ID))
		return nil
	}

	payload, err := msg.Payload(w.cfg.Production)
	if err != nil {
		return fmt.Errorf("构造 payload 失败 %w", err)
	}
	if len(payload) > MaxPayloadSize {
		w.logger.Warn("payload 超过网关限制",
			elog.Any("messageID", msg.ID),
			elog.Int("size", len(payload)))
	}

	targets, err := w.devices.ActiveEndpoints(ctx, msg.UserID)
	if err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, w.cfg.Timeout)
	resp, sendErr := w.gateway.Send(sendCtx, targets, payload, push.Options{
		CollapseKey:    w.cfg.CollapseKey,
		DelayWhileIdle: w.cfg.DelayWhileIdle,
		TimeToLive:     w.cfg.TimeToLive,
	})
	cancel()
	w.sink.Increment("GCM Message Attempted", metricCategory)
	attempted = true

	msg.RegistrationIDs = targets
	msg.Outcome = domain.OutcomeUnknown
	msg.ExpireOn = nil
	switch {
	case sendErr != nil:
		msg.ResponseText = sendErr.Error()
		w.logger.Error("推送网关发送失败", elog.Any("messageID", msg.ID), elog.FieldErr(sendErr))
		w.alert(ctx, fmt.Sprintf("FAILED: 投递消息 id = %d: %v", msg.ID, sendErr))
	case resp.Succeeded():
		msg.ResponseCode, msg.ResponseText, msg.ResponseData = resp.StatusCode, resp.Status, resp.Raw
		msg.MarkSent(time.Now(), w.cfg.Retention)
		w.sink.Increment("GCM Message Sent", metricCategory)
	default:
		msg.ResponseCode, msg.ResponseText, msg.ResponseData = resp.StatusCode, resp.Status, resp.Raw
		w.logger.Warn("推送网关拒绝消息",
			elog.Any("messageID", msg.ID),
			elog.Int("statusCode", resp.StatusCode))
		w.alert(ctx, fmt.Sprintf("FAILED: 投递消息 id = %d 网关返回 %d", msg.ID, resp.StatusCode))
	}

	w.removeInvalidTargets(ctx, resp.InvalidTargets())
	err = w.repo.UpdateDelivery(ctx, msg)
	if errors.Is(err, errs.ErrMessageChanged) {
		// 投递期间被延后了，以新的投递时间为准
		w.logger.Info("消息投递期间被修改，丢弃这次投递结果", elog.Any("messageID", msg.ID))
		return nil
	}
	return err
}

func (w *Worker) removeInvalidTargets(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}
	cnt, err := w.devices.RemoveByRegistrationIDs(ctx, ids)
	if err != nil {
		w.logger.Error("删除失效的注册ID失败", elog.FieldErr(err))
		return
	}
	w.logger.Info("删除失效的注册ID", elog.Int64("count", cnt))
}

func (w *Worker) alert(ctx context.Context, text string) {
	if err := w.alerts.PostMessage(context.WithoutCancel(ctx), w.cfg.AlertChannel, text); err != nil {
		w.logger.Warn("发送告警失败", elog.FieldErr(err))
	}
}
