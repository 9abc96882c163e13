package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/errs"
	"gitee.com/flycash/notification-scheduler/internal/service/dailyqueue"
	"gitee.com/flycash/notification-scheduler/internal/service/delayscheduler"
	"gitee.com/flycash/notification-scheduler/internal/service/message"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var (
	timeLayouts = []string{"15:04", "3:04 PM", "3:04PM"}
	dateLayouts = []string{"2006-1-2", "1-2-2006"}
)

type Handler struct {
	svc       message.Service
	queue     dailyqueue.Queue
	scheduler delayscheduler.Scheduler
	logger    *elog.Component
}

func NewHandler(svc message.Service, queue dailyqueue.Queue, scheduler delayscheduler.Scheduler) *Handler {
	return &Handler{
		svc:       svc,
		queue:     queue,
		scheduler: scheduler,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server gin.IRoutes) {
	server.POST("/messages", h.CreateMessage)
	server.PUT("/messages/:id/snooze", h.Snooze)
	server.DELETE("/messages/:id", h.DeleteMessage)
}

// PrivateRoutes 运维接口
func (h *Handler) PrivateRoutes(server gin.IRoutes) {
	server.GET("/queues/:user/:date", h.GetQueue)
	server.GET("/jobs", h.ListJobs)
	server.DELETE("/jobs/:id", h.CancelJob)
}

// CreateMessage 创建之后马上尝试进入日队列，没有进入的交给补发任务
func (h *Handler) CreateMessage(ctx *gin.Context) {
	var req CreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.fail(ctx, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err))
		return
	}
	createReq, err := req.toDomain()
	if err != nil {
		h.fail(ctx, err)
		return
	}
	c := ctx.Request.Context()
	msg, err := h.svc.Create(c, createReq)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	resp := CreateResp{Message: newMessage(msg)}
	_, resp.Admitted, err = h.svc.Enqueue(c, msg)
	if err != nil {
		// 消息已经保存下来了
		h.logger.Warn("消息进入日队列失败", elog.Any("messageID", msg.ID), elog.FieldErr(err))
	}
	ctx.JSON(http.StatusOK, Result[CreateResp]{Data: resp})
}

func (r CreateReq) toDomain() (message.CreateRequest, error) {
	deliverOn, err := parseDeliverOn(r.DeliverOn)
	if err != nil {
		return message.CreateRequest{}, err
	}
	res := message.CreateRequest{
		UserID:    r.UserID,
		Title:     r.Title,
		Body:      r.Message,
		DeliverOn: deliverOn,
		Priority:  domain.Priority(strings.ToLower(r.Priority)),
	}
	if r.ObjectType != "" {
		res.Related = &domain.Related{Kind: r.ObjectType, ID: r.ObjectID}
	}
	return res, nil
}

// parseDeliverOn 带时区的按照 RFC3339 解析，不带时区的交给消息服务按照用户时区解释
func parseDeliverOn(val string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateTime, val, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: deliverOn = %q", errs.ErrInvalidParameter, val)
	}
	return t, nil
}

func (h *Handler) Snooze(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.fail(ctx, fmt.Errorf("%w: id = %s", errs.ErrInvalidParameter, ctx.Param("id")))
		return
	}
	var req SnoozeReq
	if err = ctx.ShouldBindJSON(&req); err != nil {
		h.fail(ctx, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err))
		return
	}
	snoozeReq, err := req.toDomain()
	if err != nil {
		h.fail(ctx, err)
		return
	}
	msg, err := h.svc.Snooze(ctx.Request.Context(), id, snoozeReq)
	if err != nil && !errors.Is(err, errs.ErrSchedulerUnavailable) {
		h.fail(ctx, err)
		return
	}
	// 调度器不可用的时候消息已经改好了，稍后由补发任务处理
	ctx.JSON(http.StatusOK, Result[Message]{Data: newMessage(msg)})
}

func (r SnoozeReq) toDomain() (message.SnoozeRequest, error) {
	if r.Date != "" && r.Time != "" {
		date, err := parse(dateLayouts, r.Date)
		if err != nil {
			return message.SnoozeRequest{}, err
		}
		clock, err := parse(timeLayouts, strings.ToUpper(r.Time))
		if err != nil {
			return message.SnoozeRequest{}, err
		}
		// 不带时区，交给消息服务按照用户时区解释
		return message.SnoozeRequest{
			NewDeliverOn: time.Date(date.Year(), date.Month(), date.Day(),
				clock.Hour(), clock.Minute(), 0, 0, time.Local),
		}, nil
	}
	if r.Snooze > 0 {
		return message.SnoozeRequest{Hours: r.Snooze}, nil
	}
	return message.SnoozeRequest{}, fmt.Errorf("%w: 需要 snooze 或者 date 和 time", errs.ErrInvalidParameter)
}

func parse(layouts []string, val string) (time.Time, error) {
	for _, layout := range layouts {
		t, err := time.Parse(layout, val)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: 无法解析 %q", errs.ErrInvalidParameter, val)
}

func (h *Handler) DeleteMessage(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.fail(ctx, fmt.Errorf("%w: id = %s", errs.ErrInvalidParameter, ctx.Param("id")))
		return
	}
	if err = h.svc.Delete(ctx.Request.Context(), id); err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result[any]{Msg: "OK"})
}

func (h *Handler) GetQueue(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("user"), 10, 64)
	if err != nil {
		h.fail(ctx, fmt.Errorf("%w: user = %s", errs.ErrInvalidParameter, ctx.Param("user")))
		return
	}
	day, err := time.Parse(time.DateOnly, ctx.Param("date"))
	if err != nil {
		h.fail(ctx, fmt.Errorf("%w: date = %s", errs.ErrInvalidParameter, ctx.Param("date")))
		return
	}

	c := ctx.Request.Context()
	resp := QueueResp{UserID: userID, Date: day.Format(time.DateOnly)}
	if resp.Count, err = h.queue.Count(c, userID, day); err != nil {
		h.fail(ctx, err)
		return
	}
	lanes := []struct {
		p    domain.Priority
		dest *[]string
	}{
		{domain.PriorityLow, &resp.Low},
		{domain.PriorityMedium, &resp.Medium},
		{domain.PriorityHigh, &resp.High},
	}
	for _, lane := range lanes {
		if *lane.dest, err = h.queue.List(c, userID, day, lane.p); err != nil {
			h.fail(ctx, err)
			return
		}
	}
	ctx.JSON(http.StatusOK, Result[QueueResp]{Data: resp})
}

func (h *Handler) ListJobs(ctx *gin.Context) {
	jobs, err := h.scheduler.List(ctx.Request.Context())
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result[[]Job]{Data: slice.Map(jobs, func(_ int, src domain.Job) Job {
		return Job{ID: src.ID, MessageID: src.MessageID, RunAt: src.RunAt}
	})})
}

func (h *Handler) CancelJob(ctx *gin.Context) {
	if err := h.scheduler.Cancel(ctx.Request.Context(), ctx.Param("id")); err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result[any]{Msg: "OK"})
}

func (h *Handler) fail(ctx *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrInvalidParameter),
		errors.Is(err, errs.ErrNoRegisteredDevice):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrMessageNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrMessageDuplicate):
		code = http.StatusConflict
	default:
		h.logger.Error("处理请求失败", elog.String("path", ctx.FullPath()), elog.FieldErr(err))
	}
	ctx.JSON(code, Result[any]{Code: code, Msg: err.Error()})
}
