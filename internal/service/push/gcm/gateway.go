package gcm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/errs"
	"gitee.com/flycash/notification-scheduler/internal/service/push"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
)

const DefaultEndpoint = "https://fcm.googleapis.com/fcm/send"

var _ push.Gateway = (*Gateway)(nil)

type Config struct {
	Endpoint string        `yaml:"endpoint"`
	APIKey   string        `yaml:"apiKey"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Gateway GCM/FCM legacy HTTP 协议
type Gateway struct {
	client   *resty.Client
	endpoint string
	logger   *elog.Component
}

func NewGateway(cfg Config) *Gateway {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", "key="+cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &Gateway{
		client:   client,
		endpoint: cfg.Endpoint,
		logger:   elog.DefaultLogger.With(elog.String("gateway", "gcm")),
	}
}

type sendRequest struct {
	RegistrationIDs []string        `json:"registration_ids"`
	Data            json.RawMessage `json:"data"`
	CollapseKey     string          `json:"collapse_key,omitempty"`
	DelayWhileIdle  bool            `json:"delay_while_idle,omitempty"`
	TimeToLive      int64           `json:"time_to_live,omitempty"`
}

type sendResponse struct {
	MulticastID  int64        `json:"multicast_id"`
	Success      int          `json:"success"`
	Failure      int          `json:"failure"`
	CanonicalIDs int          `json:"canonical_ids"`
	Results      []sendResult `json:"results"`
}

type sendResult struct {
	MessageID      string `json:"message_id"`
	RegistrationID string `json:"registration_id"`
	Error          string `json:"error"`
}

func (g *Gateway) Send(ctx context.Context, targets []string, payload []byte, opts push.Options) (push.Response, error) {
	if targets == nil {
		targets = []string{}
	}
	req := sendRequest{
		RegistrationIDs: targets,
		Data:            payload,
		CollapseKey:     opts.CollapseKey,
		DelayWhileIdle:  opts.DelayWhileIdle,
		TimeToLive:      int64(opts.TimeToLive / time.Second),
	}
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(g.endpoint)
	if err != nil {
		return push.Response{}, fmt.Errorf("%w: %w", errs.ErrGatewaySendFailed, err)
	}

	res := push.Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
	}
	body := resp.Body()
	if json.Valid(body) {
		res.Raw = body
	}
	if res.StatusCode != http.StatusOK {
		g.logger.Warn("推送网关拒绝请求",
			elog.Int("statusCode", res.StatusCode),
			elog.String("body", string(body)))
		return res, nil
	}

	var sr sendResponse
	if err = json.Unmarshal(body, &sr); err != nil {
		g.logger.Warn("解析推送网关响应失败", elog.FieldErr(err))
		return res, nil
	}
	res.Success, res.Failure = sr.Success, sr.Failure
	// 结果的顺序和请求里的注册ID一一对应
	res.Results = make([]push.TargetResult, 0, len(sr.Results))
	for i, r := range sr.Results {
		tr := push.TargetResult{
			MessageID:   r.MessageID,
			CanonicalID: r.RegistrationID,
			Error:       r.Error,
		}
		if i < len(targets) {
			tr.RegistrationID = targets[i]
		}
		res.Results = append(res.Results, tr)
	}
	return res, nil
}
