package push

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Gateway 推送网关，负责把 payload 发到用户的设备上
//
//go:generate mockgen -source=./types.go -destination=./mocks/gateway.mock.go -package=pushmocks -typed Gateway
type Gateway interface {
	// Send 只有传输层出错才返回 error，网关拒绝的请求通过 Response.StatusCode 体现
	Send(ctx context.Context, targets []string, payload []byte, opts Options) (Response, error)
}

type Options struct {
	CollapseKey    string
	DelayWhileIdle bool
	// 0 代表使用网关的默认值
	TimeToLive time.Duration
}

// TargetResult 单个注册ID的发送结果
type TargetResult struct {
	RegistrationID string
	MessageID      string
	// 网关返回的新注册ID，旧的需要替换掉
	CanonicalID string
	Error       string
}

type Response struct {
	StatusCode int
	Status     string
	Success    int
	Failure    int
	Results    []TargetResult
	// 网关返回的原始 JSON，不是合法 JSON 的时候为空
	Raw json.RawMessage
}

func (r Response) Succeeded() bool {
	return r.StatusCode == http.StatusOK
}

// InvalidTargets 网关明确表示已经失效的注册ID
func (r Response) InvalidTargets() []string {
	var res []string
	for _, result := range r.Results {
		switch result.Error {
		case "NotRegistered", "InvalidRegistration":
			res = append(res, result.RegistrationID)
		}
	}
	return res
}
