package slack

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/service/alert"
	"github.com/go-resty/resty/v2"
)

var _ alert.Channel = (*Channel)(nil)

type Config struct {
	WebhookURL string        `yaml:"webhookURL"`
	Username   string        `yaml:"username"`
	Timeout    time.Duration `yaml:"timeout"`
}

// Channel Slack incoming webhook
type Channel struct {
	client     *resty.Client
	webhookURL string
	username   string
}

func NewChannel(cfg Config) *Channel {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Channel{
		client:     resty.New().SetTimeout(cfg.Timeout),
		webhookURL: cfg.WebhookURL,
		username:   cfg.Username,
	}
}

type webhookMessage struct {
	Channel  string `json:"channel,omitempty"`
	Username string `json:"username,omitempty"`
	Text     string `json:"text"`
}

func (c *Channel) PostMessage(ctx context.Context, channel, text string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(webhookMessage{
			Channel:  channel,
			Username: c.username,
			Text:     text,
		}).
		Post(c.webhookURL)
	if err != nil {
		return fmt.Errorf("发送告警失败 %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("发送告警失败 status = %d, body = %s", resp.StatusCode(), resp.String())
	}
	return nil
}
