package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/service/alert"
	"gitee.com/flycash/notification-scheduler/internal/service/alert/slack"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitAlertChannel() alert.Channel {
	var cfg slack.Config
	if econf.Get("alert.slack") != nil {
		if err := econf.UnmarshalKey("alert.slack", &cfg); err != nil {
			panic(err)
		}
	}
	if cfg.WebhookURL == "" {
		elog.DefaultLogger.Warn("没有配置 Slack 告警，告警会被丢弃")
		return alert.NopChannel{}
	}
	return slack.NewChannel(cfg)
}
