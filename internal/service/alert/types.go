package alert

import "context"

// Channel 告警通道，调用方不关心发送结果
//
//go:generate mockgen -source=./types.go -destination=./mocks/channel.mock.go -package=alertmocks -typed Channel
type Channel interface {
	PostMessage(ctx context.Context, channel, text string) error
}

// NopChannel 没有配置告警通道时使用
type NopChannel struct{}

func (NopChannel) PostMessage(context.Context, string, string) error {
	return nil
}
