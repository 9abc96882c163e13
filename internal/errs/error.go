package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter     = errors.New("参数错误")
	ErrMessageNotFound      = errors.New("消息记录不存在")
	ErrMessageDuplicate     = errors.New("消息记录唯一索引冲突")
	ErrMessageChanged       = errors.New("消息投递时间已经被修改")
	ErrNoRegisteredDevice   = errors.New("用户没有注册任何推送设备")
	ErrSchedulerUnavailable = errors.New("延迟调度器不可用")
	ErrGatewaySendFailed    = errors.New("推送网关发送失败")

	ErrProfileNotFound = errors.New("用户配置不存在")
	ErrDeviceNotFound  = errors.New("设备记录不存在")
)
