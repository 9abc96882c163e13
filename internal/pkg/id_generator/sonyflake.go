package id

import (
	"time"

	"github.com/sony/sonyflake"
)

// 基准时间 - 2024年1月1日
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewGenerator 机器号由配置指定，容器里不一定拿得到私有 IP
func NewGenerator(machineID uint16) *sonyflake.Sonyflake {
	sf := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: epoch,
		MachineID: func() (uint16, error) {
			return machineID, nil
		},
	})
	if sf == nil {
		panic("初始化ID生成器失败")
	}
	return sf
}
