package ioc

import (
	id "gitee.com/flycash/notification-scheduler/internal/pkg/id_generator"
	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

func InitIDGenerator() *sonyflake.Sonyflake {
	// 多实例部署的时候每个实例要配置不同的机器号
	machineID := econf.GetInt("idgen.machineId")
	return id.NewGenerator(uint16(machineID))
}
