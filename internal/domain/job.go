package domain

import "time"

// Job 延迟调度器里的一个待执行任务
type Job struct {
	ID        string
	MessageID uint64
	RunAt     time.Time
}
