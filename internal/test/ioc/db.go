package ioc

import (
	"fmt"
	"sync/atomic"

	"github.com/ego-component/egorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// InitDB 每次调用都返回一个独立的内存数据库，建表由调用方负责
func InitDB() *egorm.Component {
	dsn := fmt.Sprintf("file:scheduler_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic(fmt.Errorf("数据库连接失败: %w", err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	// 内存库只有一个连接，避免并发写的时候锁表
	sqlDB.SetMaxOpenConns(1)
	return db
}
