package dao

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/errs"
	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMessageDAO_Create_MySQL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mockErr error
		wantErr error
	}{
		{
			name:    "唯一索引冲突",
			mockErr: &mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"},
			wantErr: errs.ErrMessageDuplicate,
		},
		{
			name:    "其它错误原样返回",
			mockErr: errors.New("连接断开"),
			wantErr: errors.New("连接断开"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sqlDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer sqlDB.Close()

			db, err := gorm.Open(mysql.New(mysql.Config{
				Conn:                      sqlDB,
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				SkipDefaultTransaction: true,
				Logger:                 logger.Default.LogMode(logger.Silent),
			})
			require.NoError(t, err)

			mock.ExpectExec("INSERT INTO `messages`").WillReturnError(tc.mockErr)

			_, err = NewMessageDAO(db).Create(context.Background(), Message{
				ID:        1,
				UserID:    1,
				Title:     "标题",
				Body:      "内容",
				DeliverOn: time.Now().UnixMilli(),
				Priority:  "low",
			})
			if errors.Is(tc.wantErr, errs.ErrMessageDuplicate) {
				assert.ErrorIs(t, err, errs.ErrMessageDuplicate)
			} else {
				assert.EqualError(t, err, tc.wantErr.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
