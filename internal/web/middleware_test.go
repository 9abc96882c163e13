package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/pkg/ratelimit"
	testioc "gitee.com/flycash/notification-scheduler/internal/test/ioc"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	mr, rdb := testioc.InitRedis()
	defer mr.Close()
	defer rdb.Close()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RateLimit(ratelimit.NewSlidingWindowLimiter(rdb, time.Minute, 2)))
	engine.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)
		codes = append(codes, recorder.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// redis 不可用的时候放行
	mr.Close()
	req, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
