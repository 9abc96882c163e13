package web

import (
	"net/http"

	"gitee.com/flycash/notification-scheduler/internal/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RateLimit 按照客户端 IP 限流，限流器出错的时候放行
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		limited, err := limiter.Limit(ctx.Request.Context(), "web:"+ctx.ClientIP())
		if err != nil {
			elog.DefaultLogger.Warn("限流器出错，放行请求", elog.String("path", ctx.FullPath()), elog.FieldErr(err))
			ctx.Next()
			return
		}
		if limited {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, Result[any]{
				Code: http.StatusTooManyRequests,
				Msg:  "请求太频繁",
			})
			return
		}
		ctx.Next()
	}
}
