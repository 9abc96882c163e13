package ioc

import (
	"time"

	"gitee.com/flycash/notification-scheduler/internal/pkg/ratelimit"
	"gitee.com/flycash/notification-scheduler/internal/web"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/redis/go-redis/v9"
)

func InitWebServer(handler *web.Handler, rdb redis.Cmdable) *egin.Component {
	type Config struct {
		Interval time.Duration `yaml:"interval"`
		Rate     int           `yaml:"rate"`
	}
	var cfg Config
	if econf.Get("server.http.rateLimit") != nil {
		if err := econf.UnmarshalKey("server.http.rateLimit", &cfg); err != nil {
			panic(err)
		}
	}
	server := egin.Load("server.http").Build()
	if cfg.Rate > 0 {
		// 只限制对外的接口，运维接口不限流
		public := server.Engine.Group("/", web.RateLimit(ratelimit.NewSlidingWindowLimiter(rdb, cfg.Interval, cfg.Rate)))
		handler.PublicRoutes(public)
	} else {
		handler.PublicRoutes(server.Engine)
	}
	handler.PrivateRoutes(server.Engine)
	return server
}
