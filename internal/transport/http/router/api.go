package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"autoshop/internal/core/config"
	"autoshop/internal/core/server"
	"autoshop/internal/transport/http/handler"
	mdw "autoshop/internal/transport/http/middleware"
	"autoshop/internal/transport/http/view"
)

// NewEngine 站点引擎：模板、中间件、全部页面路由
func NewEngine(l *zap.Logger, cfg config.HTTP, mode string, d handler.Deps) (*gin.Engine, error) {
	r := server.NewRouter(l, server.Options{Mode: mode, CORSOrigins: cfg.CORSOrigins})

	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	// 运维接口不走限流和会话
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	app := r.Group("",
		mdw.RequestID(),
		mdw.AccessLog(l),
		mdw.Metrics(),
		mdw.RateLimit(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		mdw.ConcurrencyLimit(cfg.MaxConcurrent),
		mdw.MaxBodyBytes(cfg.MaxBodyBytes),
		mdw.Timeout(time.Duration(cfg.RequestTimeoutSec)*time.Second),
		d.Sessions.Load(),
	)

	if d.LoginLimit == nil && cfg.LoginRPS > 0 {
		d.LoginLimit = mdw.RateLimitPerIP(rate.Limit(cfg.LoginRPS), cfg.LoginBurst)
	}

	mountAll(groups(app),
		handler.NewAdmin(d),
		handler.NewOrders(d),
		handler.NewAccount(d),
		handler.NewSite(d),
	)
	return r, nil
}
