package router

import (
	"github.com/gin-gonic/gin"

	"autoshop/internal/transport/http/handler"
	mdw "autoshop/internal/transport/http/middleware"
)

// groups 同一前缀下按权限分三组；后台沿用站点的扁平路径（/users、/add_work_type …）
func groups(app *gin.RouterGroup) handler.Groups {
	return handler.Groups{
		Public: app,
		Authed: app.Group("", mdw.RequireAuth()),
		Admin:  app.Group("", mdw.RequireAdmin()),
	}
}
