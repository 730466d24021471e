package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autoshop/internal/service"
	"autoshop/internal/transport/http/session"
)

// Groups 路由分组：公开 / 需登录 / 需管理员
type Groups struct {
	Public *gin.RouterGroup
	Authed *gin.RouterGroup
	Admin  *gin.RouterGroup
}

// Deps 处理器依赖，main 里构造后注入
type Deps struct {
	Accounts *service.AccountService
	Catalog  *service.CatalogService
	Orders   *service.OrderService
	Users    *service.UserAdminService
	Sessions *session.Manager
	Log      *zap.Logger

	// LoginLimit 挂在 POST /login 上，可为 nil
	LoginLimit gin.HandlerFunc
}
