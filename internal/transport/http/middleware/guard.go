package middleware

import (
	"github.com/gin-gonic/gin"

	"autoshop/internal/service"
	resp "autoshop/internal/transport/http/response"
)

// RequireAuth 匿名访问跳到登录页
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if resp.CurrentUser(c) == nil {
			resp.Redirect(c, resp.PathLogin, resp.FlashInfo, service.ErrLoginRequired.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin 非管理员跳回个人页；服务层还会再查一次角色
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := resp.CurrentUser(c)
		if u == nil {
			resp.Redirect(c, resp.PathLogin, resp.FlashInfo, service.ErrLoginRequired.Error())
			c.Abort()
			return
		}
		if !u.IsAdmin() {
			resp.Redirect(c, resp.PathProfile, resp.FlashError, service.ErrPermissionDenied.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
