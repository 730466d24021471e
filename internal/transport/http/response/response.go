package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autoshop/internal/domain"
	"autoshop/internal/service"
)

// KeyUser 上下文里的当前用户（*domain.User），由会话中间件写入
const KeyUser = "currentUser"

func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(KeyUser)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

// HTML 渲染页面，统一附带 CurrentUser 和 Flash
func HTML(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CurrentUser"] = CurrentUser(c)
	data["Flash"] = PopFlash(c)
	c.HTML(http.StatusOK, name, data)
}

// Redirect 带提示跳转；msg 为空只跳转
func Redirect(c *gin.Context, to, category, msg string) {
	if msg != "" {
		SetFlash(c, category, msg)
	}
	c.Redirect(http.StatusFound, to)
}

// Fail 把业务错误转成 flash + 重定向，不向用户返回错误页
func Fail(c *gin.Context, l *zap.Logger, err error, back string) {
	kind := service.KindOf(err)
	if kind == service.KindInternal {
		l.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	Redirect(c, target(kind, back), FlashError, err.Error())
}

// Text 中间件拒绝请求时的纯文本响应
func Text(c *gin.Context, status int, msg string) {
	c.String(status, msg)
	c.Abort()
}
