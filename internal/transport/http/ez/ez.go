// Package ez 把“表单页 + 提交动作”的样板收成一行注册
package ez

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autoshop/internal/service"
	resp "autoshop/internal/transport/http/response"
)

// Action 非 CRUD 的表单动作：GET 渲染 Template，POST 绑定 I 后执行 Handler
type Action[I any] struct {
	Path     string
	Template string                              // 为空则不注册 GET
	Page     func(c *gin.Context) (gin.H, error) // GET 页数据，可选
	Use      []gin.HandlerFunc                   // 只挂在 POST 上，如登录限速
	Log      *zap.Logger
	Handler  func(c *gin.Context, in *I) (to, msg string, err error)
}

// RegisterAction 失败统一 flash 后回到当前路径（带实际参数）
func RegisterAction[I any](g *gin.RouterGroup, a Action[I]) {
	if a.Template != "" {
		g.GET(a.Path, func(c *gin.Context) {
			data := gin.H{}
			if a.Page != nil {
				d, err := a.Page(c)
				if err != nil {
					resp.Fail(c, a.Log, err, "/")
					return
				}
				data = d
			}
			data["Action"] = c.Request.URL.Path
			resp.HTML(c, a.Template, data)
		})
	}

	if a.Handler == nil {
		return
	}
	h := func(c *gin.Context) {
		back := c.Request.URL.Path
		var in I
		if err := c.ShouldBind(&in); err != nil {
			resp.Fail(c, a.Log, service.Validation("Invalid form data"), back)
			return
		}
		to, msg, err := a.Handler(c, &in)
		if err != nil {
			resp.Fail(c, a.Log, err, back)
			return
		}
		resp.Redirect(c, to, resp.FlashSuccess, msg)
	}
	g.POST(a.Path, append(append([]gin.HandlerFunc{}, a.Use...), h)...)
}
