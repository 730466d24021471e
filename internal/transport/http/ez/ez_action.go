package ez

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autoshop/internal/domain"
	"autoshop/internal/service"
	resp "autoshop/internal/transport/http/response"
)

// CrudHooks 按资源定制表单页：补充下拉数据、编辑时回填输入
type CrudHooks[T any, I any] struct {
	// FormData 表单页额外数据（如角色下拉）
	FormData func(c *gin.Context, data gin.H)
	// ToInput 编辑页回填
	ToInput func(m *T) I
}

// CrudConfig 一类后台资源的页面与动作。路由形如
// GET /{plural}、GET|POST /add_{name}、GET|POST /edit_{name}/:id、POST /delete_{name}/:id
type CrudConfig[T any, I any] struct {
	Group  *gin.RouterGroup // 已鉴权分组
	Name   string           // 单数，如 work_type
	Plural string           // 默认 Name + "s"
	Title  string           // 页面标题，如 "Work type"
	Log    *zap.Logger

	List   func(ctx context.Context, actor *domain.User) ([]T, error)
	Get    func(ctx context.Context, actor *domain.User, id uint) (*T, error)
	Create func(ctx context.Context, actor *domain.User, in I) (*T, error)
	Update func(ctx context.Context, actor *domain.User, id uint, in I) (*T, error)
	Delete func(ctx context.Context, actor *domain.User, id uint) error

	Hooks CrudHooks[T, I]

	ListTemplate string // 默认 {plural}.html
	FormTemplate string // 默认 {name}_form.html
}

func (c *CrudConfig[T, I]) defaults() {
	if c.Plural == "" {
		c.Plural = c.Name + "s"
	}
	if c.ListTemplate == "" {
		c.ListTemplate = c.Plural + ".html"
	}
	if c.FormTemplate == "" {
		c.FormTemplate = c.Name + "_form.html"
	}
	if c.Title == "" {
		c.Title = strings.ReplaceAll(c.Name, "_", " ")
	}
}

// ParamID 解析路径里的 :id / :xxx_id；非法时按 NotFound 处理
func ParamID(c *gin.Context, key string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil || n == 0 {
		return 0, service.NotFound("Not found")
	}
	return uint(n), nil
}

// Crud 注册一类资源的列表、新增、编辑、删除；缺省的函数对应的路由不注册
func Crud[T any, I any](cfg CrudConfig[T, I]) {
	cfg.defaults()
	listPath := "/" + cfg.Plural
	addPath := "/add_" + cfg.Name
	editPath := "/edit_" + cfg.Name

	if cfg.List != nil {
		cfg.Group.GET(listPath, func(c *gin.Context) {
			items, err := cfg.List(c.Request.Context(), resp.CurrentUser(c))
			if err != nil {
				resp.Fail(c, cfg.Log, err, "/")
				return
			}
			resp.HTML(c, cfg.ListTemplate, gin.H{"Items": items})
		})
	}

	form := func(c *gin.Context, action string, in I, id uint) {
		data := gin.H{"Form": in, "Action": action, "Title": cfg.Title, "ID": id}
		if cfg.Hooks.FormData != nil {
			cfg.Hooks.FormData(c, data)
		}
		resp.HTML(c, cfg.FormTemplate, data)
	}

	if cfg.Create != nil {
		cfg.Group.GET(addPath, func(c *gin.Context) {
			var in I
			form(c, addPath, in, 0)
		})
		cfg.Group.POST(addPath, func(c *gin.Context) {
			var in I
			if err := c.ShouldBind(&in); err != nil {
				resp.Fail(c, cfg.Log, service.Validation("Invalid form data"), addPath)
				return
			}
			if _, err := cfg.Create(c.Request.Context(), resp.CurrentUser(c), in); err != nil {
				resp.Fail(c, cfg.Log, err, addPath)
				return
			}
			resp.Redirect(c, listPath, resp.FlashSuccess, cfg.Title+" added successfully")
		})
	}

	if cfg.Update != nil && cfg.Get != nil {
		cfg.Group.GET(editPath+"/:id", func(c *gin.Context) {
			id, err := ParamID(c, "id")
			if err != nil {
				resp.Fail(c, cfg.Log, err, listPath)
				return
			}
			m, err := cfg.Get(c.Request.Context(), resp.CurrentUser(c), id)
			if err != nil {
				resp.Fail(c, cfg.Log, err, listPath)
				return
			}
			var in I
			if cfg.Hooks.ToInput != nil {
				in = cfg.Hooks.ToInput(m)
			}
			form(c, editPath+"/"+c.Param("id"), in, id)
		})
		cfg.Group.POST(editPath+"/:id", func(c *gin.Context) {
			id, err := ParamID(c, "id")
			if err != nil {
				resp.Fail(c, cfg.Log, err, listPath)
				return
			}
			back := editPath + "/" + c.Param("id")
			var in I
			if err := c.ShouldBind(&in); err != nil {
				resp.Fail(c, cfg.Log, service.Validation("Invalid form data"), back)
				return
			}
			if _, err := cfg.Update(c.Request.Context(), resp.CurrentUser(c), id, in); err != nil {
				// 对象已不存在时回列表，不回编辑页
				if service.KindOf(err) == service.KindNotFound {
					back = listPath
				}
				resp.Fail(c, cfg.Log, err, back)
				return
			}
			resp.Redirect(c, listPath, resp.FlashSuccess, cfg.Title+" updated successfully")
		})
	}

	// 删除只接受 POST
	if cfg.Delete != nil {
		cfg.Group.POST("/delete_"+cfg.Name+"/:id", func(c *gin.Context) {
			id, err := ParamID(c, "id")
			if err != nil {
				resp.Fail(c, cfg.Log, err, listPath)
				return
			}
			if err := cfg.Delete(c.Request.Context(), resp.CurrentUser(c), id); err != nil {
				resp.Fail(c, cfg.Log, err, listPath)
				return
			}
			resp.Redirect(c, listPath, resp.FlashSuccess, cfg.Title+" deleted successfully")
		})
	}
}
