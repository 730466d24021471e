package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autoshop/internal/service"
	"autoshop/internal/transport/http/ez"
	resp "autoshop/internal/transport/http/response"
)

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Site 首页、注册、登录、登出
type Site struct{ Deps }

func NewSite(d Deps) *Site { return &Site{Deps: d} }

func (h *Site) Priority() int { return 10 }

func (h *Site) Mount(g Groups) {
	g.Public.GET("/", h.index)
	g.Public.GET("/index", h.index)
	g.Public.GET("/logout", h.logout)

	ez.RegisterAction(g.Public, ez.Action[service.RegisterInput]{
		Path:     "/register",
		Template: "register.html",
		Log:      h.Log,
		Handler: func(c *gin.Context, in *service.RegisterInput) (string, string, error) {
			if _, err := h.Accounts.Register(c.Request.Context(), *in); err != nil {
				return "", "", err
			}
			return resp.PathLogin, "Registration successful. Please log in.", nil
		},
	})

	var limit []gin.HandlerFunc
	if h.LoginLimit != nil {
		limit = append(limit, h.LoginLimit)
	}
	ez.RegisterAction(g.Public, ez.Action[loginForm]{
		Path:     "/login",
		Template: "login.html",
		Use:      limit,
		Log:      h.Log,
		Handler: func(c *gin.Context, in *loginForm) (string, string, error) {
			u, err := h.Accounts.Authenticate(c.Request.Context(), in.Username, in.Password)
			if err != nil {
				return "", "", err
			}
			if err := h.Sessions.Login(c, u); err != nil {
				return "", "", service.Internal("Login failed", err)
			}
			return resp.PathProfile, "Logged in successfully", nil
		},
	})
}

func (h *Site) index(c *gin.Context) {
	ctx := c.Request.Context()
	workTypes, err := h.Catalog.ListWorkTypes(ctx)
	if err != nil {
		h.Log.Error("index: list work types", zap.Error(err))
	}
	mechanics, err := h.Catalog.ListMechanics(ctx)
	if err != nil {
		h.Log.Error("index: list mechanics", zap.Error(err))
	}
	resp.HTML(c, "index.html", gin.H{"WorkTypes": workTypes, "Mechanics": mechanics})
}

func (h *Site) logout(c *gin.Context) {
	h.Sessions.Logout(c)
	resp.Redirect(c, "/", resp.FlashInfo, "You have been logged out")
}
