package handler

import (
	"github.com/gin-gonic/gin"

	"autoshop/internal/service"
	"autoshop/internal/transport/http/ez"
	resp "autoshop/internal/transport/http/response"
)

// Account 个人页与改密码
type Account struct{ Deps }

func NewAccount(d Deps) *Account { return &Account{Deps: d} }

func (h *Account) Priority() int { return 20 }

func (h *Account) Mount(g Groups) {
	g.Authed.GET("/profile", h.profile)

	ez.RegisterAction(g.Authed, ez.Action[service.PasswordInput]{
		Path:     "/change_password",
		Template: "change_password.html",
		Log:      h.Log,
		Handler: func(c *gin.Context, in *service.PasswordInput) (string, string, error) {
			if err := h.Accounts.ChangePassword(c.Request.Context(), resp.CurrentUser(c), *in); err != nil {
				return "", "", err
			}
			return resp.PathProfile, "Password changed successfully", nil
		},
	})
}

func (h *Account) profile(c *gin.Context) {
	u := resp.CurrentUser(c)
	orders, err := h.Orders.ListForUser(c.Request.Context(), u)
	if err != nil {
		resp.Fail(c, h.Log, err, "/")
		return
	}
	resp.HTML(c, "profile.html", gin.H{"User": u, "Orders": orders})
}
