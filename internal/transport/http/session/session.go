// Package session 基于 cookie 的登录态：cookie 里是 HS256 JWT，只带用户 ID
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autoshop/internal/core/auth"
	"autoshop/internal/domain"
	"autoshop/internal/transport/http/response"
)

// Identities 用户 ID -> 用户，找不到返回 nil, nil
type Identities interface {
	Identity(ctx context.Context, id uint) (*domain.User, error)
}

type Manager struct {
	JWT        *auth.JWTer
	Revoker    auth.Revoker
	Users      Identities
	CookieName string
	Secure     bool
	Log        *zap.Logger
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.CookieName, value, maxAge, "/", "", m.Secure, true)
}

// Login 签发令牌写入 cookie，并让本次请求后续环节看到该用户
func (m *Manager) Login(c *gin.Context, u *domain.User) error {
	tok, claims, err := m.JWT.Issue(u.ID)
	if err != nil {
		return err
	}
	m.setCookie(c, tok, int(time.Until(claims.ExpiresAt.Time).Seconds()))
	c.Set(response.KeyUser, u)
	m.Log.Info("login", zap.Uint("user_id", u.ID), zap.String("jti", claims.ID))
	return nil
}

// Logout 清 cookie；配置了 Redis 时把 jti 记到过期为止
func (m *Manager) Logout(c *gin.Context) {
	if tok, err := c.Cookie(m.CookieName); err == nil && tok != "" {
		if claims, err := m.JWT.Parse(tok); err == nil {
			if err := m.Revoker.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				m.Log.Warn("revoke session failed", zap.String("jti", claims.ID), zap.Error(err))
			}
		}
	}
	m.setCookie(c, "", -1)
	c.Set(response.KeyUser, nil)
}

// Identity 解析 cookie 并从库里取当前用户；任何一步失败都当匿名
func (m *Manager) Identity(c *gin.Context) *domain.User {
	tok, err := c.Cookie(m.CookieName)
	if err != nil || tok == "" {
		return nil
	}
	claims, err := m.JWT.Parse(tok)
	if err != nil {
		return nil
	}
	ctx := c.Request.Context()
	revoked, err := m.Revoker.Revoked(ctx, claims.ID)
	if err != nil {
		m.Log.Warn("check revoked session failed", zap.Error(err))
		return nil
	}
	if revoked {
		return nil
	}
	u, err := m.Users.Identity(ctx, claims.UID)
	if err != nil {
		m.Log.Error("load session user failed", zap.Uint("user_id", claims.UID), zap.Error(err))
		return nil
	}
	return u
}

// Load 每个请求解析一次会话，结果放进 gin 上下文
func (m *Manager) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		if u := m.Identity(c); u != nil {
			c.Set(response.KeyUser, u)
		}
		c.Next()
	}
}
