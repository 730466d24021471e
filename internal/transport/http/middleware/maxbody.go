package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "autoshop/internal/transport/http/response"
)

// MaxBodyBytes 限制请求体大小，表单提交用不到太大
func MaxBodyBytes(n int64) gin.HandlerFunc {
	if n <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			resp.Text(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
