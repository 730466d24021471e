package response

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash 一次性提示，跨一次重定向
type Flash struct {
	Category string
	Message  string
}

func SetFlash(c *gin.Context, category, msg string) {
	c.SetCookie(flashCookie, category+"|"+msg, 300, "/", "", false, true)
	c.Set(flashCookie, &Flash{Category: category, Message: msg})
}

// PopFlash 读到即清掉 cookie
func PopFlash(c *gin.Context) *Flash {
	if v, ok := c.Get(flashCookie); ok {
		c.Set(flashCookie, nil)
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
		f, _ := v.(*Flash)
		return f
	}
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	cat, msg, ok := strings.Cut(raw, "|")
	if !ok {
		return &Flash{Category: FlashInfo, Message: raw}
	}
	return &Flash{Category: cat, Message: msg}
}
