package response

import "autoshop/internal/service"

// flash 类别，模板里直接当 css class 用
const (
	FlashSuccess = "success"
	FlashError   = "danger"
	FlashInfo    = "info"
)

// 失败后的固定落点；Validation/Conflict/NotFound/Internal 回到来源表单
const (
	PathLogin   = "/login"
	PathProfile = "/profile"
)

// target 错误种类 -> 重定向目标
func target(kind service.Kind, back string) string {
	switch kind {
	case service.KindForbidden:
		return PathProfile
	case service.KindUnauthorized:
		return PathLogin
	}
	if back == "" {
		return "/"
	}
	return back
}
