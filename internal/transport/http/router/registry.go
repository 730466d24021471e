package router

import (
	"sort"

	"autoshop/internal/transport/http/handler"
)

// Module 一组页面，自己决定挂到哪个分组
type Module interface{ Mount(handler.Groups) }

// 可选：实现该接口可控制挂载顺序（数值越小越先挂）
// 不实现则默认 100
type prioritizer interface{ Priority() int }

// mountAll 按优先级挂载
func mountAll(g handler.Groups, mods ...Module) {
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.Mount(g)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
