package domain

import "errors"

// 仓储层把驱动错误翻译成这两个，service 据此区分约束冲突和连接故障
var (
	ErrDuplicate  = errors.New("duplicate key")
	ErrReferenced = errors.New("row is still referenced")
)

var ErrNotFound = errors.New("record not found")
