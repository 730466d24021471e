package service

import (
	"errors"

	"autoshop/internal/domain"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Error 业务错误；Msg 给用户看，Err 是底层原因
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "service error"
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error   { return &Error{Kind: KindValidation, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string, err error) error {
	return &Error{Kind: KindConflict, Msg: msg, Err: err}
}
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

var (
	ErrInvalidCredentials = Unauthorized("Invalid username or password")
	ErrLoginRequired      = Unauthorized("Please log in to access this page")
	ErrPermissionDenied   = Forbidden("You do not have permission to perform this action")
)

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// persistErr 按原因区分：约束冲突 / 不存在 / 其它（连接等）
func persistErr(msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrReferenced):
		return Conflict(msg, err)
	case errors.Is(err, domain.ErrNotFound):
		return &Error{Kind: KindNotFound, Msg: msg, Err: err}
	}
	return Internal(msg, err)
}

func requireUser(actor *domain.User) error {
	if actor == nil {
		return ErrLoginRequired
	}
	return nil
}

// requireAdmin 每个管理操作自己再检查一遍，不只依赖路由中间件
func requireAdmin(actor *domain.User) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return ErrPermissionDenied
	}
	return nil
}
