package repo

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"autoshop/internal/domain"
)

// translate 把驱动错误归类为 domain 错误；gorm 的 TranslateError 不是每个驱动都实现，再按消息兜底
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey) || isDupKey(err):
		return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated) || isFKViolation(err):
		return fmt.Errorf("%w: %v", domain.ErrReferenced, err)
	}
	return err
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}

func isFKViolation(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}

// deleted 统一处理删除结果
func deleted(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
