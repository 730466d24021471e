// Package testutil 测试用的 sqlite 库和数据构造
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"autoshop/internal/core/database"
	"autoshop/internal/domain"
	"autoshop/internal/repo"
	"autoshop/pkg/utils"
)

// NewDB 每个测试一个临时 sqlite 文件，已迁移
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser 直接落库，绕过注册校验
func CreateUser(t testing.TB, db *gorm.DB, username, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	u := &domain.User{
		Username:     username,
		PasswordHash: hash,
		DateOfBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:       domain.GenderOther,
		Role:         role,
	}
	require.NoError(t, repo.NewUserRepo(db).Create(context.Background(), u))
	return u
}

func CreateWorkType(t testing.TB, db *gorm.DB, name string) *domain.WorkType {
	t.Helper()
	w := &domain.WorkType{Name: name, Description: name + " service"}
	require.NoError(t, repo.NewWorkTypeRepo(db).Create(context.Background(), w))
	return w
}

func CreateMechanic(t testing.TB, db *gorm.DB, name string) *domain.Mechanic {
	t.Helper()
	m := &domain.Mechanic{Name: name, Phone: "9001234567", Specialization: "Engine"}
	require.NoError(t, repo.NewMechanicRepo(db).Create(context.Background(), m))
	return m
}

func CreateOrder(t testing.TB, db *gorm.DB, userID, workTypeID uint) *domain.Order {
	t.Helper()
	o := &domain.Order{UserID: userID, WorkTypeID: workTypeID}
	require.NoError(t, repo.NewOrderRepo(db).Create(context.Background(), o))
	return o
}

func CountOrders(t testing.TB, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.Order{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}
