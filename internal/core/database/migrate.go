package database

import (
	"gorm.io/gorm"

	"autoshop/internal/domain"
)

// Migrate 建表；orders 放最后，外键依赖 users 和 work_types
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.WorkType{},
		&domain.Mechanic{},
		&domain.Order{},
	)
}
