package domain

import "context"

type WorkType struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
}

func (WorkType) TableName() string { return "work_types" }

type WorkTypeRepository interface {
	Create(ctx context.Context, w *WorkType) error
	FindByID(ctx context.Context, id uint) (*WorkType, error)
	List(ctx context.Context) ([]WorkType, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, w *WorkType) error
	// Delete 不级联：仍被订单引用时返回 ErrReferenced
	Delete(ctx context.Context, id uint) error
}
