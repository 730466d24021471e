package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autoshop/internal/domain"
)

type WorkTypeRepo struct{ db *gorm.DB }

func NewWorkTypeRepo(db *gorm.DB) *WorkTypeRepo { return &WorkTypeRepo{db: db} }

func (r *WorkTypeRepo) Create(ctx context.Context, w *domain.WorkType) error {
	return translate(r.db.WithContext(ctx).Create(w).Error)
}

func (r *WorkTypeRepo) FindByID(ctx context.Context, id uint) (*domain.WorkType, error) {
	var w domain.WorkType
	err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkTypeRepo) List(ctx context.Context) ([]domain.WorkType, error) {
	var out []domain.WorkType
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *WorkTypeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.WorkType{}).Count(&n).Error
	return n, err
}

func (r *WorkTypeRepo) Update(ctx context.Context, w *domain.WorkType) error {
	return translate(r.db.WithContext(ctx).Save(w).Error)
}

// Delete 依赖外键约束拒绝删除仍被订单引用的类型
func (r *WorkTypeRepo) Delete(ctx context.Context, id uint) error {
	return deleted(r.db.WithContext(ctx).Delete(&domain.WorkType{}, id))
}
