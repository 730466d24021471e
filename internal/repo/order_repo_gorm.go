package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"autoshop/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create 不写关联，只落订单本身
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(o).Error)
}

func (r *OrderRepo) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Preload("WorkType").First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Preload("WorkType").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkPaid 重复支付时 MySQL 的 RowsAffected 为 0，这里不据此判断存在性
func (r *OrderRepo) MarkPaid(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Update("is_paid", true).Error)
}
