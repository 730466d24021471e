package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autoshop/internal/domain"
)

type MechanicRepo struct{ db *gorm.DB }

func NewMechanicRepo(db *gorm.DB) *MechanicRepo { return &MechanicRepo{db: db} }

func (r *MechanicRepo) Create(ctx context.Context, m *domain.Mechanic) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *MechanicRepo) FindByID(ctx context.Context, id uint) (*domain.Mechanic, error) {
	var m domain.Mechanic
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MechanicRepo) List(ctx context.Context) ([]domain.Mechanic, error) {
	var out []domain.Mechanic
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MechanicRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Mechanic{}).Count(&n).Error
	return n, err
}

func (r *MechanicRepo) Update(ctx context.Context, m *domain.Mechanic) error {
	return translate(r.db.WithContext(ctx).Save(m).Error)
}

func (r *MechanicRepo) Delete(ctx context.Context, id uint) error {
	return deleted(r.db.WithContext(ctx).Delete(&domain.Mechanic{}, id))
}
