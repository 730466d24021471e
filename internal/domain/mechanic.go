package domain

import "context"

type Mechanic struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:100;not null"`
	Phone          string `gorm:"size:20"`
	Specialization string `gorm:"size:100"`
}

func (Mechanic) TableName() string { return "mechanics" }

type MechanicRepository interface {
	Create(ctx context.Context, m *Mechanic) error
	FindByID(ctx context.Context, id uint) (*Mechanic, error)
	List(ctx context.Context) ([]Mechanic, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, m *Mechanic) error
	Delete(ctx context.Context, id uint) error
}
