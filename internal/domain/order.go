package domain

import (
	"context"
	"time"
)

// Order 只有两个状态：未支付 -> 已支付，不可回退。
type Order struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index"`
	User       *User     `gorm:"foreignKey:UserID"`
	WorkTypeID uint      `gorm:"not null;index"`
	WorkType   *WorkType `gorm:"foreignKey:WorkTypeID"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null"`
	IsPaid     bool      `gorm:"not null;default:false"`
}

func (Order) TableName() string { return "orders" }

type OrderRepository interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	// ListByUser 按创建时间倒序，预加载 WorkType
	ListByUser(ctx context.Context, userID uint) ([]Order, error)
	MarkPaid(ctx context.Context, id uint) error
}
