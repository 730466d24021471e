package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// User 顾客或管理员。Email 可空但唯一，空值存 NULL。
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:80;not null"`
	PasswordHash string    `gorm:"size:128;not null"`
	DateOfBirth  time.Time `gorm:"not null"`
	Gender       Gender    `gorm:"size:10;not null"`
	Role         Role      `gorm:"size:10;not null;default:user"`
	Phone        string    `gorm:"size:20"`
	Email        *string   `gorm:"uniqueIndex;size:120"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// EmailValue 模板里用，避免直接解引用
func (u *User) EmailValue() string {
	if u == nil || u.Email == nil {
		return ""
	}
	return *u.Email
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	// DeleteCascade 先删该用户的订单再删用户，同一事务内完成
	DeleteCascade(ctx context.Context, id uint) error
}
