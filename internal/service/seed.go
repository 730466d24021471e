package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"autoshop/internal/domain"
	"autoshop/pkg/utils"
)

type SeedData struct {
	AdminUsername string
	AdminPassword string // 为空时生成随机密码并打到日志
	AdminEmail    string
	WorkTypes     []domain.WorkType
	Mechanics     []domain.Mechanic
}

// Seeder 启动时幂等地写入管理员和参考数据
type Seeder struct {
	Users     domain.UserRepository
	WorkTypes domain.WorkTypeRepository
	Mechanics domain.MechanicRepository
	Log       *zap.Logger
}

func (s *Seeder) Run(ctx context.Context, data SeedData) error {
	if err := s.seedAdmin(ctx, data); err != nil {
		return err
	}
	if err := s.seedWorkTypes(ctx, data.WorkTypes); err != nil {
		return err
	}
	return s.seedMechanics(ctx, data.Mechanics)
}

func (s *Seeder) seedAdmin(ctx context.Context, data SeedData) error {
	if data.AdminUsername == "" {
		return nil
	}
	existing, err := s.Users.FindByUsername(ctx, data.AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	pw := data.AdminPassword
	if pw == "" {
		pw = uuid.NewString()[:12]
		s.Log.Warn("seed admin password not configured, generated one", zap.String("username", data.AdminUsername), zap.String("password", pw))
	}
	hash, err := utils.HashPassword(pw)
	if err != nil {
		return err
	}
	admin := &domain.User{
		Username:     data.AdminUsername,
		PasswordHash: hash,
		DateOfBirth:  time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:       domain.GenderOther,
		Role:         domain.RoleAdmin,
		Email:        optional(data.AdminEmail),
	}
	if err := s.Users.Create(ctx, admin); err != nil {
		return err
	}
	s.Log.Info("admin seeded", zap.String("username", admin.Username))
	return nil
}

func (s *Seeder) seedWorkTypes(ctx context.Context, items []domain.WorkType) error {
	n, err := s.WorkTypes.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	for i := range items {
		w := items[i]
		if err := s.WorkTypes.Create(ctx, &w); err != nil {
			return err
		}
	}
	s.Log.Info("work types seeded", zap.Int("count", len(items)))
	return nil
}

func (s *Seeder) seedMechanics(ctx context.Context, items []domain.Mechanic) error {
	n, err := s.Mechanics.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	for i := range items {
		m := items[i]
		if err := s.Mechanics.Create(ctx, &m); err != nil {
			return err
		}
	}
	s.Log.Info("mechanics seeded", zap.Int("count", len(items)))
	return nil
}
