package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"autoshop/internal/domain"
	"autoshop/pkg/utils"
)

// UserInput 后台新增/编辑用户；编辑时 Password 留空表示不改
type UserInput struct {
	Username    string `form:"username"`
	Password    string `form:"password"`
	DateOfBirth string `form:"date_of_birth"`
	Gender      string `form:"gender"`
	Role        string `form:"role"`
	Phone       string `form:"phone"`
	Email       string `form:"email"`
}

type UserAdminService struct {
	users domain.UserRepository
	log   *zap.Logger
	Now   func() time.Time
}

func NewUserAdminService(users domain.UserRepository, log *zap.Logger) *UserAdminService {
	return &UserAdminService{users: users, log: log, Now: time.Now}
}

func (s *UserAdminService) List(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	out, err := s.users.List(ctx)
	if err != nil {
		return nil, Internal("Could not load users", err)
	}
	return out, nil
}

func (s *UserAdminService) Get(ctx context.Context, actor *domain.User, id uint) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("Could not load user", err)
	}
	if u == nil {
		return nil, NotFound("User not found")
	}
	return u, nil
}

func (in UserInput) profile(selfID uint, passwordOptional bool) profile {
	return profile{
		Username:         in.Username,
		Password:         in.Password,
		DateOfBirth:      in.DateOfBirth,
		Gender:           in.Gender,
		Phone:            in.Phone,
		Email:            in.Email,
		selfID:           selfID,
		passwordOptional: passwordOptional,
	}
}

func parseRole(s string) (domain.Role, error) {
	r := domain.Role(strings.TrimSpace(s))
	if r == "" {
		r = domain.RoleUser
	}
	if !r.Valid() {
		return "", Validation("Role must be user or admin")
	}
	return r, nil
}

func (s *UserAdminService) Create(ctx context.Context, actor *domain.User, in UserInput) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	p := in.profile(0, false)
	dob, err := p.check(ctx, s.users, s.Now())
	if err != nil {
		return nil, err
	}
	role, err := parseRole(in.Role)
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(p.Password)
	if err != nil {
		return nil, Internal("Could not add user", err)
	}
	u := &domain.User{
		Username:     p.Username,
		PasswordHash: hash,
		DateOfBirth:  dob,
		Gender:       domain.Gender(p.Gender),
		Role:         role,
		Phone:        p.Phone,
		Email:        optional(p.Email),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, persistErr("Could not add user", err)
	}
	s.log.Info("user created by admin", zap.Uint("user_id", u.ID), zap.Uint("by", actor.ID))
	return u, nil
}

func (s *UserAdminService) Update(ctx context.Context, actor *domain.User, id uint, in UserInput) (*domain.User, error) {
	u, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	p := in.profile(u.ID, true)
	dob, err := p.check(ctx, s.users, s.Now())
	if err != nil {
		return nil, err
	}
	role, err := parseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if p.Password != "" {
		hash, err := utils.HashPassword(p.Password)
		if err != nil {
			return nil, Internal("Could not update user", err)
		}
		u.PasswordHash = hash
	}
	u.Username = p.Username
	u.DateOfBirth = dob
	u.Gender = domain.Gender(p.Gender)
	u.Role = role
	u.Phone = p.Phone
	u.Email = optional(p.Email)
	if err := s.users.Update(ctx, u); err != nil {
		return nil, persistErr("Could not update user", err)
	}
	s.log.Info("user updated by admin", zap.Uint("user_id", u.ID), zap.Uint("by", actor.ID))
	return u, nil
}

// Delete 级联删除该用户的订单；失败时把底层错误文本带给管理员
func (s *UserAdminService) Delete(ctx context.Context, actor *domain.User, id uint) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if actor.ID == id {
		return Validation("You cannot delete your own account")
	}
	if err := s.users.DeleteCascade(ctx, id); err != nil {
		s.log.Error("delete user failed", zap.Uint("user_id", id), zap.Error(err))
		return persistErr("Error deleting user: "+err.Error(), err)
	}
	s.log.Info("user deleted", zap.Uint("user_id", id), zap.Uint("by", actor.ID))
	return nil
}
