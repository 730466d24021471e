package service

import (
	"context"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"autoshop/internal/domain"
	"autoshop/pkg/utils"
)

type RegisterInput struct {
	Username    string `form:"username"`
	Password    string `form:"password"`
	DateOfBirth string `form:"date_of_birth"`
	Gender      string `form:"gender"`
	Phone       string `form:"phone"`
	Email       string `form:"email"`
}

type PasswordInput struct {
	Current string `form:"current_password"`
	New     string `form:"new_password"`
}

// AccountService 注册、登录校验、改密码
type AccountService struct {
	users domain.UserRepository
	log   *zap.Logger
	Now   func() time.Time
}

func NewAccountService(users domain.UserRepository, log *zap.Logger) *AccountService {
	return &AccountService{users: users, log: log, Now: time.Now}
}

func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	p := profile{
		Username:     in.Username,
		Password:     in.Password,
		DateOfBirth:  in.DateOfBirth,
		Gender:       in.Gender,
		Phone:        in.Phone,
		Email:        in.Email,
		requireAdult: true,
	}
	dob, err := p.check(ctx, s.users, s.Now())
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(p.Password)
	if err != nil {
		return nil, Internal("Registration failed", err)
	}
	u := &domain.User{
		Username:     p.Username,
		PasswordHash: hash,
		DateOfBirth:  dob,
		Gender:       domain.Gender(p.Gender),
		Role:         domain.RoleUser,
		Phone:        p.Phone,
		Email:        optional(p.Email),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, persistErr("Registration failed", err)
	}
	s.log.Info("user registered", zap.Uint("user_id", u.ID), zap.String("username", u.Username))
	return u, nil
}

// Authenticate 不区分“用户不存在”和“密码错误”
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, Internal("Login failed", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Identity 会话里的用户 ID -> 用户；已删除返回 nil
func (s *AccountService) Identity(ctx context.Context, id uint) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AccountService) ChangePassword(ctx context.Context, actor *domain.User, in PasswordInput) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	if !utils.CheckPassword(in.Current, actor.PasswordHash) {
		return Validation("Current password is incorrect")
	}
	if utf8.RuneCountInString(in.New) < 6 {
		return Validation("Password must be at least 6 characters long")
	}
	hash, err := utils.HashPassword(in.New)
	if err != nil {
		return Internal("Could not change password", err)
	}
	actor.PasswordHash = hash
	if err := s.users.Update(ctx, actor); err != nil {
		return persistErr("Could not change password", err)
	}
	return nil
}
