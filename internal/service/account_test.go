package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autoshop/internal/domain"
	"autoshop/internal/repo"
	"autoshop/internal/service"
	"autoshop/internal/testutil"
	"autoshop/pkg/utils"
)

var fixedNow = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

func newAccountService(t *testing.T) (*service.AccountService, *repo.UserRepo) {
	db := testutil.NewDB(t)
	users := repo.NewUserRepo(db)
	s := service.NewAccountService(users, zap.NewNop())
	s.Now = func() time.Time { return fixedNow }
	return s, users
}

func validRegistration() service.RegisterInput {
	return service.RegisterInput{
		Username:    "alice",
		Password:    "secret1",
		DateOfBirth: "2000-01-01",
		Gender:      "female",
	}
}

func TestAccountService_Register(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *service.RegisterInput)
		wantMsg string
	}{
		{
			name:    "username too short",
			mutate:  func(in *service.RegisterInput) { in.Username = "al" },
			wantMsg: "Username must be at least 3 characters long",
		},
		{
			name: "username checked before password",
			mutate: func(in *service.RegisterInput) {
				in.Username = "al"
				in.Password = "123"
				in.Gender = "robot"
			},
			wantMsg: "Username must be at least 3 characters long",
		},
		{
			name:    "password too short",
			mutate:  func(in *service.RegisterInput) { in.Password = "12345" },
			wantMsg: "Password must be at least 6 characters long",
		},
		{
			name:    "bad date format",
			mutate:  func(in *service.RegisterInput) { in.DateOfBirth = "01.01.2000" },
			wantMsg: "Invalid date of birth, expected YYYY-MM-DD",
		},
		{
			name:    "born today",
			mutate:  func(in *service.RegisterInput) { in.DateOfBirth = fixedNow.Format("2006-01-02") },
			wantMsg: "You must be at least 18 years old to register",
		},
		{
			name:    "seventeen years old",
			mutate:  func(in *service.RegisterInput) { in.DateOfBirth = "2009-01-01" },
			wantMsg: "You must be at least 18 years old to register",
		},
		{
			name:    "unknown gender",
			mutate:  func(in *service.RegisterInput) { in.Gender = "robot" },
			wantMsg: "Gender must be male, female or other",
		},
		{
			name:    "phone with nine digits",
			mutate:  func(in *service.RegisterInput) { in.Phone = "123456789" },
			wantMsg: "Phone number must contain exactly 10 digits",
		},
		{
			name:    "phone with letters",
			mutate:  func(in *service.RegisterInput) { in.Phone = "12345abcde" },
			wantMsg: "Phone number must contain exactly 10 digits",
		},
		{
			name:    "malformed email",
			mutate:  func(in *service.RegisterInput) { in.Email = "alice@localhost" },
			wantMsg: "Invalid email address",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newAccountService(t)
			in := validRegistration()
			tt.mutate(&in)

			u, err := s.Register(context.Background(), in)
			require.Error(t, err)
			assert.Nil(t, u)
			assert.Equal(t, service.KindValidation, service.KindOf(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestAccountService_RegisterAlice(t *testing.T) {
	s, users := newAccountService(t)

	u, err := s.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.Nil(t, u.Email)

	stored, err := users.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, utils.CheckPassword("secret1", stored.PasswordHash))
	assert.Equal(t, domain.GenderFemale, stored.Gender)
}

func TestAccountService_RegisterOptionalFields(t *testing.T) {
	s, _ := newAccountService(t)
	in := validRegistration()
	in.Phone = "9001234567"
	in.Email = "alice@example.com"

	u, err := s.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "9001234567", u.Phone)
	assert.Equal(t, "alice@example.com", u.EmailValue())
}

func TestAccountService_RegisterEighteenExactly(t *testing.T) {
	s, _ := newAccountService(t)
	in := validRegistration()
	in.DateOfBirth = "2008-10-19"

	_, err := s.Register(context.Background(), in)
	assert.NoError(t, err)
}

func TestAccountService_RegisterDuplicateUsername(t *testing.T) {
	s, _ := newAccountService(t)
	_, err := s.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	in := validRegistration()
	in.Password = "another1"
	_, err = s.Register(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, "Username is already taken", err.Error())
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	s, _ := newAccountService(t)
	in := validRegistration()
	in.Email = "shared@example.com"
	_, err := s.Register(context.Background(), in)
	require.NoError(t, err)

	in.Username = "bob"
	in.DateOfBirth = "not-a-date" // 邮箱重复先于日期校验
	_, err = s.Register(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, "Email is already registered", err.Error())
}

func TestAccountService_RegisterManyWithoutEmail(t *testing.T) {
	s, _ := newAccountService(t)
	_, err := s.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	in := validRegistration()
	in.Username = "bob"
	_, err = s.Register(context.Background(), in)
	assert.NoError(t, err, "empty emails are stored as NULL and must not collide")
}

func TestAccountService_Authenticate(t *testing.T) {
	s, _ := newAccountService(t)
	_, err := s.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	u, err := s.Authenticate(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = s.Authenticate(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = s.Authenticate(context.Background(), "nobody", "secret1")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAccountService_ChangePassword(t *testing.T) {
	s, _ := newAccountService(t)
	u, err := s.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	err = s.ChangePassword(context.Background(), u, service.PasswordInput{Current: "nope", New: "newsecret"})
	require.Error(t, err)
	assert.Equal(t, "Current password is incorrect", err.Error())

	err = s.ChangePassword(context.Background(), u, service.PasswordInput{Current: "secret1", New: "12345"})
	require.Error(t, err)
	assert.Equal(t, service.KindValidation, service.KindOf(err))

	require.NoError(t, s.ChangePassword(context.Background(), u, service.PasswordInput{Current: "secret1", New: "newsecret"}))

	_, err = s.Authenticate(context.Background(), "alice", "newsecret")
	assert.NoError(t, err)
	_, err = s.Authenticate(context.Background(), "alice", "secret1")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAccountService_ChangePasswordAnonymous(t *testing.T) {
	s, _ := newAccountService(t)
	err := s.ChangePassword(context.Background(), nil, service.PasswordInput{})
	assert.Equal(t, service.KindUnauthorized, service.KindOf(err))
}
