package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autoshop/internal/domain"
	"autoshop/internal/repo"
	"autoshop/internal/service"
	"autoshop/internal/testutil"
	"autoshop/pkg/utils"
)

func newUserAdmin(t *testing.T) (*service.UserAdminService, *gorm.DB) {
	db := testutil.NewDB(t)
	s := service.NewUserAdminService(repo.NewUserRepo(db), zap.NewNop())
	s.Now = func() time.Time { return fixedNow }
	return s, db
}

func TestUserAdminService_DeleteCascadesOrders(t *testing.T) {
	s, db := newUserAdmin(t)
	admin := testutil.CreateUser(t, db, "admin", "admin123", domain.RoleAdmin)
	alice := testutil.CreateUser(t, db, "alice", "secret1", domain.RoleUser)
	bob := testutil.CreateUser(t, db, "bob", "secret1", domain.RoleUser)
	w := testutil.CreateWorkType(t, db, "Oil change")
	testutil.CreateOrder(t, db, alice.ID, w.ID)
	testutil.CreateOrder(t, db, alice.ID, w.ID)
	testutil.CreateOrder(t, db, bob.ID, w.ID)

	require.NoError(t, s.Delete(context.Background(), admin, alice.ID))

	assert.Zero(t, testutil.CountOrders(t, db, alice.ID))
	assert.EqualValues(t, 1, testutil.CountOrders(t, db, bob.ID))
	_, err := s.Get(context.Background(), admin, alice.ID)
	assert.Equal(t, service.KindNotFound, service.KindOf(err))
}

func TestUserAdminService_DeleteSelf(t *testing.T) {
	s, db := newUserAdmin(t)
	admin := testutil.CreateUser(t, db, "admin", "admin123", domain.RoleAdmin)

	err := s.Delete(context.Background(), admin, admin.ID)
	require.Error(t, err)
	assert.Equal(t, "You cannot delete your own account", err.Error())

	_, err = s.Get(context.Background(), admin, admin.ID)
	assert.NoError(t, err)
}

func TestUserAdminService_DeleteMissing(t *testing.T) {
	s, db := newUserAdmin(t)
	admin := testutil.CreateUser(t, db, "admin", "admin123", domain.RoleAdmin)

	err := s.Delete(context.Background(), admin, 404)
	require.Error(t, err)
	assert.Equal(t, service.KindNotFound, service.KindOf(err))
	assert.Contains(t, err.Error(), "Error deleting user: ")
}

func TestUserAdminService_NonAdmin(t *testing.T) {
	s, db := newUserAdmin(t)
	alice := testutil.CreateUser(t, db, "alice", "secret1", domain.RoleUser)
	bob := testutil.CreateUser(t, db, "bob", "secret1", domain.RoleUser)
	ctx := context.Background()

	_, err := s.List(ctx, alice)
	assert.ErrorIs(t, err, service.ErrPermissionDenied)
	assert.ErrorIs(t, s.Delete(ctx, alice, bob.ID), service.ErrPermissionDenied)
	_, err = s.Create(ctx, alice, service.UserInput{Username: "mallory", Password: "secret1", DateOfBirth: "1990-01-01", Gender: "male"})
	assert.ErrorIs(t, err, service.ErrPermissionDenied)

	_, err = s.List(ctx, nil)
	assert.Equal(t, service.KindUnauthorized, service.KindOf(err))

	var n int64
	require.NoError(t, db.Model(&domain.User{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestUserAdminService_CreateWithRole(t *testing.T) {
	s, db := newUserAdmin(t)
	admin := testutil.CreateUser(t, db, "admin", "admin123", domain.RoleAdmin)
	ctx := context.Background()

	// 后台新增不受年龄限制
	u, err := s.Create(ctx, admin, service.UserInput{
		Username: "kid", Password: "secret1", DateOfBirth: "2015-05-05", Gender: "male", Role: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	u, err = s.Create(ctx, admin, service.UserInput{
		Username: "plain", Password: "secret1", DateOfBirth: "1990-01-01", Gender: "female",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, u.Role)

	_, err = s.Create(ctx, admin, service.UserInput{
		Username: "boss", Password: "secret1", DateOfBirth: "1990-01-01", Gender: "female", Role: "root",
	})
	require.Error(t, err)
	assert.Equal(t, "Role must be user or admin", err.Error())
}

func TestUserAdminService_Update(t *testing.T) {
	s, db := newUserAdmin(t)
	admin := testutil.CreateUser(t, db, "admin", "admin123", domain.RoleAdmin)
	alice := testutil.CreateUser(t, db, "alice", "secret1", domain.RoleUser)
	testutil.CreateUser(t, db, "bob", "secret1", domain.RoleUser)
	ctx := context.Background()

	in := service.UserInput{
		Username:    "alice",
		DateOfBirth: "1991-02-03",
		Gender:      "female",
		Role:        "user",
		Phone:       "9001234567",
		Email:       "alice@example.com",
	}
	u, err := s.Update(ctx, admin, alice.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.EmailValue())
	assert.True(t, utils.CheckPassword("secret1", u.PasswordHash), "empty password keeps the old one")

	// 保留自己的用户名和邮箱不算冲突
	_, err = s.Update(ctx, admin, alice.ID, in)
	require.NoError(t, err)

	in.Username = "bob"
	_, err = s.Update(ctx, admin, alice.ID, in)
	require.Error(t, err)
	assert.Equal(t, "Username is already taken", err.Error())

	in.Username = "alice"
	in.Password = "newpass"
	u, err = s.Update(ctx, admin, alice.ID, in)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword("newpass", u.PasswordHash))
}
