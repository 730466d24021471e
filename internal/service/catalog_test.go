package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autoshop/internal/domain"
	"autoshop/internal/repo"
	"autoshop/internal/service"
	"autoshop/internal/testutil"
)

func newCatalog(t *testing.T) (*service.CatalogService, *gorm.DB) {
	db := testutil.NewDB(t)
	s := service.NewCatalogService(repo.NewWorkTypeRepo(db), repo.NewMechanicRepo(db), zap.NewNop())
	return s, db
}

func TestCatalogService_WorkTypeCRUD(t *testing.T) {
	s, db := newCatalog(t)
	admin := testutil.CreateUser(t, db, "admin", "admin123", domain.RoleAdmin)
	ctx := context.Background()

	w, err := s.CreateWorkType(ctx, admin, service.WorkTypeInput{Name: "  Oil change ", Description: "oil"})
	require.NoError(t, err)
	assert.Equal(t, "Oil change", w.Name)

	w, err = s.UpdateWorkType(ctx, admin, w.ID, service.WorkTypeInput{Name: "Oil & filter", Description: "both"})
	require.NoError(t, err)
	assert.Equal(t, "Oil & filter", w.Name)

	list, err := s.ListWorkTypes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "both", list[0].Description)

	require.NoError(t, s.DeleteWorkType(ctx, admin, w.ID))
	_, err = s.GetWorkType(ctx, w.ID)
	assert.Equal(t, service.KindNotFound, service.KindOf(err))
}

func TestCatalogService_WorkTypeNameRequired(t *testing.T) {
	s, db := newCatalog(t)
	admin := testutil.CreateUser(t, db, "admin", "admin123", domain.RoleAdmin)
	w := testutil.CreateWorkType(t, db, "Diagnostics")

	_, err := s.CreateWorkType(context.Background(), admin, service.WorkTypeInput{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, "Work type name is required", err.Error())

	_, err = s.UpdateWorkType(context.Background(), admin, w.ID, service.WorkTypeInput{Name: ""})
	require.Error(t, err)

	got, err := s.GetWorkType(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Diagnostics", got.Name)

	list, err := s.ListWorkTypes(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCatalogService_NonAdminForbidden(t *testing.T) {
	s, db := newCatalog(t)
	user := testutil.CreateUser(t, db, "alice", "secret1", domain.RoleUser)
	w := testutil.CreateWorkType(t, db, "Diagnostics")
	m := testutil.CreateMechanic(t, db, "Ivan")
	ctx := context.Background()

	_, err := s.CreateWorkType(ctx, user, service.WorkTypeInput{Name: "Hack"})
	assert.ErrorIs(t, err, service.ErrPermissionDenied)
	_, err = s.UpdateWorkType(ctx, user, w.ID, service.WorkTypeInput{Name: "Hack"})
	assert.ErrorIs(t, err, service.ErrPermissionDenied)
	assert.ErrorIs(t, s.DeleteWorkType(ctx, user, w.ID), service.ErrPermissionDenied)
	_, err = s.CreateMechanic(ctx, user, service.MechanicInput{Name: "Hack"})
	assert.ErrorIs(t, err, service.ErrPermissionDenied)
	assert.ErrorIs(t, s.DeleteMechanic(ctx, user, m.ID), service.ErrPermissionDenied)

	assert.Equal(t, service.KindUnauthorized, service.KindOf(s.DeleteWorkType(ctx, nil, w.ID)))

	types, err := s.ListWorkTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Diagnostics", types[0].Name)
	mechanics, err := s.ListMechanics(ctx)
	require.NoError(t, err)
	assert.Len(t, mechanics, 1)
}

func TestCatalogService_DeleteReferencedWorkType(t *testing.T) {
	s, db := newCatalog(t)
	admin := testutil.CreateUser(t, db, "admin", "admin123", domain.RoleAdmin)
	alice := testutil.CreateUser(t, db, "alice", "secret1", domain.RoleUser)
	w := testutil.CreateWorkType(t, db, "Diagnostics")
	testutil.CreateOrder(t, db, alice.ID, w.ID)

	err := s.DeleteWorkType(context.Background(), admin, w.ID)
	require.Error(t, err)
	assert.Equal(t, service.KindConflict, service.KindOf(err))
	assert.Equal(t, "Error deleting work type", err.Error())
	assert.ErrorIs(t, err, domain.ErrReferenced)

	_, err = s.GetWorkType(context.Background(), w.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, testutil.CountOrders(t, db, alice.ID))
}

func TestCatalogService_DeleteMissing(t *testing.T) {
	s, db := newCatalog(t)
	admin := testutil.CreateUser(t, db, "admin", "admin123", domain.RoleAdmin)

	assert.Equal(t, service.KindNotFound, service.KindOf(s.DeleteWorkType(context.Background(), admin, 999)))
	assert.Equal(t, service.KindNotFound, service.KindOf(s.DeleteMechanic(context.Background(), admin, 999)))
}

func TestCatalogService_MechanicCRUD(t *testing.T) {
	s, db := newCatalog(t)
	admin := testutil.CreateUser(t, db, "admin", "admin123", domain.RoleAdmin)
	ctx := context.Background()

	_, err := s.CreateMechanic(ctx, admin, service.MechanicInput{Name: ""})
	require.Error(t, err)
	assert.Equal(t, "Mechanic name is required", err.Error())

	_, err = s.CreateMechanic(ctx, admin, service.MechanicInput{Name: "Ivan", Phone: "12345"})
	require.Error(t, err)
	assert.Equal(t, "Phone number must contain exactly 10 digits", err.Error())

	m, err := s.CreateMechanic(ctx, admin, service.MechanicInput{Name: "Ivan", Specialization: "Engine"})
	require.NoError(t, err)

	m, err = s.UpdateMechanic(ctx, admin, m.ID, service.MechanicInput{Name: "Ivan P.", Phone: "9001234567", Specialization: "Brakes"})
	require.NoError(t, err)
	assert.Equal(t, "Brakes", m.Specialization)

	require.NoError(t, s.DeleteMechanic(ctx, admin, m.ID))
	list, err := s.ListMechanics(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
