package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"autoshop/internal/domain"
	"autoshop/internal/service"
	"autoshop/internal/transport/http/ez"
)

// Admin 后台：用户、工种、技师。分组已挂 RequireAdmin，服务层再校验一次
type Admin struct{ Deps }

func NewAdmin(d Deps) *Admin { return &Admin{Deps: d} }

func (h *Admin) Priority() int { return 90 }

func (h *Admin) Mount(g Groups) {
	ez.Crud(ez.CrudConfig[domain.User, service.UserInput]{
		Group:  g.Admin,
		Name:   "user",
		Title:  "User",
		Log:    h.Log,
		List:   h.Users.List,
		Get:    h.Users.Get,
		Create: h.Users.Create,
		Update: h.Users.Update,
		Delete: h.Users.Delete,
		Hooks: ez.CrudHooks[domain.User, service.UserInput]{
			FormData: func(_ *gin.Context, data gin.H) {
				data["Roles"] = []domain.Role{domain.RoleUser, domain.RoleAdmin}
				data["Genders"] = []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther}
			},
			ToInput: func(u *domain.User) service.UserInput {
				return service.UserInput{
					Username:    u.Username,
					DateOfBirth: u.DateOfBirth.Format("2006-01-02"),
					Gender:      string(u.Gender),
					Role:        string(u.Role),
					Phone:       u.Phone,
					Email:       u.EmailValue(),
				}
			},
		},
	})

	ez.Crud(ez.CrudConfig[domain.WorkType, service.WorkTypeInput]{
		Group: g.Admin,
		Name:  "work_type",
		Title: "Work type",
		Log:   h.Log,
		List: func(ctx context.Context, _ *domain.User) ([]domain.WorkType, error) {
			return h.Catalog.ListWorkTypes(ctx)
		},
		Get: func(ctx context.Context, _ *domain.User, id uint) (*domain.WorkType, error) {
			return h.Catalog.GetWorkType(ctx, id)
		},
		Create: h.Catalog.CreateWorkType,
		Update: h.Catalog.UpdateWorkType,
		Delete: h.Catalog.DeleteWorkType,
		Hooks: ez.CrudHooks[domain.WorkType, service.WorkTypeInput]{
			ToInput: func(w *domain.WorkType) service.WorkTypeInput {
				return service.WorkTypeInput{Name: w.Name, Description: w.Description}
			},
		},
	})

	ez.Crud(ez.CrudConfig[domain.Mechanic, service.MechanicInput]{
		Group: g.Admin,
		Name:  "mechanic",
		Title: "Mechanic",
		Log:   h.Log,
		List: func(ctx context.Context, _ *domain.User) ([]domain.Mechanic, error) {
			return h.Catalog.ListMechanics(ctx)
		},
		Get: func(ctx context.Context, _ *domain.User, id uint) (*domain.Mechanic, error) {
			return h.Catalog.GetMechanic(ctx, id)
		},
		Create: h.Catalog.CreateMechanic,
		Update: h.Catalog.UpdateMechanic,
		Delete: h.Catalog.DeleteMechanic,
		Hooks: ez.CrudHooks[domain.Mechanic, service.MechanicInput]{
			ToInput: func(m *domain.Mechanic) service.MechanicInput {
				return service.MechanicInput{Name: m.Name, Phone: m.Phone, Specialization: m.Specialization}
			},
		},
	})
}
