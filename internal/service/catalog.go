package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"autoshop/internal/domain"
)

type WorkTypeInput struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

type MechanicInput struct {
	Name           string `form:"name"`
	Phone          string `form:"phone"`
	Specialization string `form:"specialization"`
}

// CatalogService 工种和技师；读公开，写仅管理员
type CatalogService struct {
	workTypes domain.WorkTypeRepository
	mechanics domain.MechanicRepository
	log       *zap.Logger
}

func NewCatalogService(w domain.WorkTypeRepository, m domain.MechanicRepository, log *zap.Logger) *CatalogService {
	return &CatalogService{workTypes: w, mechanics: m, log: log}
}

func (s *CatalogService) ListWorkTypes(ctx context.Context) ([]domain.WorkType, error) {
	out, err := s.workTypes.List(ctx)
	if err != nil {
		return nil, Internal("Could not load work types", err)
	}
	return out, nil
}

func (s *CatalogService) GetWorkType(ctx context.Context, id uint) (*domain.WorkType, error) {
	w, err := s.workTypes.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("Could not load work type", err)
	}
	if w == nil {
		return nil, NotFound("Work type not found")
	}
	return w, nil
}

func (in *WorkTypeInput) check() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return Validation("Work type name is required")
	}
	return nil
}

func (s *CatalogService) CreateWorkType(ctx context.Context, actor *domain.User, in WorkTypeInput) (*domain.WorkType, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := in.check(); err != nil {
		return nil, err
	}
	w := &domain.WorkType{Name: in.Name, Description: in.Description}
	if err := s.workTypes.Create(ctx, w); err != nil {
		return nil, persistErr("Could not add work type", err)
	}
	s.log.Info("work type created", zap.Uint("id", w.ID), zap.Uint("by", actor.ID))
	return w, nil
}

func (s *CatalogService) UpdateWorkType(ctx context.Context, actor *domain.User, id uint, in WorkTypeInput) (*domain.WorkType, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	w, err := s.GetWorkType(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.check(); err != nil {
		return nil, err
	}
	w.Name, w.Description = in.Name, in.Description
	if err := s.workTypes.Update(ctx, w); err != nil {
		return nil, persistErr("Could not update work type", err)
	}
	return w, nil
}

// DeleteWorkType 被订单引用时由外键拒绝，对外只报通用失败
func (s *CatalogService) DeleteWorkType(ctx context.Context, actor *domain.User, id uint) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.workTypes.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NotFound("Work type not found")
		}
		s.log.Warn("delete work type failed", zap.Uint("id", id), zap.Error(err))
		return persistErr("Error deleting work type", err)
	}
	s.log.Info("work type deleted", zap.Uint("id", id), zap.Uint("by", actor.ID))
	return nil
}

func (s *CatalogService) ListMechanics(ctx context.Context) ([]domain.Mechanic, error) {
	out, err := s.mechanics.List(ctx)
	if err != nil {
		return nil, Internal("Could not load mechanics", err)
	}
	return out, nil
}

func (s *CatalogService) GetMechanic(ctx context.Context, id uint) (*domain.Mechanic, error) {
	m, err := s.mechanics.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("Could not load mechanic", err)
	}
	if m == nil {
		return nil, NotFound("Mechanic not found")
	}
	return m, nil
}

func (in *MechanicInput) check() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Specialization = strings.TrimSpace(in.Specialization)
	if in.Name == "" {
		return Validation("Mechanic name is required")
	}
	if in.Phone != "" && !digits(in.Phone, 10) {
		return Validation("Phone number must contain exactly 10 digits")
	}
	return nil
}

func (s *CatalogService) CreateMechanic(ctx context.Context, actor *domain.User, in MechanicInput) (*domain.Mechanic, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := in.check(); err != nil {
		return nil, err
	}
	m := &domain.Mechanic{Name: in.Name, Phone: in.Phone, Specialization: in.Specialization}
	if err := s.mechanics.Create(ctx, m); err != nil {
		return nil, persistErr("Could not add mechanic", err)
	}
	s.log.Info("mechanic created", zap.Uint("id", m.ID), zap.Uint("by", actor.ID))
	return m, nil
}

func (s *CatalogService) UpdateMechanic(ctx context.Context, actor *domain.User, id uint, in MechanicInput) (*domain.Mechanic, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	m, err := s.GetMechanic(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.check(); err != nil {
		return nil, err
	}
	m.Name, m.Phone, m.Specialization = in.Name, in.Phone, in.Specialization
	if err := s.mechanics.Update(ctx, m); err != nil {
		return nil, persistErr("Could not update mechanic", err)
	}
	return m, nil
}

func (s *CatalogService) DeleteMechanic(ctx context.Context, actor *domain.User, id uint) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.mechanics.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NotFound("Mechanic not found")
		}
		s.log.Warn("delete mechanic failed", zap.Uint("id", id), zap.Error(err))
		return persistErr("Error deleting mechanic", err)
	}
	s.log.Info("mechanic deleted", zap.Uint("id", id), zap.Uint("by", actor.ID))
	return nil
}
