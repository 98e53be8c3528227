package service

import (
	"context"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/repository"
	"github.com/deppfellow/estate-listings/internal/validation"
)

// UnitService is flat CRUD over inventory units.
type UnitService struct {
	units repository.UnitRepository
	clock clock
}

func NewUnitService(units repository.UnitRepository) *UnitService {
	return &UnitService{units: units}
}

func (s *UnitService) ListUnits(ctx context.Context) ([]model.Unit, error) {
	if s.units == nil {
		return nil, unavailable("Unit")
	}

	units, err := s.units.Find(ctx)
	if err != nil {
		return nil, err
	}
	if units == nil {
		units = []model.Unit{}
	}
	return units, nil
}

func (s *UnitService) GetUnit(ctx context.Context, id string) (*model.Unit, error) {
	if s.units == nil {
		return nil, unavailable("Unit")
	}

	u, err := s.units.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "Unit")
	}
	return u, nil
}

func (s *UnitService) CreateUnit(ctx context.Context, in *model.UnitInput) (*model.Unit, error) {
	if s.units == nil {
		return nil, unavailable("Unit")
	}
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	now := s.clock.now()
	u := &model.Unit{ID: model.NewID(), CreatedAt: now, UpdatedAt: now}
	in.Apply(u)

	if err := s.units.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UnitService) UpdateUnit(ctx context.Context, id string, in *model.UnitInput) (*model.Unit, error) {
	if s.units == nil {
		return nil, unavailable("Unit")
	}
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	u, err := s.units.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "Unit")
	}

	in.Apply(u)
	u.UpdatedAt = s.clock.now()

	if err := s.units.Update(ctx, u); err != nil {
		return nil, mapNotFound(err, "Unit")
	}
	return u, nil
}

func (s *UnitService) DeleteUnit(ctx context.Context, id string) error {
	if s.units == nil {
		return unavailable("Unit")
	}

	if _, err := s.units.FindByID(ctx, id); err != nil {
		return mapNotFound(err, "Unit")
	}
	return mapNotFound(s.units.Delete(ctx, id), "Unit")
}
