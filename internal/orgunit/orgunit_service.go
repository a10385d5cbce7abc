package orgunit

import (
	"context"
	"errors"

	orguniterrors "leavedesk/internal/orgunit/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context, kind string) ([]UnitResponse, error)
	Create(ctx context.Context, kind string, req CreateUnitRequest) (UnitResponse, error)
	Update(ctx context.Context, kind, id string, req UpdateUnitRequest) (UnitResponse, error)
	Delete(ctx context.Context, kind, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("orgunit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("orgunit.service")
	}
	return &service{repo: repo, logger: l}
}

func tableFor(kind string) (string, error) {
	table, ok := Kinds[kind]
	if !ok {
		return "", orguniterrors.ErrUnknownKind
	}
	return table, nil
}

func (s *service) List(ctx context.Context, kind string) ([]UnitResponse, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	units, err := s.repo.FindAll(ctx, table)
	if err != nil {
		return nil, err
	}

	resp := make([]UnitResponse, len(units))
	for i, u := range units {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, kind string, req CreateUnitRequest) (UnitResponse, error) {
	table, err := tableFor(kind)
	if err != nil {
		return UnitResponse{}, err
	}

	u := &Unit{
		ID:     uuid.New(),
		Name:   req.Name,
		Active: true,
	}
	if err := s.repo.Create(ctx, table, u); err != nil {
		s.logger.Error("create unit failed", zap.String("kind", kind), zap.Error(err))
		return UnitResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, kind, id string, req UpdateUnitRequest) (UnitResponse, error) {
	table, err := tableFor(kind)
	if err != nil {
		return UnitResponse{}, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return UnitResponse{}, orguniterrors.ErrInvalidUnitID
	}

	u, err := s.repo.FindByID(ctx, table, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UnitResponse{}, orguniterrors.ErrUnitNotFound
		}
		return UnitResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Active != nil {
		u.Active = *req.Active
	}
	if err := s.repo.Update(ctx, table, u); err != nil {
		s.logger.Error("update unit failed", zap.String("kind", kind), zap.String("id", id), zap.Error(err))
		return UnitResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, kind, id string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	if _, err := uuid.Parse(id); err != nil {
		return orguniterrors.ErrInvalidUnitID
	}
	return s.repo.Delete(ctx, table, id)
}

func mapToResponse(u Unit) UnitResponse {
	return UnitResponse{
		ID:     u.ID.String(),
		Name:   u.Name,
		Active: u.Active,
	}
}
