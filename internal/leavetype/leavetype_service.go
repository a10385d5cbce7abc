package leavetype

import (
	"context"
	"errors"

	leavetypeerrors "leavedesk/internal/leavetype/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	Delete(ctx context.Context, id string) error

	Assign(ctx context.Context, req AssignmentRequest) (AssignmentResponse, error)
	Unassign(ctx context.Context, req AssignmentRequest) error
	GetAssignments(ctx context.Context) ([]AssignmentResponse, error)
	GetAssignmentDetails(ctx context.Context) ([]AssignmentDetail, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	lt := &LeaveType{
		ID:     uuid.New(),
		Name:   req.Name,
		Active: true,
	}
	if err := s.repo.Create(ctx, lt); err != nil {
		s.logger.Error("create leave type failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	return mapToResponse(*lt), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		resp[i] = mapToResponse(lt)
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeNotFound
		}
		return LeaveTypeResponse{}, err
	}

	lt.Name = req.Name
	lt.Active = *req.Active
	if err := s.repo.Update(ctx, lt); err != nil {
		s.logger.Error("update leave type failed", zap.String("id", id), zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	return mapToResponse(*lt), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leavetypeerrors.ErrInvalidLeaveTypeID
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Assign(ctx context.Context, req AssignmentRequest) (AssignmentResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return AssignmentResponse{}, leavetypeerrors.ErrInvalidUserID
	}
	typeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return AssignmentResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	a := &UserLeaveType{UserID: userID, LeaveTypeID: typeID}
	if err := s.repo.Assign(ctx, a); err != nil {
		s.logger.Error("assign leave type failed",
			zap.String("user_id", req.UserID),
			zap.String("leave_type_id", req.LeaveTypeID),
			zap.Error(err),
		)
		return AssignmentResponse{}, err
	}
	return AssignmentResponse{UserID: req.UserID, LeaveTypeID: req.LeaveTypeID}, nil
}

func (s *service) Unassign(ctx context.Context, req AssignmentRequest) error {
	if _, err := uuid.Parse(req.UserID); err != nil {
		return leavetypeerrors.ErrInvalidUserID
	}
	if _, err := uuid.Parse(req.LeaveTypeID); err != nil {
		return leavetypeerrors.ErrInvalidLeaveTypeID
	}
	return s.repo.Unassign(ctx, req.UserID, req.LeaveTypeID)
}

func (s *service) GetAssignments(ctx context.Context) ([]AssignmentResponse, error) {
	assignments, err := s.repo.FindAllAssignments(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		resp[i] = AssignmentResponse{
			UserID:      a.UserID.String(),
			LeaveTypeID: a.LeaveTypeID.String(),
		}
	}
	return resp, nil
}

func (s *service) GetAssignmentDetails(ctx context.Context) ([]AssignmentDetail, error) {
	return s.repo.FindAssignmentDetails(ctx)
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:     lt.ID.String(),
		Name:   lt.Name,
		Active: lt.Active,
	}
}
