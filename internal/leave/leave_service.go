package leave

import (
	"context"
	"errors"
	"time"

	leaveerrors "leavedesk/internal/leave/errors"
	"leavedesk/internal/leavetype"
	"leavedesk/internal/policy"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

const sideEffectTimeout = 10 * time.Second

// AssignmentSource is what the lifecycle manager needs from the leave type
// module: which types a user holds, and whether a specific grant is active.
type AssignmentSource interface {
	AssignedActiveTypes(ctx context.Context, userID string) ([]leavetype.LeaveType, error)
	IsAssigned(ctx context.Context, userID, leaveTypeID string) (bool, error)
}

// EventDeleter deletes a previously synced calendar event. Failures are
// logged and swallowed; cancellation never blocks on the calendar.
type EventDeleter interface {
	DeleteEvent(ctx context.Context, eventID string) error
}

type Service interface {
	Submit(ctx context.Context, userID string, role policy.Role, req CreateLeaveRequest) (LeaveResponse, error)
	GetOwn(ctx context.Context, userID string) ([]LeaveResponse, error)
	AssignedTypes(ctx context.Context, userID string) ([]leavetype.LeaveTypeResponse, error)
	Cancel(ctx context.Context, userID, leaveID string) (LeaveResponse, error)
}

type service struct {
	repo        Repository
	assignments AssignmentSource
	calendar    EventDeleter
	logger      *zap.Logger
}

func NewService(repo Repository, assignments AssignmentSource, calendar EventDeleter, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, assignments: assignments, calendar: calendar, logger: l}
}

func (s *service) Submit(ctx context.Context, userID string, role policy.Role, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("submit leave requested",
		zap.String("user_id", userID),
		zap.String("role", role.String()),
		zap.String("leave_type_id", req.LeaveTypeID),
	)

	if !policy.CanSubmitLeave(role) {
		s.logger.Warn("submit leave blocked for role", zap.String("user_id", userID), zap.String("role", role.String()))
		return LeaveResponse{}, leaveerrors.ErrAdminCannotApply
	}

	userUUID, typeUUID, startDate, endDate, err := validateCreateRequest(userID, req)
	if err != nil {
		s.logger.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	assigned, err := s.assignments.IsAssigned(ctx, userID, req.LeaveTypeID)
	if err != nil {
		s.logger.Error("submit leave assignment check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !assigned {
		return LeaveResponse{}, leaveerrors.ErrLeaveTypeNotAssigned
	}

	approverRole, ok := policy.RequiredApproverRole(role)
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrAdminCannotApply
	}

	l := &LeaveRequest{
		ID:                   uuid.New(),
		UserID:               userUUID,
		LeaveTypeID:          typeUUID,
		Reason:               req.Reason,
		StartDate:            startDate,
		EndDate:              endDate,
		HalfDay:              req.HalfDay,
		TotalDays:            req.TotalDays,
		Status:               StatusPending,
		ApproverRequiredRole: approverRole.String(),
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("user_id", userID),
		zap.String("approver_required_role", l.ApproverRequiredRole),
	)

	return mapToResponse(*l, ""), nil
}

func (s *service) GetOwn(ctx context.Context, userID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, leaveerrors.ErrInvalidUserID
	}

	leaves, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l.LeaveRequest, l.LeaveTypeName)
	}
	return resp, nil
}

func (s *service) AssignedTypes(ctx context.Context, userID string) ([]leavetype.LeaveTypeResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, leaveerrors.ErrInvalidUserID
	}

	types, err := s.assignments.AssignedActiveTypes(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]leavetype.LeaveTypeResponse, len(types))
	for i, lt := range types {
		resp[i] = leavetype.LeaveTypeResponse{
			ID:     lt.ID.String(),
			Name:   lt.Name,
			Active: lt.Active,
		}
	}
	return resp, nil
}

func (s *service) Cancel(ctx context.Context, userID, leaveID string) (LeaveResponse, error) {
	s.logger.Debug("cancel leave requested",
		zap.String("leave_id", leaveID),
		zap.String("user_id", userID),
	)

	if _, err := uuid.Parse(leaveID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	// Non-owners get the same not-found as a missing row.
	if l.UserID.String() != userID {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	wasApproved := l.Status == StatusApproved

	updated, err := s.repo.CancelIfOpen(ctx, leaveID)
	if err != nil {
		s.logger.Error("cancel leave persist failed", zap.String("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !updated {
		s.logger.Warn("cancel leave rejected by status guard",
			zap.String("leave_id", leaveID),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrNotCancellable
	}

	if wasApproved && l.CalendarEventID != nil && *l.CalendarEventID != "" {
		s.unsyncCalendarEvent(leaveID, *l.CalendarEventID)
	}

	l.Status = StatusCancelled
	s.logger.Info("cancel leave success", zap.String("leave_id", leaveID))

	return mapToResponse(*l, ""), nil
}

// unsyncCalendarEvent deletes the synced event off the request path. The
// cancellation is already committed; a failed deletion is only logged.
func (s *service) unsyncCalendarEvent(leaveID, eventID string) {
	logger := s.logger
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		if err := s.calendar.DeleteEvent(ctx, eventID); err != nil {
			logger.Warn("calendar event deletion failed",
				zap.String("leave_id", leaveID),
				zap.String("calendar_event_id", eventID),
				zap.Error(err),
			)
		}
	}()
}

func validateCreateRequest(userID string, req CreateLeaveRequest) (uuid.UUID, uuid.UUID, time.Time, time.Time, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidUserID
	}
	typeUUID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveTypeID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return userUUID, typeUUID, startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest, typeName string) LeaveResponse {
	resp := LeaveResponse{
		ID:                   l.ID.String(),
		UserID:               l.UserID.String(),
		LeaveTypeID:          l.LeaveTypeID.String(),
		LeaveTypeName:        typeName,
		Reason:               l.Reason,
		StartDate:            l.StartDate.Format("2006-01-02"),
		EndDate:              l.EndDate.Format("2006-01-02"),
		HalfDay:              l.HalfDay,
		TotalDays:            l.TotalDays,
		Status:               l.Status,
		ApproverRequiredRole: l.ApproverRequiredRole,
		DecisionNote:         l.DecisionNote,
		CalendarEventID:      l.CalendarEventID,
		CreatedAt:            l.CreatedAt.Format(time.RFC3339),
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}
