package approval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	approvalerrors "leavedesk/internal/approval/errors"
	"leavedesk/internal/leave"
	"leavedesk/internal/policy"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sideEffectTimeout = 10 * time.Second

// EventManager covers the calendar operations a decision needs. Event
// creation is a hard dependency of approval; deletion is best-effort
// compensation when the status write loses a race.
type EventManager interface {
	CreateAllDayEvent(ctx context.Context, summary, description string, start, end time.Time) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// Notifier delivers the decision to the requester. Both channels are
// fire-and-forget; a notification failure never fails the decision.
type Notifier interface {
	Email(ctx context.Context, to, subject, html string) error
	Slack(ctx context.Context, text string) error
}

type Service interface {
	ListQueue(ctx context.Context, role policy.Role) ([]ApprovalResponse, error)
	ListPending(ctx context.Context, role policy.Role) ([]ApprovalResponse, error)
	Decide(ctx context.Context, actorID string, role policy.Role, leaveID string, req DecisionRequest) (ApprovalResponse, error)
}

type service struct {
	repo     Repository
	calendar EventManager
	notifier Notifier
	logger   *zap.Logger
}

func NewService(repo Repository, calendar EventManager, notifier Notifier, logger ...*zap.Logger) Service {
	l := zap.L().Named("approval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.service")
	}
	return &service{repo: repo, calendar: calendar, notifier: notifier, logger: l}
}

// queueScope returns the approver_required_role filter for a reviewer.
// Admins see the whole queue; managers only what is addressed to them.
func queueScope(role policy.Role) *string {
	if role == policy.RoleAdmin {
		return nil
	}
	v := role.String()
	return &v
}

func (s *service) ListQueue(ctx context.Context, role policy.Role) ([]ApprovalResponse, error) {
	return s.list(ctx, role, false)
}

func (s *service) ListPending(ctx context.Context, role policy.Role) ([]ApprovalResponse, error) {
	return s.list(ctx, role, true)
}

func (s *service) list(ctx context.Context, role policy.Role, pendingOnly bool) ([]ApprovalResponse, error) {
	if !policy.IsApprover(role) {
		return nil, approvalerrors.ErrQueueForbidden
	}

	items, err := s.repo.FindQueue(ctx, queueScope(role), pendingOnly)
	if err != nil {
		s.logger.Error("list approval queue failed", zap.String("role", role.String()), zap.Error(err))
		return nil, err
	}

	resp := make([]ApprovalResponse, len(items))
	for i, item := range items {
		resp[i] = mapToResponse(item)
	}
	return resp, nil
}

func (s *service) Decide(ctx context.Context, actorID string, role policy.Role, leaveID string, req DecisionRequest) (ApprovalResponse, error) {
	s.logger.Debug("decision requested",
		zap.String("leave_id", leaveID),
		zap.String("actor_id", actorID),
		zap.String("decision", req.Decision),
	)

	if !policy.IsApprover(role) {
		return ApprovalResponse{}, approvalerrors.ErrQueueForbidden
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ApprovalResponse{}, approvalerrors.ErrApprovalNotFound
	}
	if _, err := uuid.Parse(leaveID); err != nil {
		return ApprovalResponse{}, approvalerrors.ErrApprovalNotFound
	}

	targetStatus, err := statusForDecision(req.Decision)
	if err != nil {
		return ApprovalResponse{}, err
	}

	item, err := s.repo.FindItemByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApprovalResponse{}, approvalerrors.ErrApprovalNotFound
		}
		return ApprovalResponse{}, err
	}

	// Conflict wins over scope: a settled leave reads as "already decided"
	// even to a reviewer who could not have decided it.
	if item.Status != leave.StatusPending {
		return ApprovalResponse{}, approvalerrors.ErrAlreadyDecided
	}

	requiredRole, ok := policy.ParseRole(item.ApproverRequiredRole)
	if !ok || !policy.CanDecide(role, requiredRole) {
		return ApprovalResponse{}, approvalerrors.ErrDecisionForbidden
	}

	upd := DecisionUpdate{
		Status:       targetStatus,
		ApprovedBy:   actorUUID,
		ApprovedAt:   time.Now().UTC(),
		DecisionNote: req.Note,
	}

	// The calendar event is created before the status flips so an approved
	// leave is never left without one. If the conditional update then loses
	// the race, the event is compensated away below.
	if targetStatus == leave.StatusApproved {
		eventID, err := s.createCalendarEvent(ctx, item)
		if err != nil {
			s.logger.Error("calendar event creation failed",
				zap.String("leave_id", leaveID),
				zap.Error(err),
			)
			return ApprovalResponse{}, approvalerrors.ErrCalendarSyncFailed
		}
		if eventID != "" {
			upd.CalendarEventID = &eventID
		}
	}

	updated, err := s.repo.DecideIfPending(ctx, leaveID, upd)
	if err != nil {
		s.logger.Error("decision persist failed", zap.String("leave_id", leaveID), zap.Error(err))
		s.compensateCalendarEvent(leaveID, upd.CalendarEventID)
		return ApprovalResponse{}, err
	}
	if !updated {
		s.logger.Warn("decision lost race", zap.String("leave_id", leaveID))
		s.compensateCalendarEvent(leaveID, upd.CalendarEventID)
		return ApprovalResponse{}, approvalerrors.ErrAlreadyDecided
	}

	item.Status = upd.Status
	item.ApprovedBy = &upd.ApprovedBy
	item.ApprovedAt = &upd.ApprovedAt
	item.DecisionNote = upd.DecisionNote
	item.CalendarEventID = upd.CalendarEventID

	s.logger.Info("decision applied",
		zap.String("leave_id", leaveID),
		zap.String("status", upd.Status),
		zap.String("actor_id", actorID),
	)

	s.notifyRequester(*item)

	return mapToResponse(*item), nil
}

// statusForDecision accepts only the two decidable statuses. PENDING and
// CANCELLED are states a reviewer can never write.
func statusForDecision(decision string) (string, error) {
	switch strings.ToUpper(decision) {
	case leave.StatusApproved:
		return leave.StatusApproved, nil
	case leave.StatusRejected:
		return leave.StatusRejected, nil
	default:
		return "", approvalerrors.ErrInvalidDecision
	}
}

func (s *service) createCalendarEvent(ctx context.Context, item *ApprovalItem) (string, error) {
	requester := item.RequesterName
	if requester == "" {
		requester = item.RequesterEmail
	}
	summary := fmt.Sprintf("%s | %s | %s - %s",
		item.LeaveTypeName,
		requester,
		item.StartDate.Format("2006-01-02"),
		item.EndDate.Format("2006-01-02"),
	)

	// All-day events treat the end date as exclusive.
	return s.calendar.CreateAllDayEvent(ctx, summary, item.Reason, item.StartDate, item.EndDate.AddDate(0, 0, 1))
}

func (s *service) compensateCalendarEvent(leaveID string, eventID *string) {
	if eventID == nil || *eventID == "" {
		return
	}
	logger := s.logger
	id := *eventID
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		if err := s.calendar.DeleteEvent(ctx, id); err != nil {
			logger.Warn("compensating calendar deletion failed",
				zap.String("leave_id", leaveID),
				zap.String("calendar_event_id", id),
				zap.Error(err),
			)
		}
	}()
}

func (s *service) notifyRequester(item ApprovalItem) {
	logger := s.logger
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		subject := fmt.Sprintf("Your leave request was %s", strings.ToLower(item.Status))
		html := fmt.Sprintf("<p>Your %s request for %s - %s was <b>%s</b>.</p>",
			item.LeaveTypeName,
			item.StartDate.Format("2006-01-02"),
			item.EndDate.Format("2006-01-02"),
			strings.ToLower(item.Status),
		)
		if item.DecisionNote != nil && *item.DecisionNote != "" {
			html += fmt.Sprintf("<p>Note: %s</p>", *item.DecisionNote)
		}

		if err := s.notifier.Email(ctx, item.RequesterEmail, subject, html); err != nil {
			logger.Warn("decision email failed",
				zap.String("leave_id", item.ID.String()),
				zap.Error(err),
			)
		}

		text := fmt.Sprintf("%s: %s (%s - %s) %s",
			item.RequesterEmail,
			item.LeaveTypeName,
			item.StartDate.Format("2006-01-02"),
			item.EndDate.Format("2006-01-02"),
			item.Status,
		)
		if err := s.notifier.Slack(ctx, text); err != nil {
			logger.Warn("decision slack message failed",
				zap.String("leave_id", item.ID.String()),
				zap.Error(err),
			)
		}
	}()
}

func mapToResponse(item ApprovalItem) ApprovalResponse {
	resp := ApprovalResponse{
		ID:                   item.ID.String(),
		UserID:               item.UserID.String(),
		RequesterName:        item.RequesterName,
		RequesterEmail:       item.RequesterEmail,
		LeaveTypeID:          item.LeaveTypeID.String(),
		LeaveTypeName:        item.LeaveTypeName,
		Reason:               item.Reason,
		StartDate:            item.StartDate.Format("2006-01-02"),
		EndDate:              item.EndDate.Format("2006-01-02"),
		HalfDay:              item.HalfDay,
		TotalDays:            item.TotalDays,
		Status:               item.Status,
		ApproverRequiredRole: item.ApproverRequiredRole,
		DecisionNote:         item.DecisionNote,
		CalendarEventID:      item.CalendarEventID,
		CreatedAt:            item.CreatedAt.Format(time.RFC3339),
	}
	if item.ApprovedBy != nil {
		v := item.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if item.ApprovedAt != nil {
		v := item.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}
