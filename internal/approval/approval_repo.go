package approval

import (
	"context"
	"time"

	"leavedesk/internal/leave"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApprovalItem is the queue read model: a leave joined with its requester
// profile and leave type name.
type ApprovalItem struct {
	leave.LeaveRequest
	RequesterName  string
	RequesterEmail string
	LeaveTypeName  string
}

// DecisionUpdate is what a decision writes onto the leave row.
type DecisionUpdate struct {
	Status          string
	ApprovedBy      uuid.UUID
	ApprovedAt      time.Time
	DecisionNote    *string
	CalendarEventID *string
}

type Repository interface {
	// FindQueue returns the approval queue newest first. A non-nil
	// requiredRole restricts it to leaves targeted at that role;
	// pendingOnly drops already decided rows.
	FindQueue(ctx context.Context, requiredRole *string, pendingOnly bool) ([]ApprovalItem, error)
	FindItemByID(ctx context.Context, id string) (*ApprovalItem, error)
	// DecideIfPending applies the decision only while the row is still
	// PENDING and reports whether a row was actually updated.
	DecideIfPending(ctx context.Context, id string, upd DecisionUpdate) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) queueQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("leave_requests").
		Select(`leave_requests.*,
			profiles.full_name AS requester_name,
			profiles.email AS requester_email,
			leave_types.name AS leave_type_name`).
		Joins("JOIN profiles ON profiles.id = leave_requests.user_id").
		Joins("JOIN leave_types ON leave_types.id = leave_requests.leave_type_id")
}

func (r *repository) FindQueue(ctx context.Context, requiredRole *string, pendingOnly bool) ([]ApprovalItem, error) {
	q := r.queueQuery(ctx)
	if requiredRole != nil {
		q = q.Where("leave_requests.approver_required_role = ?", *requiredRole)
	}
	if pendingOnly {
		q = q.Where("leave_requests.status = ?", leave.StatusPending)
	}

	var items []ApprovalItem
	err := q.Order("leave_requests.created_at DESC").Find(&items).Error
	return items, err
}

func (r *repository) FindItemByID(ctx context.Context, id string) (*ApprovalItem, error) {
	var item ApprovalItem
	err := r.queueQuery(ctx).
		Where("leave_requests.id = ?", id).
		Take(&item).Error
	return &item, err
}

func (r *repository) DecideIfPending(ctx context.Context, id string, upd DecisionUpdate) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&leave.LeaveRequest{}).
		Where("id = ?", id).
		Where("status = ?", leave.StatusPending).
		Updates(map[string]any{
			"status":            upd.Status,
			"approved_by":       upd.ApprovedBy,
			"approved_at":       upd.ApprovedAt,
			"decision_note":     upd.DecisionNote,
			"calendar_event_id": upd.CalendarEventID,
		})
	return res.RowsAffected > 0, res.Error
}
