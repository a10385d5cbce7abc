package leave

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindAllByUser(ctx context.Context, userID string) ([]LeaveWithType, error)
	// CancelIfOpen flips the row to CANCELLED only while it is still PENDING
	// or APPROVED, and reports whether a row was actually updated.
	CancelIfOpen(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]LeaveWithType, error) {
	var leaves []LeaveWithType
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Select("leave_requests.*, leave_types.name AS leave_type_name").
		Joins("JOIN leave_types ON leave_types.id = leave_requests.leave_type_id").
		Where("leave_requests.user_id = ?", userID).
		Order("leave_requests.created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) CancelIfOpen(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Update("status", StatusCancelled)
	return res.RowsAffected > 0, res.Error
}
