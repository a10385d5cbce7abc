package leavetype

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, lt *LeaveType) error
	FindAll(ctx context.Context) ([]LeaveType, error)
	FindByID(ctx context.Context, id string) (*LeaveType, error)
	Update(ctx context.Context, lt *LeaveType) error
	Delete(ctx context.Context, id string) error

	Assign(ctx context.Context, a *UserLeaveType) error
	Unassign(ctx context.Context, userID, leaveTypeID string) error
	FindAllAssignments(ctx context.Context) ([]UserLeaveType, error)
	FindAssignmentDetails(ctx context.Context) ([]AssignmentDetail, error)

	// AssignedActiveTypes returns the active leave types assigned to a user.
	AssignedActiveTypes(ctx context.Context, userID string) ([]LeaveType, error)
	// IsAssigned reports whether the user holds an assignment for an active
	// leave type.
	IsAssigned(ctx context.Context, userID, leaveTypeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Create(lt).Error
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&types).Error
	return types, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).First(&lt, "id = ?", id).Error
	return &lt, err
}

func (r *repository) Update(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Save(lt).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&LeaveType{}, "id = ?", id).Error
}

func (r *repository) Assign(ctx context.Context, a *UserLeaveType) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(a).Error
}

func (r *repository) Unassign(ctx context.Context, userID, leaveTypeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("leave_type_id = ?", leaveTypeID).
		Delete(&UserLeaveType{}).Error
}

func (r *repository) FindAllAssignments(ctx context.Context) ([]UserLeaveType, error) {
	var assignments []UserLeaveType
	err := r.db.WithContext(ctx).Find(&assignments).Error
	return assignments, err
}

func (r *repository) FindAssignmentDetails(ctx context.Context) ([]AssignmentDetail, error) {
	var details []AssignmentDetail
	err := r.db.WithContext(ctx).
		Table("user_leave_types").
		Select(`user_leave_types.user_id,
			user_leave_types.leave_type_id,
			profiles.full_name AS user_name,
			profiles.email AS user_email,
			profiles.role AS user_role,
			leave_types.name AS leave_type_name`).
		Joins("JOIN profiles ON profiles.id = user_leave_types.user_id").
		Joins("JOIN leave_types ON leave_types.id = user_leave_types.leave_type_id").
		Scan(&details).Error
	return details, err
}

func (r *repository) AssignedActiveTypes(ctx context.Context, userID string) ([]LeaveType, error) {
	var types []LeaveType
	err := r.db.WithContext(ctx).
		Table("leave_types").
		Joins("JOIN user_leave_types ON user_leave_types.leave_type_id = leave_types.id").
		Where("user_leave_types.user_id = ?", userID).
		Where("leave_types.active = ?", true).
		Order("leave_types.name").
		Find(&types).Error
	return types, err
}

func (r *repository) IsAssigned(ctx context.Context, userID, leaveTypeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("user_leave_types").
		Joins("JOIN leave_types ON leave_types.id = user_leave_types.leave_type_id").
		Where("user_leave_types.user_id = ?", userID).
		Where("user_leave_types.leave_type_id = ?", leaveTypeID).
		Where("leave_types.active = ?", true).
		Count(&count).Error
	return count > 0, err
}
