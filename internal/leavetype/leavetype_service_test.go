package leavetype_test

import (
	"context"
	"testing"

	"leavedesk/internal/leavetype"
	leavetypeerrors "leavedesk/internal/leavetype/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveTypeRepository struct {
	createFn                func(ctx context.Context, lt *leavetype.LeaveType) error
	findAllFn               func(ctx context.Context) ([]leavetype.LeaveType, error)
	findByIDFn              func(ctx context.Context, id string) (*leavetype.LeaveType, error)
	updateFn                func(ctx context.Context, lt *leavetype.LeaveType) error
	deleteFn                func(ctx context.Context, id string) error
	assignFn                func(ctx context.Context, a *leavetype.UserLeaveType) error
	unassignFn              func(ctx context.Context, userID, leaveTypeID string) error
	findAllAssignmentsFn    func(ctx context.Context) ([]leavetype.UserLeaveType, error)
	findAssignmentDetailsFn func(ctx context.Context) ([]leavetype.AssignmentDetail, error)
	assignedActiveTypesFn   func(ctx context.Context, userID string) ([]leavetype.LeaveType, error)
	isAssignedFn            func(ctx context.Context, userID, leaveTypeID string) (bool, error)
}

func (f *fakeLeaveTypeRepository) Create(ctx context.Context, lt *leavetype.LeaveType) error {
	if f.createFn != nil {
		return f.createFn(ctx, lt)
	}
	return nil
}

func (f *fakeLeaveTypeRepository) FindAll(ctx context.Context) ([]leavetype.LeaveType, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveTypeRepository) FindByID(ctx context.Context, id string) (*leavetype.LeaveType, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveTypeRepository) Update(ctx context.Context, lt *leavetype.LeaveType) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, lt)
	}
	return nil
}

func (f *fakeLeaveTypeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeLeaveTypeRepository) Assign(ctx context.Context, a *leavetype.UserLeaveType) error {
	if f.assignFn != nil {
		return f.assignFn(ctx, a)
	}
	return nil
}

func (f *fakeLeaveTypeRepository) Unassign(ctx context.Context, userID, leaveTypeID string) error {
	if f.unassignFn != nil {
		return f.unassignFn(ctx, userID, leaveTypeID)
	}
	return nil
}

func (f *fakeLeaveTypeRepository) FindAllAssignments(ctx context.Context) ([]leavetype.UserLeaveType, error) {
	if f.findAllAssignmentsFn != nil {
		return f.findAllAssignmentsFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveTypeRepository) FindAssignmentDetails(ctx context.Context) ([]leavetype.AssignmentDetail, error) {
	if f.findAssignmentDetailsFn != nil {
		return f.findAssignmentDetailsFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveTypeRepository) AssignedActiveTypes(ctx context.Context, userID string) ([]leavetype.LeaveType, error) {
	if f.assignedActiveTypesFn != nil {
		return f.assignedActiveTypesFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeLeaveTypeRepository) IsAssigned(ctx context.Context, userID, leaveTypeID string) (bool, error) {
	if f.isAssignedFn != nil {
		return f.isAssignedFn(ctx, userID, leaveTypeID)
	}
	return false, nil
}

func TestLeaveTypeService_Create(t *testing.T) {
	repo := &fakeLeaveTypeRepository{
		createFn: func(ctx context.Context, lt *leavetype.LeaveType) error {
			assert.Equal(t, "Annual Leave", lt.Name)
			assert.True(t, lt.Active)
			return nil
		},
	}
	svc := leavetype.NewService(repo)

	resp, err := svc.Create(context.Background(), leavetype.CreateLeaveTypeRequest{Name: "Annual Leave"})

	assert.NoError(t, err)
	assert.Equal(t, "Annual Leave", resp.Name)
	assert.True(t, resp.Active)
}

func TestLeaveTypeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("deactivation round trips", func(t *testing.T) {
		repo := &fakeLeaveTypeRepository{
			findByIDFn: func(ctx context.Context, gotID string) (*leavetype.LeaveType, error) {
				return &leavetype.LeaveType{ID: id, Name: "Annual Leave", Active: true}, nil
			},
			updateFn: func(ctx context.Context, lt *leavetype.LeaveType) error {
				assert.False(t, lt.Active)
				return nil
			},
		}
		svc := leavetype.NewService(repo)

		inactive := false
		resp, err := svc.Update(ctx, id.String(), leavetype.UpdateLeaveTypeRequest{Name: "Annual Leave", Active: &inactive})

		assert.NoError(t, err)
		assert.False(t, resp.Active)
	})

	t.Run("missing type is not found", func(t *testing.T) {
		svc := leavetype.NewService(&fakeLeaveTypeRepository{})

		inactive := false
		_, err := svc.Update(ctx, uuid.New().String(), leavetype.UpdateLeaveTypeRequest{Name: "x", Active: &inactive})

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)
	})

	t.Run("bad id is invalid input", func(t *testing.T) {
		svc := leavetype.NewService(&fakeLeaveTypeRepository{})

		inactive := false
		_, err := svc.Update(ctx, "nope", leavetype.UpdateLeaveTypeRequest{Name: "x", Active: &inactive})

		assert.ErrorIs(t, err, leavetypeerrors.ErrInvalidLeaveTypeID)
	})
}

func TestLeaveTypeService_Assign(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	typeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo := &fakeLeaveTypeRepository{
			assignFn: func(ctx context.Context, a *leavetype.UserLeaveType) error {
				assert.Equal(t, userID, a.UserID.String())
				assert.Equal(t, typeID, a.LeaveTypeID.String())
				return nil
			},
		}
		svc := leavetype.NewService(repo)

		resp, err := svc.Assign(ctx, leavetype.AssignmentRequest{UserID: userID, LeaveTypeID: typeID})

		assert.NoError(t, err)
		assert.Equal(t, userID, resp.UserID)
	})

	t.Run("invalid user id", func(t *testing.T) {
		svc := leavetype.NewService(&fakeLeaveTypeRepository{})

		_, err := svc.Assign(ctx, leavetype.AssignmentRequest{UserID: "nope", LeaveTypeID: typeID})

		assert.ErrorIs(t, err, leavetypeerrors.ErrInvalidUserID)
	})

	t.Run("unassign validates both ids", func(t *testing.T) {
		svc := leavetype.NewService(&fakeLeaveTypeRepository{})

		err := svc.Unassign(ctx, leavetype.AssignmentRequest{UserID: userID, LeaveTypeID: "nope"})

		assert.ErrorIs(t, err, leavetypeerrors.ErrInvalidLeaveTypeID)
	})
}
