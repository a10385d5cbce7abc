package leave_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"leavedesk/internal/leave"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (leave.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	assert.NoError(t, err)

	return leave.NewRepository(gormDB), mock
}

func TestLeaveRepository_CancelIfOpen(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("open row is updated", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "leave_requests"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated, err := repo.CancelIfOpen(ctx, id)

		assert.NoError(t, err)
		assert.True(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("decided row is left alone", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "leave_requests"`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		updated, err := repo.CancelIfOpen(ctx, id)

		assert.NoError(t, err)
		assert.False(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeaveRepository_FindAllByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	leaveID := uuid.New()
	typeID := uuid.New()

	repo, mock := setupRepoTest(t)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "leave_type_id", "reason", "start_date", "end_date",
		"status", "approver_required_role", "leave_type_name",
	}).AddRow(
		leaveID.String(), userID.String(), typeID.String(), "trip",
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		leave.StatusPending, "MANAGER", "Annual Leave",
	)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT leave_requests.*, leave_types.name AS leave_type_name FROM "leave_requests"`)).
		WithArgs(userID.String()).
		WillReturnRows(rows)

	leaves, err := repo.FindAllByUser(ctx, userID.String())

	assert.NoError(t, err)
	assert.Len(t, leaves, 1)
	assert.Equal(t, "Annual Leave", leaves[0].LeaveTypeName)
	assert.Equal(t, leave.StatusPending, leaves[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
