package leave

import (
	"time"

	"github.com/google/uuid"
)

type LeaveRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_user"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null"`

	Reason    string    `gorm:"type:text"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	HalfDay   bool      `gorm:"not null;default:false"`
	TotalDays *float64

	Status string `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_status"`

	// ApproverRequiredRole is fixed at creation from the requester's role and
	// never changes afterwards.
	ApproverRequiredRole string `gorm:"type:varchar(10);not null"`

	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	DecisionNote    *string `gorm:"type:text"`
	CalendarEventID *string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveWithType is a read-model row: a leave joined with its type name.
type LeaveWithType struct {
	LeaveRequest
	LeaveTypeName string
}
