package leavetype

import (
	"time"

	"github.com/google/uuid"
)

type LeaveType struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name   string    `gorm:"type:varchar(100);not null"`
	Active bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserLeaveType grants a user permission to request a leave type. The pair
// is unique; a duplicate assignment is a no-op upsert.
type UserLeaveType struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;primaryKey"`

	CreatedAt time.Time
}
