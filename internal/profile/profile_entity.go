package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the single per-identity record. The ID is the identity id from
// the auth layer, not a generated key, so one identity maps to exactly one
// profile row.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName  string    `gorm:"type:varchar(255)"`
	AvatarURL string    `gorm:"type:text"`
	Role      string    `gorm:"type:varchar(10);not null;default:'MEMBER'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
