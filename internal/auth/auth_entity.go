package auth

import (
	"time"

	"github.com/google/uuid"
)

// Credential stores the email/password login for an identity. Its ID doubles
// as the profile id so the two stay one-to-one.
type Credential struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
