package orgunit

import (
	"time"

	"github.com/google/uuid"
)

// Kinds are the organisational unit collections exposed under /admin. The
// map doubles as a table name whitelist: only these names ever reach SQL.
var Kinds = map[string]string{
	"projects": "projects",
	"regions":  "regions",
	"groups":   "org_groups",
}

// Unit is the shared shape of every organisational unit record.
type Unit struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name   string    `gorm:"type:varchar(120);not null" json:"name"`
	Active bool      `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
