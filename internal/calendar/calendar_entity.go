package calendar

import "time"

// GoogleSettings is a single-row table (id is always 1) holding the target
// calendar and the OAuth token last granted by an admin.
type GoogleSettings struct {
	ID         int    `gorm:"primaryKey"`
	CalendarID string `gorm:"type:varchar(255)"`

	AccessToken  string `gorm:"type:text"`
	RefreshToken string `gorm:"type:text"`
	TokenType    string `gorm:"type:varchar(40)"`
	TokenExpiry  *time.Time

	UpdatedAt time.Time
}

const settingsRowID = 1
