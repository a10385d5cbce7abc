package calendar

type UpdateSettingsRequest struct {
	CalendarID string `json:"calendar_id" binding:"required"`
}

type SettingsResponse struct {
	CalendarID  string  `json:"calendar_id"`
	Connected   bool    `json:"connected"`
	TokenExpiry *string `json:"token_expiry,omitempty"`
}
