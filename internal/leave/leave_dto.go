package leave

type CreateLeaveRequest struct {
	LeaveTypeID string   `json:"leave_type_id" binding:"required,uuid"`
	Reason      string   `json:"reason"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	HalfDay     bool     `json:"half_day"`
	TotalDays   *float64 `json:"total_days"`
}

type LeaveResponse struct {
	ID                   string   `json:"id"`
	UserID               string   `json:"user_id"`
	LeaveTypeID          string   `json:"leave_type_id"`
	LeaveTypeName        string   `json:"leave_type_name,omitempty"`
	Reason               string   `json:"reason"`
	StartDate            string   `json:"start_date"`
	EndDate              string   `json:"end_date"`
	HalfDay              bool     `json:"half_day"`
	TotalDays            *float64 `json:"total_days,omitempty"`
	Status               string   `json:"status"`
	ApproverRequiredRole string   `json:"approver_required_role"`
	ApprovedBy           *string  `json:"approved_by,omitempty"`
	ApprovedAt           *string  `json:"approved_at,omitempty"`
	DecisionNote         *string  `json:"decision_note,omitempty"`
	CalendarEventID      *string  `json:"calendar_event_id,omitempty"`
	CreatedAt            string   `json:"created_at"`
}
