package approval

// DecisionRequest carries the verdict on a pending leave. Decision is the
// target status, APPROVED or REJECTED; anything else is rejected by the
// service with an invalid-decision error.
type DecisionRequest struct {
	Decision string  `json:"decision" binding:"required"`
	Note     *string `json:"note"`
}

// StatusDecisionRequest is the legacy body shape accepted on
// PUT /api/approvals/:id, carrying the target status under "status".
type StatusDecisionRequest struct {
	Status string  `json:"status" binding:"required"`
	Note   *string `json:"note"`
}

type ApprovalResponse struct {
	ID                   string   `json:"id"`
	UserID               string   `json:"user_id"`
	RequesterName        string   `json:"requester_name,omitempty"`
	RequesterEmail       string   `json:"requester_email,omitempty"`
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
