package leavetype

type CreateLeaveTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateLeaveTypeRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active" binding:"required"`
}

type AssignmentRequest struct {
	UserID      string `json:"user_id" binding:"required,uuid"`
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
}

type LeaveTypeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type AssignmentResponse struct {
	UserID      string `json:"user_id"`
	LeaveTypeID string `json:"leave_type_id"`
}

// AssignmentDetail is the joined display form for the admin UI.
type AssignmentDetail struct {
	UserID        string `json:"user_id"`
	LeaveTypeID   string `json:"leave_type_id"`
	UserName      string `json:"user_name"`
	UserEmail     string `json:"user_email"`
	UserRole      string `json:"user_role"`
	LeaveTypeName string `json:"leave_type_name"`
}
