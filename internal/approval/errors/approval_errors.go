package approvalerrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrQueueForbidden = apperror.New(
		apperror.CodeForbidden,
		"only managers and admins can review leave requests",
		http.StatusForbidden,
	)
	ErrDecisionForbidden = apperror.New(
		apperror.CodeForbidden,
		"this request is outside your approval scope",
		http.StatusForbidden,
	)
	ErrApprovalNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeConflict,
		"already decided",
		http.StatusConflict,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"invalid decision, expected APPROVED or REJECTED",
		http.StatusBadRequest,
	)
	ErrCalendarSyncFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"calendar sync failed, leave was not approved",
		http.StatusBadGateway,
	)
)
