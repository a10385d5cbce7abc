package leaveerrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrAdminCannotApply = apperror.New(
		apperror.CodeForbidden,
		"Admins cannot apply for leave",
		http.StatusForbidden,
	)
	ErrLeaveTypeNotAssigned = apperror.New(
		apperror.CodeForbidden,
		"Leave type not assigned",
		http.StatusForbidden,
	)
	// ErrLeaveNotFound also masks ownership failures so a non-owner cannot
	// probe for the existence of someone else's leave.
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrNotCancellable = apperror.New(
		apperror.CodeInvalidState,
		"only pending or approved leave can be cancelled",
		http.StatusConflict,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
)
