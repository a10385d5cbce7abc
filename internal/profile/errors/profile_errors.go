package profileerrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"profile not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role",
		http.StatusBadRequest,
	)
	ErrSelfRoleChange = apperror.New(
		apperror.CodeInvalidInput,
		"Cannot change your own role",
		http.StatusBadRequest,
	)
)
