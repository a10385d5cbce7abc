package orguniterrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrUnknownKind = apperror.New(
		apperror.CodeNotFound,
		"unknown collection",
		http.StatusNotFound,
	)
	ErrUnitNotFound = apperror.New(
		apperror.CodeNotFound,
		"record not found",
		http.StatusNotFound,
	)
	ErrInvalidUnitID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid record id",
		http.StatusBadRequest,
	)
)
