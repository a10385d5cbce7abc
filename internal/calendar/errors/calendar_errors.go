package calendarerrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrNotConnected = apperror.New(
		apperror.CodeServiceUnavailable,
		"google calendar is not connected",
		http.StatusServiceUnavailable,
	)
	ErrExchangeFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"google authorization code exchange failed",
		http.StatusBadGateway,
	)
	ErrEventSyncFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"google calendar request failed",
		http.StatusBadGateway,
	)
)
