package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-smtp-mailer/internal/app"
	"github.com/MKhiriev/go-smtp-mailer/internal/service"
	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked in order; the first matching sentinel wins.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrWrongCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrAdminNotConfigured, errorResponse{http.StatusServiceUnavailable, app.MsgAdminNotConfigured}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrReadingSettings, errorResponse{http.StatusServiceUnavailable, app.MsgSettingsUnavailable}},
	{service.ErrSavingSettings, errorResponse{http.StatusServiceUnavailable, app.MsgSettingsUnavailable}},
	{service.ErrSendingMail, errorResponse{http.StatusBadGateway, app.MsgEmailFailed}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func writeServiceError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	utils.WriteError(w, resp.message, resp.status)
}
