package http

import (
	"net/http"

	"github.com/MKhiriev/go-smtp-mailer/internal/app"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.StatusService.Status(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error building status")
		writeServiceError(w, err)
		return
	}

	resp := models.StatusReport{Status: status}
	if !status.CryptoAvailable {
		resp.Notices = append(resp.Notices, app.MsgCryptoUnavailable)
	}
	if len(status.MissingSecrets) > 0 {
		resp.Notices = append(resp.Notices, app.MsgSecretsMissing)
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
