package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-smtp-mailer/internal/app"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

func (h *Handler) sendTestEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var message models.Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.MailService.Send(r.Context(), message)
	if err != nil {
		log.Err(err).Str("to", message.To).Msg("test email was not sent")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.SendReport{Message: app.MsgEmailSent, SendResult: result}, http.StatusOK)
}
