package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-smtp-mailer/internal/app"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.SettingsService.Get(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error reading settings")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

// saveSettings replaces the settings. A password that could not be protected
// does not fail the request; the warning is returned in the body.
func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.SettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.SettingsService.Save(r.Context(), input)
	if err != nil {
		log.Err(err).Msg("error saving settings")
		writeServiceError(w, err)
		return
	}

	if login, ok := utils.GetLoginFromContext(r.Context()); ok {
		log.Info().Str("login", login).Int("warnings", len(result.Warnings)).Msg("settings updated")
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
