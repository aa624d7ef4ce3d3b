package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-smtp-mailer/internal/app"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

// login exchanges administrator credentials for a bearer token returned in
// the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.AdminCredentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("login failed")
		writeServiceError(w, err)
		return
	}

	log.Info().Str("login", token.Login).Msg("administrator logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	w.WriteHeader(http.StatusOK)
}
