package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-smtp-mailer/internal/app"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
)

// checkHashing verifies the HashSHA256 header against an HMAC-SHA256 of the
// raw body. It is a pass-through when no hash key is configured.
func (h *Handler) checkHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		if !h.hasher.Verify(body, signature) {
			log.Error().Str("hash from request", signature).Msg("hashes are not equal")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
