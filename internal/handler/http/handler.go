package http

import (
	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/service"
	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher is nil when no hash key is configured; integrity checks are
	// then skipped.
	hasher *utils.Hasher

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	if cfg.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.HashKey)
	}

	logger.Info().Bool("integrity_check", h.hasher != nil).Msg("http handler created")
	return h
}
