package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/mailer"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

type mailService struct {
	configurator TransportConfigurator
	transport    mailer.Transport

	logger *logger.Logger
}

func NewMailService(configurator TransportConfigurator, transport mailer.Transport, logger *logger.Logger) MailService {
	return &mailService{
		configurator: configurator,
		transport:    transport,
		logger:       logger,
	}
}

// Send configures the transport and delivers message as UTF-8 HTML.
// The returned result names the transport even when delivery fails.
func (m *mailService) Send(ctx context.Context, message models.Message) (models.SendResult, error) {
	log := logger.FromContext(ctx)

	message = models.Message{
		To:      strings.TrimSpace(message.To),
		Subject: sanitizeText(message.Subject),
		Body:    message.Body,
	}

	cfg, err := m.configurator.Configure(ctx)
	if err != nil {
		return models.SendResult{}, fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	result := models.SendResult{Transport: cfg.Mode}

	if err = m.transport.Send(ctx, cfg, message); err != nil {
		log.Err(err).Str("to", message.To).Str("transport", string(cfg.Mode)).Msg("message was not sent")
		return result, fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	result.Delivered = true
	return result, nil
}
