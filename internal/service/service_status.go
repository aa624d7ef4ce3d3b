package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-smtp-mailer/internal/crypto"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/secrets"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

type statusService struct {
	provider     secrets.SecretProvider
	cipher       crypto.CredentialCipher
	configurator TransportConfigurator
	version      string

	logger *logger.Logger
}

func NewStatusService(
	provider secrets.SecretProvider,
	cipher crypto.CredentialCipher,
	configurator TransportConfigurator,
	version string,
	logger *logger.Logger,
) StatusService {
	return &statusService{
		provider:     provider,
		cipher:       cipher,
		configurator: configurator,
		version:      version,
		logger:       logger,
	}
}

// Status reports the notices of the settings page: undefined secrets, an
// unusable cipher engine and the transport the next send would use.
func (s *statusService) Status(ctx context.Context) (models.Status, error) {
	status := models.Status{Version: s.version}

	bundle, err := s.provider.Secrets(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to read platform secrets")
		status.MissingSecrets = append([]models.SecretName(nil), models.SecretNames...)
	} else {
		status.MissingSecrets = bundle.Missing()
	}

	// Missing secrets are reported above; the engine itself may still work.
	err = s.cipher.SelfTest(ctx)
	status.CryptoAvailable = err == nil || errors.Is(err, crypto.ErrMissingSecrets)

	cfg, err := s.configurator.Configure(ctx)
	if err != nil {
		return models.Status{}, err
	}
	status.Transport = cfg.Mode

	return status, nil
}
