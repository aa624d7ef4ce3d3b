package service

import (
	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/crypto"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/mailer"
	"github.com/MKhiriev/go-smtp-mailer/internal/secrets"
	"github.com/MKhiriev/go-smtp-mailer/internal/store"
)

type Services struct {
	AuthService           AuthService
	SettingsService       SettingsService
	TransportConfigurator TransportConfigurator
	MailService           MailService
	StatusService         StatusService
	AppInfoService        AppInfoService
}

// NewServices wires the services over storages. The credential cipher reads
// the platform secrets from cfg.Secrets.
func NewServices(storages *store.Storages, transport mailer.Transport, cfg config.StructuredConfig, log *logger.Logger) (*Services, error) {
	provider := secrets.NewConfigProvider(cfg.Secrets)
	cipher := crypto.NewCredentialCipher(provider, log, crypto.WithLayout(crypto.LayoutFor(cfg.Secrets.LegacyLayout)))

	appInfoService, err := NewAppInfoService(cfg.App, log)
	if err != nil {
		return nil, err
	}

	configurator := NewTransportConfigurator(
		storages.SettingsStore,
		cipher,
		mailer.NewLoggerSink(log),
		cfg.App.SiteName,
		cfg.Mail.Charset,
		log,
	)

	settingsService := NewSettingsValidationService().Wrap(NewSettingsService(storages.SettingsStore, cipher, log))
	mailService := NewMailValidationService().Wrap(NewMailService(configurator, transport, log))

	return &Services{
		AuthService:           NewAuthService(crypto.NewPasswordHasher(), cfg.App, log),
		SettingsService:       settingsService,
		TransportConfigurator: configurator,
		MailService:           mailService,
		StatusService:         NewStatusService(provider, cipher, configurator, cfg.App.Version, log),
		AppInfoService:        appInfoService,
	}, nil
}
