package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-smtp-mailer/models"
)

// SettingsService stores and reads the SMTP settings record.
type SettingsService interface {
	// Get returns the stored settings with the envelope redacted.
	Get(ctx context.Context) (models.Settings, error)
	// Save sanitizes the form, protects a new password and replaces the record.
	Save(ctx context.Context, input models.SettingsInput) (models.SaveResult, error)
}

// TransportConfigurator decides, for one send, whether mail goes through
// the SMTP relay or the local transport.
type TransportConfigurator interface {
	Configure(ctx context.Context) (models.TransportConfig, error)
}

type MailService interface {
	Send(ctx context.Context, message models.Message) (models.SendResult, error)
}

type AuthService interface {
	Login(ctx context.Context, credentials models.AdminCredentials) (models.Token, error)
	CreateToken(ctx context.Context, login string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type StatusService interface {
	Status(ctx context.Context) (models.Status, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
