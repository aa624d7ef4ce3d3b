// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the mailerctl side of the admin API.
//
// [ServerAdapter] hides the REST transport from the CLI commands. HTTP status
// codes are mapped to the sentinel errors in errors.go so commands can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-smtp-mailer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter talks to the admin API of a running mailer service.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, empty if none was set.
	Token() string

	// Login exchanges administrator credentials for a bearer token. The token
	// is stored via SetToken and returned.
	Login(ctx context.Context, credentials models.AdminCredentials) (string, error)

	// GetSettings returns the redacted settings view.
	GetSettings(ctx context.Context) (models.Settings, error)

	// SaveSettings replaces the stored settings. The body is signed with the
	// HashSHA256 header when a hash key is configured.
	SaveSettings(ctx context.Context, input models.SettingsInput) (models.SaveResult, error)

	// SendTestEmail asks the service to deliver msg with the configured
	// transport.
	SendTestEmail(ctx context.Context, msg models.Message) (models.SendReport, error)

	// Status returns the credential protection and transport status.
	Status(ctx context.Context) (models.StatusReport, error)

	// Version returns the service version. It needs no token.
	Version(ctx context.Context) (string, error)
}
