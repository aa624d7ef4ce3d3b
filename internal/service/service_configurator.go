// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-smtp-mailer/internal/crypto"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/store"
	"github.com/MKhiriev/go-smtp-mailer/internal/validators"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

type transportConfigurator struct {
	store    store.SettingsStore
	cipher   crypto.CredentialCipher
	sink     models.DebugSink
	siteName string
	charset  string

	logger *logger.Logger
}

// NewTransportConfigurator returns the configurator run before every send.
// sink receives the SMTP conversation when the stored debug level is above
// zero; it may be nil.
func NewTransportConfigurator(
	settingsStore store.SettingsStore,
	cipher crypto.CredentialCipher,
	sink models.DebugSink,
	siteName string,
	charset string,
	log *logger.Logger,
) TransportConfigurator {
	if charset == "" {
		charset = models.DefaultCharset
	}

	return &transportConfigurator{
		store:    settingsStore,
		cipher:   cipher,
		sink:     sink,
		siteName: siteName,
		charset:  charset,
		logger:   log.WithComponent(logger.Component),
	}
}

// Configure reads the settings and picks the transport for one send.
//
// SMTP is chosen only when host, port and username are set and, if
// authentication is on, the stored password was revealed. A password that
// cannot be revealed disables SMTP altogether. Only a settings read error is
// returned.
func (c *transportConfigurator) Configure(ctx context.Context) (models.TransportConfig, error) {
	options, err := c.store.Get(ctx)
	if err != nil {
		c.logger.Err(err).Msg("failed to read settings, aborting send")
		return models.TransportConfig{}, fmt.Errorf("%w: %w", ErrReadingSettings, err)
	}

	settings := models.SettingsFromOptions(options)

	var password string
	if settings.Password != "" {
		password, err = c.cipher.RevealEnvelope(ctx, settings.Envelope())
		if err != nil {
			c.logger.Err(err).Msg("failed to decrypt password, using local delivery")
			return models.LocalTransport(), nil
		}
	}

	if settings.Host == "" || settings.Port == 0 || settings.Username == "" {
		c.logger.Debug().Err(ErrIncompleteConfiguration).Msg("SMTP host, port or username missing, using local delivery")
		return models.LocalTransport(), nil
	}

	needsAuth := true
	if options.Has(models.OptionAuth) {
		needsAuth = settings.Auth
	}

	if needsAuth && password == "" {
		c.logger.Warn().Err(ErrIncompleteConfiguration).
			Str("host", settings.Host).
			Msg("authentication enabled but no usable password, using local delivery")
		return models.LocalTransport(), nil
	}

	cfg := models.TransportConfig{
		Mode:     models.TransportSMTP,
		Host:     settings.Host,
		Port:     settings.Port,
		Auth:     needsAuth,
		Username: settings.Username,
		Secure:   settings.Secure,
		FromName: settings.FromName,
		Debug:    settings.Debug,
		Charset:  c.charset,
	}
	if needsAuth {
		cfg.Password = password
	}
	if validators.IsEmail(settings.FromEmail) {
		cfg.From = settings.FromEmail
	}
	if cfg.FromName == "" {
		cfg.FromName = c.siteName
	}
	if cfg.Debug > 0 && c.sink != nil {
		cfg.DebugSink = c.sink
	}

	return cfg, nil
}
