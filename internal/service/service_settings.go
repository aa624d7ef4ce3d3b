// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-smtp-mailer/internal/crypto"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/store"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

type settingsService struct {
	store  store.SettingsStore
	cipher crypto.CredentialCipher

	logger *logger.Logger
}

func NewSettingsService(settingsStore store.SettingsStore, cipher crypto.CredentialCipher, logger *logger.Logger) SettingsService {
	return &settingsService{
		store:  settingsStore,
		cipher: cipher,
		logger: logger,
	}
}

func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	options, err := s.store.Get(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to read settings")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrReadingSettings, err)
	}

	return models.SettingsFromOptions(options).Redacted(), nil
}

// Save replaces the settings record with the sanitized form.
//
// A non-empty password is protected and both envelope segments are stored.
// If protection fails, or no password was submitted, the previously stored
// segments are kept.
func (s *settingsService) Save(ctx context.Context, input models.SettingsInput) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	previous, err := s.store.Get(ctx)
	if err != nil {
		log.Err(err).Msg("failed to read settings before save")
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrReadingSettings, err)
	}

	debug := absint(deref(input.Debug))
	if debug > models.MaxDebugLevel {
		debug = models.MaxDebugLevel
	}

	options := models.Options{
		models.OptionHost:      sanitizeText(deref(input.Host)),
		models.OptionPort:      strconv.Itoa(absint(deref(input.Port))),
		models.OptionAuth:      models.FormatBool(deref(input.Auth)),
		models.OptionUsername:  sanitizeText(deref(input.Username)),
		models.OptionSecure:    string(sanitizeSecure(deref(input.Secure))),
		models.OptionFromEmail: sanitizeEmail(deref(input.FromEmail)),
		models.OptionFromName:  sanitizeText(deref(input.FromName)),
		models.OptionDebug:     strconv.Itoa(debug),
	}

	var warnings []string

	password := deref(input.Password)
	if password != "" {
		envelope, protectErr := s.cipher.Protect(ctx, password)
		if protectErr == nil {
			options[models.OptionPassword] = envelope.Ciphertext
			options[models.OptionPasswordIV] = envelope.IV
		} else {
			log.Err(protectErr).Msg("password was not protected, keeping the stored one")
			keepPassword(options, previous)
			warnings = append(warnings, WarnPasswordNotSaved)
		}
	} else {
		keepPassword(options, previous)
	}

	if err = s.store.Put(ctx, options); err != nil {
		log.Err(err).Msg("failed to save settings")
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}

	log.Info().Strs("warnings", warnings).Msg("settings saved")

	return models.SaveResult{
		Settings: models.SettingsFromOptions(options).Redacted(),
		Warnings: warnings,
	}, nil
}

func keepPassword(dst, previous models.Options) {
	dst[models.OptionPassword] = previous.String(models.OptionPassword)
	dst[models.OptionPasswordIV] = previous.String(models.OptionPasswordIV)
}
