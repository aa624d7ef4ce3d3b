// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged server configuration before startup.
//
// Platform secrets are deliberately not checked here; see [Secrets].
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 || cfg.App.HashKey == "" {
		return fmt.Errorf("%w: token sign key, token duration and hash key are required", ErrInvalidAppConfigs)
	}

	if cfg.App.AdminLogin == "" || cfg.App.AdminPasswordHash == "" {
		return fmt.Errorf("%w: admin login and password hash are required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN != "" {
		switch cfg.Storage.DB.Driver {
		case DriverSQLite, DriverPostgres:
		default:
			return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	} else if cfg.Storage.Files.SettingsFile == "" {
		return fmt.Errorf("%w: either a DSN or a settings file is required", ErrInvalidStorageConfigs)
	}

	if cfg.Mail.SendmailPath == "" || cfg.Mail.SMTPTimeout <= 0 || cfg.Mail.Charset == "" {
		return ErrInvalidMailConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
