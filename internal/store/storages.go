package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
)

// Storages bundles the persistence backends used by the services.
type Storages struct {
	SettingsStore SettingsStore

	db *DB
}

// NewStorages opens the settings store selected by cfg: the SQL repository
// when a DSN is configured (migrations are applied), the JSON file otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Str("path", cfg.Files.SettingsFile).Msg("using settings file storage")
		return &Storages{SettingsStore: NewSettingsFileStorage(cfg.Files.SettingsFile, log)}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	log.Info().Str("driver", cfg.DB.Driver).Msg("using database settings storage")
	return &Storages{
		SettingsStore: NewSettingsRepository(db, log),
		db:            db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
