package store

import (
	"context"
	"database/sql"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
)

// NewTestDB builds a Postgres-dialect DB around db for tests outside the package.
func NewTestDB(db *sql.DB, c ErrorClassificator, backoff func() retry.Backoff) *DB {
	return &DB{
		DB:                 db,
		driver:             config.DriverPostgres,
		errorClassificator: c,
		logger:             logger.Nop(),
		backoff:            backoff,
	}
}

func (db *DB) WithRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	return db.withRetry(ctx, fn)
}
