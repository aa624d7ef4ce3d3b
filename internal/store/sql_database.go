// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/migrations"
)

const (
	defaultRetryBase = 100 * time.Millisecond
	defaultRetries   = 3
)

// DB is a database/sql handle together with its dialect and retry policy.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	// backoff returns a fresh retry policy for one operation.
	backoff func() retry.Backoff
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// builder returns a squirrel builder using the driver's placeholder style.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// withRetry runs fn, repeating it while the classifier reports the error as
// transient.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	b := db.backoff
	if b == nil {
		b = defaultBackoff
	}

	return retry.Do(ctx, b(), func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

func defaultBackoff() retry.Backoff {
	return retry.WithMaxRetries(defaultRetries, retry.NewExponential(defaultRetryBase))
}
