package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

// settingsRepository stores the settings record as one row per option in
// the "options" table, keyed by (group_name, name).
type settingsRepository struct {
	db     *DB
	group  string
	logger *logger.Logger
}

// NewSettingsRepository returns a SQL-backed [SettingsStore] for the
// settings group.
func NewSettingsRepository(db *DB, log *logger.Logger) SettingsStore {
	log.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		group:  models.SettingsGroup,
		logger: log,
	}
}

func (r *settingsRepository) Get(ctx context.Context) (models.Options, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectOptionsQuery(r.db.builder(), r.group)
	if err != nil {
		return nil, err
	}

	var options models.Options
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		options, err = r.scanOptions(ctx, query, args)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.Get").Str("pg_code", postgresError(err)).Msg("error reading settings")
		return nil, err
	}

	return options, nil
}

func (r *settingsRepository) scanOptions(ctx context.Context, query string, args []any) (models.Options, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	options := make(models.Options)
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		options[name] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return options, nil
}

// Put replaces the record inside one transaction: stale keys are deleted and
// every given key is upserted.
func (r *settingsRepository) Put(ctx context.Context, options models.Options) error {
	log := logger.FromContext(ctx)

	b := r.db.builder()
	keys := sortedKeys(options)

	deleteQuery, deleteArgs, err := deleteStaleOptionsQuery(b, r.group, keys)
	if err != nil {
		return err
	}

	var upsertQuery string
	var upsertArgs []any
	if len(keys) > 0 {
		if upsertQuery, upsertArgs, err = upsertOptionsQuery(b, r.group, options); err != nil {
			return err
		}
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if upsertQuery == "" {
				return nil
			}
			if _, err := tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			return nil
		})
	})
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.Put").Str("pg_code", postgresError(err)).Msg("error saving settings")
		return err
	}

	return nil
}

func (r *settingsRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}
	return nil
}
