package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

func newTestSettingsRepo(t *testing.T, driver string) (*settingsRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	d := &DB{
		DB:     db,
		driver: driver,
		logger: l,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(2, retry.NewConstant(time.Millisecond))
		},
	}
	if driver == config.DriverPostgres {
		d.errorClassificator = NewPostgresErrorClassifier()
	}

	return NewSettingsRepository(d, l).(*settingsRepository), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestSettingsRepository_Get(t *testing.T) {
	repo, mock := newTestSettingsRepo(t, config.DriverSQLite)

	mock.ExpectQuery("SELECT name, value FROM options").
		WithArgs(models.SettingsGroup).
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).
			AddRow("host", "smtp.example.com").
			AddRow("port", "587"))

	got, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Options{"host": "smtp.example.com", "port": "587"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Get_Empty(t *testing.T) {
	repo, mock := newTestSettingsRepo(t, config.DriverSQLite)

	mock.ExpectQuery("SELECT name, value FROM options").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}))

	got, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSettingsRepository_Get_RetriesTransientPostgresError(t *testing.T) {
	repo, mock := newTestSettingsRepo(t, config.DriverPostgres)

	mock.ExpectQuery(`SELECT name, value FROM options WHERE group_name = \$1`).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(`SELECT name, value FROM options WHERE group_name = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).AddRow("host", "h"))

	got, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "h", got["host"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Get_GivesUpAfterRetries(t *testing.T) {
	repo, mock := newTestSettingsRepo(t, config.DriverPostgres)

	for i := 0; i < 3; i++ {
		mock.ExpectQuery("SELECT name, value FROM options").
			WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	_, err := repo.Get(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Get_NonRetryableError(t *testing.T) {
	repo, mock := newTestSettingsRepo(t, config.DriverPostgres)

	mock.ExpectQuery("SELECT name, value FROM options").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.Get(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, pgerrcode.UndefinedTable, pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Get_ScanError(t *testing.T) {
	repo, mock := newTestSettingsRepo(t, config.DriverSQLite)

	mock.ExpectQuery("SELECT name, value FROM options").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).
			AddRow("host", "h").
			RowError(0, sql.ErrConnDone))

	_, err := repo.Get(context.Background())

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestSettingsRepository_Put(t *testing.T) {
	repo, mock := newTestSettingsRepo(t, config.DriverSQLite)
	g := models.SettingsGroup

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM options").
		WithArgs(g, "host", "port").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO options").
		WithArgs(g, "host", "smtp.example.com", g, "port", "587").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.Put(context.Background(), models.Options{"port": "587", "host": "smtp.example.com"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Put_EmptyRecord(t *testing.T) {
	repo, mock := newTestSettingsRepo(t, config.DriverSQLite)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM options").
		WithArgs(models.SettingsGroup).
		WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectCommit()

	require.NoError(t, repo.Put(context.Background(), models.Options{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Put_RollsBackOnError(t *testing.T) {
	repo, mock := newTestSettingsRepo(t, config.DriverPostgres)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM options").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO options").WillReturnError(pgError(pgerrcode.CheckViolation))
	mock.ExpectRollback()

	err := repo.Put(context.Background(), models.Options{"host": "h"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Put_RetriesDeadlock(t *testing.T) {
	repo, mock := newTestSettingsRepo(t, config.DriverPostgres)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM options").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM options").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO options").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Put(context.Background(), models.Options{"host": "h"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Put_BeginAndCommitErrors(t *testing.T) {
	t.Run("begin", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t, config.DriverSQLite)
		mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

		err := repo.Put(context.Background(), models.Options{"host": "h"})
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("commit", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t, config.DriverSQLite)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM options").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO options").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit().WillReturnError(sql.ErrTxDone)

		err := repo.Put(context.Background(), models.Options{"host": "h"})
		assert.ErrorIs(t, err, ErrCommittingTransaction)
	})
}
