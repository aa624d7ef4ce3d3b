package store

import "errors"

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these so callers can match with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction  = errors.New("failed to begin transaction")
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when iterating the options rows fails.
	ErrScanningRows = errors.New("failed to scan option rows")

	// ErrUnsupportedDriver is returned for a driver other than sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// File store errors.
var (
	ErrReadingSettingsFile = errors.New("failed to read settings file")
	ErrWritingSettingsFile = errors.New("failed to write settings file")
)
