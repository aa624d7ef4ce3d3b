package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether to repeat an operation.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// retryableClasses are SQLSTATE classes where every code is transient:
// connection exceptions (08) and transaction rollbacks (40).
var retryableClasses = map[string]struct{}{
	"08": {},
	"40": {},
}

// retryableCodes are transient codes outside retryableClasses.
var retryableCodes = map[string]struct{}{
	pgerrcode.AdminShutdown:    {},
	pgerrcode.CannotConnectNow: {},
	pgerrcode.CrashShutdown:    {},
}

// PostgresErrorClassifier classifies pgx errors by SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError. A broken pooled connection is
// retryable too; anything else is not.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}
	if errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps one SQLSTATE code. Constraint, syntax and data errors
// never succeed on a second attempt and stay [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	if _, ok := retryableCodes[code]; ok {
		return Retryable
	}
	if len(code) == 5 {
		if _, ok := retryableClasses[code[:2]]; ok {
			return Retryable
		}
	}
	return NonRetryable
}
