package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-smtp-mailer/models"
)

// SettingsStore reads and writes the flat settings record.
//
// Get returns an empty record, not an error, when nothing was saved yet.
// Put replaces the whole record; concurrent writers are last-write-wins.
type SettingsStore interface {
	Get(ctx context.Context) (models.Options, error)
	Put(ctx context.Context, options models.Options) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
