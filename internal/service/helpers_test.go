package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-smtp-mailer/internal/crypto"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/secrets"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

var errStore = errors.New("store is down")

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func testBundle() models.SecretsBundle {
	b := models.SecretsBundle{}
	for _, name := range models.SecretNames {
		b[name] = "value-of-" + string(name)
	}
	return b
}

func realCipher(t *testing.T) crypto.CredentialCipher {
	t.Helper()
	return crypto.NewCredentialCipher(secrets.NewStaticProvider(testBundle()), logger.Nop())
}

// memoryStore is a SettingsStore kept in memory.
type memoryStore struct {
	options models.Options
}

func (m *memoryStore) Get(context.Context) (models.Options, error) {
	return m.options.Clone(), nil
}

func (m *memoryStore) Put(_ context.Context, options models.Options) error {
	m.options = options.Clone()
	return nil
}
