// Package secrets supplies the long-lived platform secrets that the
// credential key and IV are derived from.
//
// The secrets never leave the process. Providers return a fresh copy of the
// bundle on every call so callers may not mutate shared state.
package secrets

//go:generate mockgen -source=provider.go -destination=../mock/secret_provider_mock.go -package=mock

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

// ErrMissingSecrets is returned when a secret required for derivation is
// undefined or empty.
var ErrMissingSecrets = errors.New("platform secrets are not defined")

// SecretProvider supplies the named platform secrets.
type SecretProvider interface {
	Secrets(ctx context.Context) (models.SecretsBundle, error)
}

// StaticProvider serves a fixed bundle. The zero value serves no secrets.
type StaticProvider struct {
	bundle models.SecretsBundle
}

// NewStaticProvider copies bundle into a new provider.
func NewStaticProvider(bundle models.SecretsBundle) *StaticProvider {
	return &StaticProvider{bundle: clone(bundle)}
}

// NewConfigProvider serves the secrets loaded by the config package.
func NewConfigProvider(cfg config.Secrets) *StaticProvider {
	return NewStaticProvider(cfg.Bundle())
}

// Secrets implements [SecretProvider].
func (p *StaticProvider) Secrets(context.Context) (models.SecretsBundle, error) {
	return clone(p.bundle), nil
}

// Require returns an error wrapping [ErrMissingSecrets] that names every
// secret in names that is empty in bundle.
func Require(bundle models.SecretsBundle, names ...models.SecretName) error {
	var missing []models.SecretName
	for _, name := range names {
		if bundle[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingSecrets, missing)
	}
	return nil
}

func clone(b models.SecretsBundle) models.SecretsBundle {
	out := make(models.SecretsBundle, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
