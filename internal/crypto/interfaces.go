package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-smtp-mailer/models"
)

// CredentialCipher protects the SMTP password at rest.
//
// Key and IV are derived from the platform secrets on every call and are
// never stored. Every failure is logged with the component field before it
// is returned; callers treat any error as "credential unusable".
type CredentialCipher interface {
	// Protect encrypts plaintext into an envelope.
	// Empty plaintext yields ErrNoOp without touching the cipher engine.
	Protect(ctx context.Context, plaintext string) (models.Envelope, error)

	// Reveal decrypts the wire form "base64(ct)::base64(iv)".
	// Empty input yields ErrNoOp without touching the cipher engine.
	Reveal(ctx context.Context, envelope string) (string, error)

	// RevealEnvelope is Reveal for an envelope already split into segments.
	RevealEnvelope(ctx context.Context, envelope models.Envelope) (string, error)

	// SelfTest round-trips a probe value to check that secrets are present
	// and the cipher engine works.
	SelfTest(ctx context.Context) error
}

// PasswordHasher hashes and verifies the administrator password.
type PasswordHasher interface {
	// Hash returns an argon2id PHC string for password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the PHC string encoded.
	Verify(password, encoded string) (bool, error)
}
