package crypto

import (
	"errors"

	"github.com/MKhiriev/go-smtp-mailer/internal/secrets"
)

var (
	// ErrNoOp means there was nothing to protect or reveal. It is not a failure.
	ErrNoOp = errors.New("nothing to process")

	ErrEncryptionFailed  = errors.New("encryption failed")
	ErrMalformedEnvelope = errors.New("malformed envelope")
	ErrInvalidIVSize     = errors.New("invalid IV size")
	// ErrDecryptionFailed covers a wrong key, corrupted data and secrets
	// rotated since the envelope was written.
	ErrDecryptionFailed = errors.New("decryption failed")

	ErrMissingSecrets = secrets.ErrMissingSecrets

	ErrInvalidHash         = errors.New("invalid password hash")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
