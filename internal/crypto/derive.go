// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/sha256"

	"github.com/MKhiriev/go-smtp-mailer/models"
)

// internalSalt is appended to the key secrets before hashing.
const internalSalt = "simple_smtp_mailer_encryption_salt_jure_unique"

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = sha256.Size
	// IVSize is the CBC initialization vector length in bytes.
	IVSize = aes.BlockSize
)

// Layout names which secrets feed the key and which feed the IV, in order.
type Layout struct {
	KeySecrets []models.SecretName
	IVSecrets  []models.SecretName
}

// DefaultLayout splits the bundle into four key secrets and four IV secrets.
var DefaultLayout = Layout{
	KeySecrets: []models.SecretName{
		models.SecretAuthKey,
		models.SecretSecureAuthKey,
		models.SecretLoggedInKey,
		models.SecretNonceKey,
	},
	IVSecrets: []models.SecretName{
		models.SecretAuthSalt,
		models.SecretSecureAuthSalt,
		models.SecretLoggedInSalt,
		models.SecretNonceSalt,
	},
}

// LegacyLayout reads envelopes written by installations that fed nonce_key
// into the IV instead of the key.
var LegacyLayout = Layout{
	KeySecrets: []models.SecretName{
		models.SecretAuthKey,
		models.SecretSecureAuthKey,
		models.SecretLoggedInKey,
	},
	IVSecrets: []models.SecretName{
		models.SecretNonceKey,
		models.SecretAuthSalt,
		models.SecretSecureAuthSalt,
		models.SecretLoggedInSalt,
		models.SecretNonceSalt,
	},
}

// LayoutFor returns LegacyLayout when legacy is set, DefaultLayout otherwise.
func LayoutFor(legacy bool) Layout {
	if legacy {
		return LegacyLayout
	}
	return DefaultLayout
}

// Required returns every secret the layout reads.
func (l Layout) Required() []models.SecretName {
	out := make([]models.SecretName, 0, len(l.KeySecrets)+len(l.IVSecrets))
	out = append(out, l.KeySecrets...)
	return append(out, l.IVSecrets...)
}

// Deriver computes the key and IV. Both are pure functions of the bundle.
type Deriver struct {
	layout Layout
}

// NewDeriver returns a Deriver for layout.
func NewDeriver(layout Layout) *Deriver {
	return &Deriver{layout: layout}
}

// Layout returns the layout the deriver reads.
func (d *Deriver) Layout() Layout {
	return d.layout
}

// DeriveKey returns SHA-256(key secrets ‖ internalSalt).
func (d *Deriver) DeriveKey(bundle models.SecretsBundle) []byte {
	sum := sha256.Sum256([]byte(bundle.Concat(d.layout.KeySecrets...) + internalSalt))
	return sum[:]
}

// DeriveIV returns the first IVSize bytes of SHA-256(key ‖ IV secrets).
func (d *Deriver) DeriveIV(key []byte, bundle models.SecretsBundle) []byte {
	h := sha256.New()
	h.Write(key)
	h.Write([]byte(bundle.Concat(d.layout.IVSecrets...)))
	return h.Sum(nil)[:IVSize]
}
