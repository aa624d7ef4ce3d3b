// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/secrets"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

// BlockFactory builds the block cipher for a derived key.
type BlockFactory func(key []byte) (cipher.Block, error)

// Option configures a CredentialCipher.
type Option func(*credentialCipher)

// WithBlockFactory replaces the AES engine.
func WithBlockFactory(f BlockFactory) Option {
	return func(c *credentialCipher) { c.newBlock = f }
}

// WithLayout selects which secrets feed the key and the IV.
func WithLayout(l Layout) Option {
	return func(c *credentialCipher) { c.deriver = NewDeriver(l) }
}

const selfTestProbe = "simple-smtp-mailer self-test"

type credentialCipher struct {
	provider secrets.SecretProvider
	deriver  *Deriver
	newBlock BlockFactory
	logger   *logger.Logger
}

// NewCredentialCipher returns an AES-256-CBC [CredentialCipher] reading its
// secrets from provider. The default layout is DefaultLayout.
func NewCredentialCipher(provider secrets.SecretProvider, log *logger.Logger, opts ...Option) CredentialCipher {
	c := &credentialCipher{
		provider: provider,
		deriver:  NewDeriver(DefaultLayout),
		newBlock: aes.NewCipher,
		logger:   log.WithComponent(logger.Component),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *credentialCipher) Protect(ctx context.Context, plaintext string) (models.Envelope, error) {
	if plaintext == "" {
		return models.Envelope{}, ErrNoOp
	}
	if !utf8.ValidString(plaintext) {
		return models.Envelope{}, c.fail("protect", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrEncryptionFailed))
	}

	bundle, err := c.bundle(ctx)
	if err != nil {
		return models.Envelope{}, c.fail("protect", err)
	}

	key := c.deriver.DeriveKey(bundle)
	iv := c.deriver.DeriveIV(key, bundle)

	block, err := c.block(key)
	if err != nil {
		return models.Envelope{}, c.fail("protect", fmt.Errorf("%w: %w", ErrEncryptionFailed, err))
	}

	buf := pkcs7Pad([]byte(plaintext), block.BlockSize())
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(buf, buf)

	return EncodeEnvelope(buf, iv), nil
}

func (c *credentialCipher) Reveal(ctx context.Context, envelope string) (string, error) {
	if envelope == "" {
		return "", ErrNoOp
	}

	e, ok := models.SplitEnvelope(envelope)
	if !ok {
		return "", c.fail("reveal", ErrMalformedEnvelope)
	}
	return c.RevealEnvelope(ctx, e)
}

func (c *credentialCipher) RevealEnvelope(ctx context.Context, e models.Envelope) (string, error) {
	if e.Ciphertext == "" && e.IV == "" {
		return "", ErrNoOp
	}

	ciphertext, iv, err := decodeSegments(e)
	if err != nil {
		return "", c.fail("reveal", err)
	}

	bundle, err := c.bundle(ctx)
	if err != nil {
		return "", c.fail("reveal", err)
	}

	block, err := c.block(c.deriver.DeriveKey(bundle))
	if err != nil {
		return "", c.fail("reveal", fmt.Errorf("%w: %w", ErrDecryptionFailed, err))
	}

	bs := block.BlockSize()
	if len(ciphertext) == 0 || len(ciphertext)%bs != 0 {
		return "", c.fail("reveal", fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrDecryptionFailed))
	}

	buf := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(buf, ciphertext)

	plaintext, err := pkcs7Unpad(buf, bs)
	if err != nil {
		return "", c.fail("reveal", fmt.Errorf("%w: %w", ErrDecryptionFailed, err))
	}
	if !utf8.Valid(plaintext) {
		return "", c.fail("reveal", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecryptionFailed))
	}

	return string(plaintext), nil
}

func (c *credentialCipher) SelfTest(ctx context.Context) error {
	e, err := c.Protect(ctx, selfTestProbe)
	if err != nil {
		return err
	}

	got, err := c.RevealEnvelope(ctx, e)
	if err != nil {
		return err
	}
	if got != selfTestProbe {
		return fmt.Errorf("%w: self-test mismatch", ErrDecryptionFailed)
	}
	return nil
}

func (c *credentialCipher) bundle(ctx context.Context) (models.SecretsBundle, error) {
	bundle, err := c.provider.Secrets(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingSecrets, err)
	}
	if err = secrets.Require(bundle, c.deriver.Layout().Required()...); err != nil {
		return nil, err
	}
	return bundle, nil
}

// block builds the engine and checks that it is usable in CBC mode with
// an IVSize IV.
func (c *credentialCipher) block(key []byte) (cipher.Block, error) {
	block, err := c.newBlock(key)
	if err != nil {
		return nil, err
	}
	if block.BlockSize() != IVSize {
		return nil, fmt.Errorf("block size %d, want %d", block.BlockSize(), IVSize)
	}
	return block, nil
}

func (c *credentialCipher) fail(op string, err error) error {
	msg := "failed to decrypt password"
	if op == "protect" {
		msg = "failed to encrypt password"
	}

	ev := c.logger.Error()
	if errors.Is(err, ErrMissingSecrets) {
		ev = c.logger.Warn()
	}
	ev.Err(err).Str("op", op).Msg(msg)

	return err
}
