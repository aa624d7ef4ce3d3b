package crypto

import (
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-smtp-mailer/models"
)

// EncodeEnvelope base64-encodes both segments.
func EncodeEnvelope(ciphertext, iv []byte) models.Envelope {
	return models.Envelope{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         base64.StdEncoding.EncodeToString(iv),
	}
}

// DecodeEnvelope parses the wire form and returns the raw ciphertext and IV.
func DecodeEnvelope(s string) (ciphertext, iv []byte, err error) {
	e, ok := models.SplitEnvelope(s)
	if !ok {
		return nil, nil, ErrMalformedEnvelope
	}
	return decodeSegments(e)
}

// decodeSegments requires two non-empty base64 segments and an IV of IVSize
// bytes.
func decodeSegments(e models.Envelope) (ciphertext, iv []byte, err error) {
	if e.Ciphertext == "" || e.IV == "" {
		return nil, nil, ErrMalformedEnvelope
	}

	ciphertext, err = base64.StdEncoding.DecodeString(e.Ciphertext)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ciphertext: %v", ErrMalformedEnvelope, err)
	}

	iv, err = base64.StdEncoding.DecodeString(e.IV)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: iv: %v", ErrMalformedEnvelope, err)
	}

	if len(iv) != IVSize {
		return nil, nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIVSize, len(iv), IVSize)
	}

	return ciphertext, iv, nil
}
